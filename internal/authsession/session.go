// Package authsession drives a single step-up authentication: it shows the
// issuer's page on an interactive surface and waits for a terminal redirect,
// a confirmed cancel, or the deadline, whichever comes first.
package authsession

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/redirect"
)

const DefaultTimeout = 3 * time.Minute

type State int32

const (
	StateCreated State = iota
	StateDisplayed
	StateResolved
	StateTimedOut
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateDisplayed:
		return "displayed"
	case StateResolved:
		return "resolved"
	case StateTimedOut:
		return "timed_out"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Result is how the session ended. Params carries the gateway's order
// parameters when the terminal redirect embedded them.
type Result struct {
	State   State
	Success bool
	Reason  string
	Params  map[string]any
	Err     error
}

type Option func(*Session)

func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMatchers replaces the terminal URL matchers derived from the challenge.
func WithMatchers(matchers []redirect.Matcher) Option {
	return func(s *Session) {
		s.matchers = matchers
	}
}

type eventKind int

const (
	evTerminal eventKind = iota
	evLoadFailed
	evNavigationFailed
	evCancelRequested
	evCancelDeclined
	evCancelConfirmed
)

type event struct {
	kind           eventKind
	url            string
	err            error
	classification redirect.Classification
}

// Session is one authentication attempt. Surface callbacks only classify URLs
// and post events; the goroutine running Run owns the timer, the cancel
// confirmation and the surface. The completion slot decides who won.
type Session struct {
	page     Page
	origin   string
	matchers []redirect.Matcher
	surface  Surface
	timeout  time.Duration
	logger   *slog.Logger

	state       atomic.Int32
	events      chan event
	slot        *Slot[Result]
	dismissOnce sync.Once
}

func New(challenge domain.Challenge, redirectDomain string, surface Surface, opts ...Option) *Session {
	s := &Session{
		page: Page{
			HTML:        challenge.HTML,
			ContentType: challenge.ContentType,
			BaseURL:     challenge.URL,
			Cookie:      challenge.Cookie,
		},
		origin: challenge.CallbackOrigin,
		matchers: redirect.Matchers(redirect.Target{
			RedirectDomain: redirectDomain,
			GatewayHost:    challenge.GatewayHost,
			CallbackOrigin: challenge.CallbackOrigin,
		}),
		surface: surface,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		events:  make(chan event, 8),
		slot:    NewSlot[Result](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "auth_session", "base_url", challenge.URL)
	return s
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Result returns the outcome once the session has ended.
func (s *Session) Result() (Result, bool) {
	return s.slot.Value()
}

// Complete resolves the session from outside the surface. It reports whether
// this call decided the outcome.
func (s *Session) Complete(result Result) bool {
	result.State = StateResolved
	return s.resolve(result)
}

// Run shows the page and blocks until the session ends. Calling Run again
// returns the result of the first run.
func (s *Session) Run(ctx context.Context) Result {
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateDisplayed)) {
		result, err := s.slot.Wait(ctx)
		if err != nil {
			return Result{State: s.State(), Reason: "authentication aborted", Err: err}
		}
		return result
	}

	if result, ok := s.slot.Value(); ok {
		return result
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	s.logger.Info("displaying authentication page", "timeout", s.timeout)

	go func() {
		if err := s.surface.Load(runCtx, s.page, observer{s}); err != nil {
			s.post(event{kind: evLoadFailed, err: err})
		}
	}()

	confirming := false
	for {
		select {
		case <-s.slot.Done():

		case <-ctx.Done():
			s.resolve(Result{
				State:  StateResolved,
				Reason: "authentication aborted",
				Err:    ctx.Err(),
			})

		case <-timer.C:
			s.resolve(Result{
				State:  StateTimedOut,
				Reason: domain.ErrAuthTimeout.Error(),
				Err:    domain.ErrAuthTimeout,
			})

		case ev := <-s.events:
			switch ev.kind {
			case evTerminal:
				s.resolve(s.terminal(ev))
			case evLoadFailed:
				s.resolve(Result{
					State:  StateResolved,
					Reason: fmt.Sprintf("failed to load authentication page: %v", ev.err),
					Err:    ev.err,
				})
			case evNavigationFailed:
				s.resolve(Result{
					State:  StateResolved,
					Reason: fmt.Sprintf("navigation failed: %v", ev.err),
					Err:    ev.err,
				})
			case evCancelRequested:
				if confirming {
					continue
				}
				confirming = true
				go func() {
					if s.surface.ConfirmCancel(runCtx) {
						s.post(event{kind: evCancelConfirmed})
						return
					}
					s.post(event{kind: evCancelDeclined})
				}()
			case evCancelDeclined:
				confirming = false
				s.logger.Debug("cancel declined, continuing authentication")
			case evCancelConfirmed:
				s.resolve(Result{
					State:  StateCancelled,
					Reason: domain.ErrAuthCancelled.Error(),
					Err:    domain.ErrAuthCancelled,
				})
			}
		}

		if result, ok := s.slot.Value(); ok {
			s.dismissOnce.Do(s.surface.Dismiss)
			s.logger.Info("authentication finished",
				"state", result.State.String(),
				"success", result.Success,
				"reason", result.Reason,
			)
			return result
		}
	}
}

func (s *Session) terminal(ev event) Result {
	s.logger.Info("terminal redirect", "kind", string(ev.classification.Kind))

	verdict := redirect.Evaluate(ev.classification.Payload, s.origin)
	if !verdict.Success {
		return Result{
			State:  StateResolved,
			Reason: verdict.Reason,
			Params: verdict.Params,
			Err:    domain.ErrAuthFailed,
		}
	}
	return Result{State: StateResolved, Success: true, Params: verdict.Params}
}

func (s *Session) resolve(result Result) bool {
	if !s.slot.Resolve(result) {
		s.logger.Debug("session already resolved, ignoring", "reason", result.Reason)
		return false
	}
	s.state.Store(int32(result.State))
	return true
}

// post hands an event to the control loop, dropping it once the session
// has ended.
func (s *Session) post(ev event) {
	select {
	case <-s.slot.Done():
		s.logger.Debug("late event ignored", "event", int(ev.kind), "url", ev.url)
		return
	default:
	}

	select {
	case s.events <- ev:
	case <-s.slot.Done():
		s.logger.Debug("late event ignored", "event", int(ev.kind), "url", ev.url)
	}
}

type observer struct {
	s *Session
}

func (o observer) Navigating(url string) bool {
	c := redirect.ClassifyWith(url, o.s.matchers)
	if !c.Terminal {
		o.s.logger.Debug("navigating", "url", url)
		return false
	}
	o.s.post(event{kind: evTerminal, url: url, classification: c})
	return true
}

func (o observer) Navigated(url string, err error) {
	if err != nil {
		o.s.post(event{kind: evNavigationFailed, url: url, err: err})
		return
	}
	if c := redirect.ClassifyWith(url, o.s.matchers); c.Terminal {
		o.s.post(event{kind: evTerminal, url: url, classification: c})
	}
}

func (o observer) CancelRequested() {
	o.s.post(event{kind: evCancelRequested})
}
