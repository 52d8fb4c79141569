package authsession_test

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/authsession"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redirectPrefix = "http://secure-redirect.flitt.com/submit/#"

var challenge = domain.Challenge{
	HTML:           "<html>challenge</html>",
	ContentType:    "text/html",
	URL:            "https://acs.bank.example/pareq",
	CallbackOrigin: "https://callback",
	GatewayHost:    "https://pay.flitt.com",
	Cookie:         "acs=1",
}

// fakeSurface hands the observer to the test and records surface calls.
type fakeSurface struct {
	loadErr error
	confirm bool

	loaded        chan authsession.Observer
	confirmCalls  atomic.Int32
	dismissCalls  atomic.Int32
	confirmSignal chan struct{}

	mu   sync.Mutex
	page authsession.Page
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		loaded:        make(chan authsession.Observer, 1),
		confirmSignal: make(chan struct{}, 4),
	}
}

func (f *fakeSurface) Load(_ context.Context, page authsession.Page, observer authsession.Observer) error {
	f.mu.Lock()
	f.page = page
	f.mu.Unlock()
	f.loaded <- observer
	return f.loadErr
}

func (f *fakeSurface) ConfirmCancel(context.Context) bool {
	f.confirmCalls.Add(1)
	select {
	case f.confirmSignal <- struct{}{}:
	default:
	}
	return f.confirm
}

func (f *fakeSurface) Dismiss() {
	f.dismissCalls.Add(1)
}

func (f *fakeSurface) observer(t *testing.T) authsession.Observer {
	t.Helper()
	select {
	case obs := <-f.loaded:
		return obs
	case <-time.After(2 * time.Second):
		t.Fatal("surface was never loaded")
		return nil
	}
}

func newSession(surface *fakeSurface, opts ...authsession.Option) *authsession.Session {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	opts = append([]authsession.Option{authsession.WithLogger(logger)}, opts...)
	return authsession.New(challenge, "flitt.com", surface, opts...)
}

// runAsync starts the session and returns a channel carrying its result.
func runAsync(s *authsession.Session) <-chan authsession.Result {
	out := make(chan authsession.Result, 1)
	go func() { out <- s.Run(context.Background()) }()
	return out
}

func awaitResult(t *testing.T, results <-chan authsession.Result) authsession.Result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("session did not finish")
		return authsession.Result{}
	}
}

func TestSession_LoadsChallengePage(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)
	assert.Equal(t, authsession.StateCreated, session.State())

	results := runAsync(session)
	obs := surface.observer(t)

	surface.mu.Lock()
	assert.Equal(t, authsession.Page{
		HTML:        challenge.HTML,
		ContentType: challenge.ContentType,
		BaseURL:     challenge.URL,
		Cookie:      challenge.Cookie,
	}, surface.page)
	surface.mu.Unlock()
	assert.Equal(t, authsession.StateDisplayed, session.State())

	assert.False(t, obs.Navigating("https://acs.bank.example/step2"))
	obs.Navigated("https://acs.bank.example/step2", nil)

	assert.True(t, obs.Navigating("https://callback/done"))
	result := awaitResult(t, results)

	assert.True(t, result.Success)
	assert.Nil(t, result.Params)
	assert.Equal(t, authsession.StateResolved, session.State())
	assert.Equal(t, int32(1), surface.dismissCalls.Load())
}

func TestSession_InlinePayload(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)
	results := runAsync(session)
	obs := surface.observer(t)

	payload := `{"url":"https://callback/ok","params":{"response_status":"success","payment_id":42}}`
	assert.True(t, obs.Navigating(redirectPrefix+url.PathEscape(payload)))

	result := awaitResult(t, results)
	require.True(t, result.Success)
	require.NotNil(t, result.Params)

	receipt, err := domain.ReceiptFromParams(result.Params, "")
	require.NoError(t, err)
	assert.Equal(t, int64(42), receipt.PaymentID)
}

func TestSession_FailedAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		reason string
	}{
		{
			name:   "gateway reported failure",
			url:    redirectPrefix + `{"params":{"response_status":"failure","error_message":"3DS failed"}}`,
			reason: "3DS failed",
		},
		{
			name:   "failure without message",
			url:    redirectPrefix + `{"params":{"response_status":"failure"}}`,
			reason: "authentication failed",
		},
		{
			name:   "foreign url in payload",
			url:    redirectPrefix + `{"url":"https://elsewhere.example"}`,
			reason: "invalid authentication response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := newFakeSurface()
			session := newSession(surface)
			results := runAsync(session)

			assert.True(t, surface.observer(t).Navigating(tt.url))

			result := awaitResult(t, results)
			assert.False(t, result.Success)
			assert.Equal(t, tt.reason, result.Reason)
			assert.ErrorIs(t, result.Err, domain.ErrAuthFailed)
		})
	}
}

func TestSession_UnparseablePayloadIsSuccess(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)
	results := runAsync(session)

	assert.True(t, surface.observer(t).Navigating(redirectPrefix+"%%%not-json"))

	result := awaitResult(t, results)
	assert.True(t, result.Success)
	assert.Nil(t, result.Params)
}

func TestSession_TimesOut(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface, authsession.WithTimeout(50*time.Millisecond))
	results := runAsync(session)
	obs := surface.observer(t)

	result := awaitResult(t, results)

	assert.False(t, result.Success)
	assert.Equal(t, "authentication timed out", result.Reason)
	assert.ErrorIs(t, result.Err, domain.ErrAuthTimeout)
	assert.Equal(t, authsession.StateTimedOut, session.State())
	assert.Equal(t, int32(1), surface.dismissCalls.Load())

	// A redirect arriving after the deadline changes nothing.
	obs.Navigating("https://callback/late")
	late, ok := session.Result()
	require.True(t, ok)
	assert.Equal(t, result, late)
}

func TestSession_CancelConfirmed(t *testing.T) {
	surface := newFakeSurface()
	surface.confirm = true
	session := newSession(surface)
	results := runAsync(session)

	surface.observer(t).CancelRequested()

	result := awaitResult(t, results)
	assert.False(t, result.Success)
	assert.Equal(t, "cancelled by user", result.Reason)
	assert.ErrorIs(t, result.Err, domain.ErrAuthCancelled)
	assert.Equal(t, authsession.StateCancelled, session.State())
	assert.Equal(t, int32(1), surface.confirmCalls.Load())
}

func TestSession_CancelDeclined(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)
	results := runAsync(session)
	obs := surface.observer(t)

	obs.CancelRequested()
	<-surface.confirmSignal

	obs.Navigating("https://callback/done")

	result := awaitResult(t, results)
	assert.True(t, result.Success)
}

func TestSession_LoadFailure(t *testing.T) {
	surface := newFakeSurface()
	surface.loadErr = errors.New("renderer crashed")
	session := newSession(surface)

	result := session.Run(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, "failed to load authentication page: renderer crashed", result.Reason)
	assert.Equal(t, int32(1), surface.dismissCalls.Load())
}

func TestSession_NavigationFailure(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)
	results := runAsync(session)

	surface.observer(t).Navigated("https://acs.bank.example/step2", errors.New("connection reset"))

	result := awaitResult(t, results)
	assert.False(t, result.Success)
	assert.Equal(t, "navigation failed: connection reset", result.Reason)
}

func TestSession_CompleteFirstWriteWins(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)
	results := runAsync(session)
	obs := surface.observer(t)

	assert.True(t, session.Complete(authsession.Result{Success: true}))
	assert.False(t, session.Complete(authsession.Result{Reason: "too late"}))

	result := awaitResult(t, results)
	assert.True(t, result.Success)
	assert.Empty(t, result.Reason)

	obs.Navigated("https://acs.bank.example", errors.New("aborted"))
	again := session.Run(context.Background())
	assert.Equal(t, result, again)
	assert.Equal(t, int32(1), surface.dismissCalls.Load())
}

func TestSession_ContextCancelled(t *testing.T) {
	surface := newFakeSurface()
	session := newSession(surface)

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan authsession.Result, 1)
	go func() { out <- session.Run(ctx) }()
	surface.observer(t)

	cancel()

	result := awaitResult(t, out)
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, context.Canceled)
}

func TestSession_RacingEventsResolveOnce(t *testing.T) {
	surface := newFakeSurface()
	surface.confirm = true
	session := newSession(surface)
	results := runAsync(session)
	obs := surface.observer(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); obs.Navigating("https://callback/x") }()
		go func() { defer wg.Done(); obs.CancelRequested() }()
		go func() { defer wg.Done(); session.Complete(authsession.Result{Reason: "external"}) }()
	}

	result := awaitResult(t, results)
	wg.Wait()

	final, ok := session.Result()
	require.True(t, ok)
	assert.Equal(t, result, final)
	assert.Equal(t, int32(1), surface.dismissCalls.Load())
}
