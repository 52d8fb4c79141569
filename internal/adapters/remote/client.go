// Package remote lets a mobile client act as the wallet and the
// authentication surface of a payment that runs on the server. The
// orchestrator talks to a Client through the Wallet and Surface ports;
// the client's REST calls feed the other side.
package remote

import (
	"context"
	"errors"
	"sync"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/authsession"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
)

// ErrNotWaiting is returned when the client reports something the payment
// is not currently waiting for.
var ErrNotWaiting = errors.New("payment is not waiting for this action")

type Stage string

const (
	StageStarting   Stage = "starting"
	StageWallet     Stage = "wallet"
	StageChallenge  Stage = "challenge"
	StageProcessing Stage = "processing"
	StageDone       Stage = "done"
)

// View is a snapshot of what the remote client should do next.
type View struct {
	ID            string
	Stage         Stage
	WalletRequest *application.WalletRequest
	Page          *authsession.Page
	Outcome       *domain.Outcome
}

type Client struct {
	id          string
	walletReady bool

	mu        sync.Mutex
	stage     Stage
	walletReq *application.WalletRequest
	walletCh  chan application.WalletResult
	page      *authsession.Page
	observer  authsession.Observer
	outcome   *domain.Outcome

	done chan struct{}
}

func NewClient(id string, walletReady bool) *Client {
	return &Client{
		id:          id,
		walletReady: walletReady,
		stage:       StageStarting,
		walletCh:    make(chan application.WalletResult, 1),
		done:        make(chan struct{}),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) IsReady(context.Context) (bool, error) {
	return c.walletReady, nil
}

// RequestPaymentToken publishes req and waits for the client to answer with
// SubmitWallet.
func (c *Client) RequestPaymentToken(ctx context.Context, req application.WalletRequest) (application.WalletResult, error) {
	c.mu.Lock()
	c.stage = StageWallet
	c.walletReq = &req
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.walletReq = nil
		c.stage = StageProcessing
		c.mu.Unlock()
	}()

	select {
	case res := <-c.walletCh:
		return res, nil
	case <-ctx.Done():
		return application.WalletResult{}, ctx.Err()
	}
}

func (c *Client) SubmitWallet(res application.WalletResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.walletReq == nil {
		return ErrNotWaiting
	}
	select {
	case c.walletCh <- res:
		return nil
	default:
		return ErrNotWaiting
	}
}

func (c *Client) Load(_ context.Context, page authsession.Page, observer authsession.Observer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stage = StageChallenge
	c.page = &page
	c.observer = observer
	return nil
}

// ConfirmCancel always agrees: the remote client asks the cardholder before
// it sends a cancel.
func (c *Client) ConfirmCancel(context.Context) bool {
	return true
}

func (c *Client) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.page = nil
	c.observer = nil
	if c.stage == StageChallenge {
		c.stage = StageProcessing
	}
}

// Navigating forwards a navigation the client's webview is about to make and
// reports whether the client must abort it.
func (c *Client) Navigating(url string) (bool, error) {
	obs := c.currentObserver()
	if obs == nil {
		return false, ErrNotWaiting
	}
	return obs.Navigating(url), nil
}

func (c *Client) Navigated(url string, navErr error) error {
	obs := c.currentObserver()
	if obs == nil {
		return ErrNotWaiting
	}
	obs.Navigated(url, navErr)
	return nil
}

func (c *Client) Cancel() error {
	obs := c.currentObserver()
	if obs == nil {
		return ErrNotWaiting
	}
	obs.CancelRequested()
	return nil
}

func (c *Client) currentObserver() authsession.Observer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.observer
}

// Finish stores the payment's outcome. Only the first call has an effect.
func (c *Client) Finish(outcome domain.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.outcome != nil {
		return
	}
	c.outcome = &outcome
	c.stage = StageDone
	c.page = nil
	c.observer = nil
	close(c.done)
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return View{
		ID:            c.id,
		Stage:         c.stage,
		WalletRequest: c.walletReq,
		Page:          c.page,
		Outcome:       c.outcome,
	}
}
