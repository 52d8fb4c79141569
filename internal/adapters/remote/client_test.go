package remote

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/authsession"
	"github.com/DanielPopoola/ficmart-wallet-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubObserver struct {
	navigating []string
	navigated  []string
	navErr     error
	cancels    int
	terminal   string
}

func (o *stubObserver) Navigating(url string) bool {
	o.navigating = append(o.navigating, url)
	return url == o.terminal
}

func (o *stubObserver) Navigated(url string, err error) {
	o.navigated = append(o.navigated, url)
	o.navErr = err
}

func (o *stubObserver) CancelRequested() {
	o.cancels++
}

func TestClient_WalletRoundTrip(t *testing.T) {
	c := NewClient("a-1", true)

	ready, err := c.IsReady(context.Background())
	require.NoError(t, err)
	assert.True(t, ready)

	assert.ErrorIs(t, c.SubmitWallet(application.WalletResult{}), ErrNotWaiting)

	req := application.WalletRequest{Environment: domain.EnvironmentTest, PaymentSystem: "card"}
	results := make(chan application.WalletResult, 1)
	go func() {
		res, err := c.RequestPaymentToken(context.Background(), req)
		assert.NoError(t, err)
		results <- res
	}()

	require.Eventually(t, func() bool { return c.View().Stage == StageWallet }, time.Second, time.Millisecond)
	assert.Equal(t, &req, c.View().WalletRequest)

	want := application.WalletResult{Status: application.WalletCompleted, PaymentData: json.RawMessage(`{}`)}
	require.NoError(t, c.SubmitWallet(want))

	assert.Equal(t, want, <-results)
	assert.Equal(t, StageProcessing, c.View().Stage)
	assert.Nil(t, c.View().WalletRequest)
}

func TestClient_WalletContextCancelled(t *testing.T) {
	c := NewClient("a-1", false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.RequestPaymentToken(ctx, application.WalletRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_SurfaceForwardsToObserver(t *testing.T) {
	c := NewClient("a-1", true)

	_, err := c.Navigating("https://acs.test")
	assert.ErrorIs(t, err, ErrNotWaiting)
	assert.ErrorIs(t, c.Cancel(), ErrNotWaiting)

	obs := &stubObserver{terminal: "https://callback/done"}
	page := authsession.Page{HTML: "<html/>", BaseURL: "https://acs.test"}
	require.NoError(t, c.Load(context.Background(), page, obs))

	view := c.View()
	assert.Equal(t, StageChallenge, view.Stage)
	require.NotNil(t, view.Page)
	assert.Equal(t, "https://acs.test", view.Page.BaseURL)

	cancel, err := c.Navigating("https://acs.test/step")
	require.NoError(t, err)
	assert.False(t, cancel)

	cancel, err = c.Navigating("https://callback/done")
	require.NoError(t, err)
	assert.True(t, cancel)

	loadErr := errors.New("net::ERR_NAME_NOT_RESOLVED")
	require.NoError(t, c.Navigated("https://acs.test/step", loadErr))
	assert.Equal(t, loadErr, obs.navErr)

	require.NoError(t, c.Cancel())
	assert.Equal(t, 1, obs.cancels)
	assert.True(t, c.ConfirmCancel(context.Background()))

	c.Dismiss()
	assert.Equal(t, StageProcessing, c.View().Stage)
	assert.Nil(t, c.View().Page)
	_, err = c.Navigating("https://acs.test")
	assert.ErrorIs(t, err, ErrNotWaiting)
}

func TestClient_FinishOnce(t *testing.T) {
	c := NewClient("a-1", true)

	c.Finish(domain.Failed("authentication timed out", domain.ErrAuthTimeout))
	c.Finish(domain.Succeeded(&domain.Receipt{PaymentID: 1}, nil))

	select {
	case <-c.Done():
	default:
		t.Fatal("done channel not closed")
	}

	view := c.View()
	assert.Equal(t, StageDone, view.Stage)
	require.NotNil(t, view.Outcome)
	assert.False(t, view.Outcome.Success)
	assert.Equal(t, "authentication timed out", view.Outcome.Reason)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	c := r.Open("a-1", true)
	assert.Equal(t, "a-1", c.ID())
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("a-1")
	require.True(t, ok)
	assert.Same(t, c, got)

	r.Remove("a-1")
	_, ok = r.Get("a-1")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}
