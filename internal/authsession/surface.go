package authsession

import "context"

// Page is what the surface renders: the issuer's HTML resolved against the
// ACS URL it was fetched from.
type Page struct {
	HTML        string
	ContentType string
	BaseURL     string
	Cookie      string
}

// Observer receives the surface's navigation events. Its methods may be
// called from any goroutine.
type Observer interface {
	// Navigating is called before the surface follows url. Returning true
	// aborts the navigation.
	Navigating(url string) (cancel bool)
	Navigated(url string, err error)
	// CancelRequested reports an explicit cancel or back action.
	CancelRequested()
}

// Surface is the interactive browser that shows the authentication page.
type Surface interface {
	Load(ctx context.Context, page Page, observer Observer) error
	// ConfirmCancel asks the cardholder whether to abandon authentication.
	ConfirmCancel(ctx context.Context) bool
	Dismiss()
}
