package console

import (
	"context"

	"github.com/muurk/radioctl/internal/browser"
)

// Session is the browser surface the flows drive. It mirrors the page
// operations of browser.Driver; tests substitute a scripted
// implementation so every flow can be exercised without a browser.
type Session interface {
	// Goto navigates to url and waits for the page to load.
	Goto(url string) error

	// URL returns the current page URL.
	URL() string

	// WaitVisible blocks until selector matches a visible element.
	WaitVisible(selector string) error

	// WaitGone blocks until selector matches nothing visible.
	WaitGone(selector string) error

	// Click clicks the first element matching selector.
	Click(selector string) error

	// Fill sets the value of the first element matching selector. The
	// value may be credential material and is never logged.
	Fill(selector, value string) error

	// Attr returns the named attribute of the first element matching
	// selector.
	Attr(selector, name string) (string, error)

	// Exists reports whether selector matches anything right now.
	Exists(selector string) (bool, error)

	// IsChecked reports the checked state of the first element matching
	// selector.
	IsChecked(selector string) (bool, error)

	// BodyContains reports whether the page body text contains marker.
	BodyContains(marker string) (bool, error)

	// EnterFrame scopes lookups to the named frame.
	EnterFrame(name string) error

	// EnterFrameWith scopes lookups to the first document containing
	// selector.
	EnterFrameWith(selector string) error

	// ExitFrames scopes lookups back to the top-level page.
	ExitFrames() error

	// Close releases the session. Safe to call more than once.
	Close() error
}

// Driver sessions satisfy the flow surface.
var _ Session = (*browser.Driver)(nil)

// Factory opens the browser session a pipeline run drives. Acquisition
// is separated from use so it happens inside the pipeline, after the
// preflight checks have passed, and never earlier.
type Factory interface {
	Open(ctx context.Context) (Session, error)
}

// DriverFactory opens real Playwright-backed sessions.
type DriverFactory struct {
	Options browser.Options
}

// Open launches a fresh browser session. A partially launched session is
// released before the error is returned.
func (f DriverFactory) Open(ctx context.Context) (Session, error) {
	d := browser.New(f.Options)
	if err := d.Launch(ctx); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}
