package browser

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/muurk/radioctl/internal/logging"
)

const (
	// DefaultTimeout bounds every page and element wait.
	DefaultTimeout = 10 * time.Second

	// DefaultViewportWidth and DefaultViewportHeight size the browser
	// window; the console layout assumes a desktop viewport.
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720

	// framePollInterval paces the frame search in EnterFrameWith.
	framePollInterval = 250 * time.Millisecond
)

// Options configures a Driver.
type Options struct {
	// Headless hides the browser window.
	Headless bool

	// Timeout bounds every page and element wait. Zero uses DefaultTimeout.
	Timeout time.Duration

	// ViewportWidth and ViewportHeight size the browser context. Zero uses
	// the defaults.
	ViewportWidth  int
	ViewportHeight int
}

// Driver owns the lifecycle of one browser automation handle: the
// Playwright engine, one Chromium instance, one context, and one page.
// It is exclusively owned by a single invocation and is not safe for
// concurrent use.
//
// Every wait the Driver exposes is bounded by Options.Timeout and fails
// with a classified *Error; there are no unconditional sleeps. Lookups
// target the page, or, after one of the EnterFrame variants, the active
// nested document until ExitFrames.
type Driver struct {
	opts Options

	pw       *playwright.Playwright
	browser  playwright.Browser
	browserC playwright.BrowserContext
	page     playwright.Page
	frame    playwright.Frame

	launched bool
}

// New creates a Driver with the given options. Launch must be called
// before any page operation.
func New(opts Options) *Driver {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.ViewportWidth == 0 {
		opts.ViewportWidth = DefaultViewportWidth
	}
	if opts.ViewportHeight == 0 {
		opts.ViewportHeight = DefaultViewportHeight
	}
	return &Driver{opts: opts}
}

// Launch starts the Playwright engine, Chromium, a fresh context, and one
// page. The first run downloads browser binaries, which can take a while;
// ctx aborts between the stages. Any failure here is an engine error and
// the caller reports it as a terminal outcome.
func (d *Driver) Launch(ctx context.Context) error {
	if d.launched {
		return NewEngineError("launch", errAlreadyLaunched)
	}

	// Keep driver install/run output away from the curated terminal UI.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return NewEngineError("install", err)
	}
	if err := ctx.Err(); err != nil {
		return NewEngineError("launch", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return NewEngineError("start", err)
	}
	d.pw = pw

	if err := ctx.Err(); err != nil {
		d.Close()
		return NewEngineError("launch", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(d.opts.Headless),
	})
	if err != nil {
		d.Close()
		return NewEngineError("chromium", err)
	}
	d.browser = b

	// The self-signed certificate is deliberately NOT ignored at the
	// context level: the interstitial bypass flow is the tested path.
	bc, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  d.opts.ViewportWidth,
			Height: d.opts.ViewportHeight,
		},
	})
	if err != nil {
		d.Close()
		return NewEngineError("context", err)
	}
	d.browserC = bc

	page, err := bc.NewPage()
	if err != nil {
		d.Close()
		return NewEngineError("page", err)
	}
	page.SetDefaultTimeout(d.timeoutMs())
	d.page = page

	d.launched = true
	logging.Debug("Browser session launched")
	return nil
}

// Close releases page, context, browser, and engine in order. Safe to
// call on a partially launched or already closed Driver; errors during
// teardown are ignored so every exit path can release unconditionally.
func (d *Driver) Close() error {
	if d.page != nil {
		_ = d.page.Close()
		d.page = nil
	}
	if d.browserC != nil {
		_ = d.browserC.Close()
		d.browserC = nil
	}
	if d.browser != nil {
		_ = d.browser.Close()
		d.browser = nil
	}
	if d.pw != nil {
		_ = d.pw.Stop()
		d.pw = nil
	}
	if d.launched {
		d.launched = false
		logging.Debug("Browser session closed")
	}
	d.frame = nil
	return nil
}

// Hold keeps the session open for the given duration. Used in visible
// mode to leave a failed page on screen for manual inspection.
func (d *Driver) Hold(dur time.Duration) {
	if !d.launched || dur <= 0 {
		return
	}
	time.Sleep(dur)
}

// Goto navigates to url and waits for the load event.
func (d *Driver) Goto(url string) error {
	if err := d.ready("goto"); err != nil {
		return err
	}
	d.frame = nil

	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(d.timeoutMs()),
	})
	if err != nil {
		logging.LogNavigation(url, "failed")
		return NewNavigationError(url, err)
	}
	logging.LogNavigation(url, "loaded")
	return nil
}

// URL returns the current page URL, or "" before Launch.
func (d *Driver) URL() string {
	if d.page == nil {
		return ""
	}
	return d.page.URL()
}

// WaitVisible waits until the selector matches a visible element.
func (d *Driver) WaitVisible(selector string) error {
	if err := d.ready("wait"); err != nil {
		return err
	}
	if err := d.waitFor(selector, playwright.WaitForSelectorStateVisible); err != nil {
		return NewTimeoutError("wait", selector, d.opts.Timeout, err)
	}
	return nil
}

// WaitGone waits until the selector matches nothing visible. Used to
// detect navigation away from a form.
func (d *Driver) WaitGone(selector string) error {
	if err := d.ready("wait-gone"); err != nil {
		return err
	}
	if err := d.waitFor(selector, playwright.WaitForSelectorStateHidden); err != nil {
		return NewTimeoutError("wait-gone", selector, d.opts.Timeout, err)
	}
	return nil
}

// Click waits for the selector to be actionable and clicks it.
func (d *Driver) Click(selector string) error {
	if err := d.ready("click"); err != nil {
		return err
	}

	var err error
	if d.frame != nil {
		err = d.frame.Click(selector, playwright.FrameClickOptions{
			Timeout: playwright.Float(d.timeoutMs()),
		})
	} else {
		err = d.page.Click(selector, playwright.PageClickOptions{
			Timeout: playwright.Float(d.timeoutMs()),
		})
	}
	if err != nil {
		return NewTimeoutError("click", selector, d.opts.Timeout, err)
	}
	return nil
}

// Fill waits for the selector and sets its value. The value is never
// logged; it may be credential material.
func (d *Driver) Fill(selector, value string) error {
	if err := d.ready("fill"); err != nil {
		return err
	}

	var err error
	if d.frame != nil {
		err = d.frame.Fill(selector, value, playwright.FrameFillOptions{
			Timeout: playwright.Float(d.timeoutMs()),
		})
	} else {
		err = d.page.Fill(selector, value, playwright.PageFillOptions{
			Timeout: playwright.Float(d.timeoutMs()),
		})
	}
	if err != nil {
		return NewTimeoutError("fill", selector, d.opts.Timeout, err)
	}
	return nil
}

// Text returns the text content of the first element matching selector.
// A missing element is a structural error.
func (d *Driver) Text(selector string) (string, error) {
	if err := d.ready("text"); err != nil {
		return "", err
	}

	el, err := d.query(selector)
	if err != nil || el == nil {
		return "", NewStructuralError("text", selector)
	}
	content, err := el.TextContent()
	if err != nil {
		return "", NewStructuralError("text", selector)
	}
	return strings.TrimSpace(content), nil
}

// Attr returns the named attribute of the first element matching
// selector, or "" when the attribute is unset. A missing element is a
// structural error.
func (d *Driver) Attr(selector, name string) (string, error) {
	if err := d.ready("attr"); err != nil {
		return "", err
	}

	el, err := d.query(selector)
	if err != nil || el == nil {
		return "", NewStructuralError("attr", selector)
	}
	val, err := el.GetAttribute(name)
	if err != nil {
		return "", nil
	}
	return val, nil
}

// Exists reports whether any element matches selector right now, without
// waiting.
func (d *Driver) Exists(selector string) (bool, error) {
	if err := d.ready("exists"); err != nil {
		return false, err
	}

	el, err := d.query(selector)
	if err != nil {
		return false, nil
	}
	return el != nil, nil
}

// IsChecked reports the checked state of the first element matching
// selector. A missing element is a structural error.
func (d *Driver) IsChecked(selector string) (bool, error) {
	if err := d.ready("checked"); err != nil {
		return false, err
	}

	el, err := d.query(selector)
	if err != nil || el == nil {
		return false, NewStructuralError("checked", selector)
	}
	checked, err := el.IsChecked()
	if err != nil {
		return false, NewStructuralError("checked", selector)
	}
	return checked, nil
}

// BodyContains reports whether the page body text contains the given
// marker. The body text is probed, never logged or returned.
func (d *Driver) BodyContains(marker string) (bool, error) {
	if err := d.ready("body"); err != nil {
		return false, err
	}

	el, err := d.query("body")
	if err != nil || el == nil {
		return false, nil
	}
	content, err := el.TextContent()
	if err != nil {
		return false, nil
	}
	return strings.Contains(content, marker), nil
}

// EnterFrame scopes subsequent lookups to the named frame. The console
// serves its form controls from named frames.
func (d *Driver) EnterFrame(name string) error {
	if err := d.ready("frame"); err != nil {
		return err
	}

	for _, f := range d.page.Frames() {
		if f.Name() == name {
			d.frame = f
			return nil
		}
	}
	return NewStructuralError("frame", name)
}

// EnterFrameAt waits for the iframe element matching selector and scopes
// subsequent lookups to its content document.
func (d *Driver) EnterFrameAt(selector string) error {
	if err := d.ready("frame-at"); err != nil {
		return err
	}

	// Wait for the iframe element itself before resolving its document;
	// nested content loads after the outer page.
	if err := d.waitFor(selector, playwright.WaitForSelectorStateAttached); err != nil {
		return NewTimeoutError("frame-at", selector, d.opts.Timeout, err)
	}

	el, err := d.query(selector)
	if err != nil || el == nil {
		return NewStructuralError("frame-at", selector)
	}
	f, err := el.ContentFrame()
	if err != nil || f == nil {
		return NewStructuralError("frame-at", selector)
	}
	d.frame = f
	return nil
}

// EnterFrameWith scopes subsequent lookups to the first document that
// contains selector. The top-level page is checked before nested frames.
// The console loads some panes into unnamed iframes that attach after the
// outer page settles, so the search repeats until the timeout.
func (d *Driver) EnterFrameWith(selector string) error {
	if err := d.ready("frame-with"); err != nil {
		return err
	}

	deadline := time.Now().Add(d.opts.Timeout)
	for {
		d.frame = nil
		if el, err := d.page.QuerySelector(selector); err == nil && el != nil {
			return nil
		}
		for _, f := range d.page.Frames() {
			if f.ParentFrame() == nil {
				continue
			}
			if el, err := f.QuerySelector(selector); err == nil && el != nil {
				d.frame = f
				return nil
			}
		}
		if time.Now().After(deadline) {
			return NewTimeoutError("frame-with", selector, d.opts.Timeout,
				errors.New("no document contains the element"))
		}
		time.Sleep(framePollInterval)
	}
}

// ExitFrames scopes lookups back to the top-level page.
func (d *Driver) ExitFrames() error {
	if err := d.ready("frame-exit"); err != nil {
		return err
	}
	d.frame = nil
	return nil
}

// ready guards every operation against use before Launch or after Close.
func (d *Driver) ready(op string) error {
	if !d.launched || d.page == nil {
		return NewEngineError(op, errNotLaunched)
	}
	return nil
}

// waitFor runs a bounded wait in the active scope.
func (d *Driver) waitFor(selector string, state *playwright.WaitForSelectorState) error {
	if d.frame != nil {
		_, err := d.frame.WaitForSelector(selector, playwright.FrameWaitForSelectorOptions{
			State:   state,
			Timeout: playwright.Float(d.timeoutMs()),
		})
		return err
	}
	_, err := d.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   state,
		Timeout: playwright.Float(d.timeoutMs()),
	})
	return err
}

// query does a non-waiting lookup in the active scope.
func (d *Driver) query(selector string) (playwright.ElementHandle, error) {
	if d.frame != nil {
		return d.frame.QuerySelector(selector)
	}
	return d.page.QuerySelector(selector)
}

func (d *Driver) timeoutMs() float64 {
	return float64(d.opts.Timeout.Milliseconds())
}
