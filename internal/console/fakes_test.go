package console

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/muurk/radioctl/internal/browser"
	"github.com/muurk/radioctl/internal/radio"
	"github.com/muurk/radioctl/internal/retry"
)

// fakeSession is a scripted Session. Tests declare the page state up
// front, attach hooks that mutate it on clicks or navigations, and
// assert against the recorded call log afterwards. Element waits fail
// with the same classified errors the real driver produces, so retry
// classification is exercised for real.
type fakeSession struct {
	url     string
	body    string
	present map[string]bool
	checked map[string]bool
	attrs   map[string]string
	frames  map[string]bool

	onClick map[string]func(*fakeSession) error
	onGoto  func(*fakeSession, string) error

	calls      []string
	filled     map[string]string
	closeCount int
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		present: map[string]bool{},
		checked: map[string]bool{},
		attrs:   map[string]string{},
		frames:  map[string]bool{},
		onClick: map[string]func(*fakeSession) error{},
		filled:  map[string]string{},
	}
}

func (f *fakeSession) record(call string) {
	f.calls = append(f.calls, call)
}

// count returns how many recorded calls equal call.
func (f *fakeSession) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeSession) timeout(op, selector string) error {
	return browser.NewTimeoutError(op, selector, time.Millisecond, errors.New("scripted"))
}

func (f *fakeSession) Goto(url string) error {
	f.record("goto:" + url)
	if f.onGoto != nil {
		return f.onGoto(f, url)
	}
	f.url = url
	return nil
}

func (f *fakeSession) URL() string { return f.url }

func (f *fakeSession) WaitVisible(selector string) error {
	f.record("wait:" + selector)
	if !f.present[selector] {
		return f.timeout("wait", selector)
	}
	return nil
}

func (f *fakeSession) WaitGone(selector string) error {
	f.record("wait-gone:" + selector)
	if f.present[selector] {
		return f.timeout("wait-gone", selector)
	}
	return nil
}

func (f *fakeSession) Click(selector string) error {
	f.record("click:" + selector)
	if hook, ok := f.onClick[selector]; ok {
		return hook(f)
	}
	if !f.present[selector] {
		return f.timeout("click", selector)
	}
	return nil
}

// Fill records the selector but never the value; tests assert credential
// material stays out of the call log.
func (f *fakeSession) Fill(selector, value string) error {
	f.record("fill:" + selector)
	if !f.present[selector] {
		return f.timeout("fill", selector)
	}
	f.filled[selector] = value
	return nil
}

func (f *fakeSession) Attr(selector, name string) (string, error) {
	f.record("attr:" + selector)
	v, ok := f.attrs[selector]
	if !ok {
		return "", browser.NewStructuralError("attr", selector)
	}
	return v, nil
}

func (f *fakeSession) Exists(selector string) (bool, error) {
	return f.present[selector], nil
}

func (f *fakeSession) IsChecked(selector string) (bool, error) {
	f.record("checked:" + selector)
	if !f.present[selector] {
		return false, browser.NewStructuralError("checked", selector)
	}
	return f.checked[selector], nil
}

func (f *fakeSession) BodyContains(marker string) (bool, error) {
	return strings.Contains(f.body, marker), nil
}

func (f *fakeSession) EnterFrame(name string) error {
	f.record("frame:" + name)
	if !f.frames[name] {
		return browser.NewStructuralError("frame", name)
	}
	return nil
}

func (f *fakeSession) EnterFrameWith(selector string) error {
	f.record("frame-with:" + selector)
	if !f.present[selector] {
		return f.timeout("frame-with", selector)
	}
	return nil
}

func (f *fakeSession) ExitFrames() error {
	f.record("frame-exit")
	return nil
}

func (f *fakeSession) Close() error {
	f.closeCount++
	return nil
}

// holdingSession adds the hold-open capability the pipeline probes for.
type holdingSession struct {
	*fakeSession
	held time.Duration
}

func (h *holdingSession) Hold(d time.Duration) { h.held = d }

// fakeFactory hands out a prepared session and records how often it was
// asked.
type fakeFactory struct {
	sess  Session
	err   error
	opens int
}

func (f *fakeFactory) Open(ctx context.Context) (Session, error) {
	f.opens++
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}

// fakePreflight returns a fixed verdict; nil means proceed.
type fakePreflight struct {
	status *radio.Status
}

func (p fakePreflight) Check() *radio.Status { return p.status }

// fakeCreds returns fixed credentials.
type fakeCreds struct {
	user, pass string
	err        error
}

func (c fakeCreds) Credentials() (string, string, error) {
	return c.user, c.pass, c.err
}

const (
	testConsoleURL = "https://routerlogin.net/"
	testAdminURL   = "https://routerlogin.net/adv_index.htm"
	testIndexURL   = "https://routerlogin.net/index.htm"
)

// testFlowOptions keeps waits out of the unit tests.
func testFlowOptions() FlowOptions {
	return FlowOptions{
		ConsoleURL:  testConsoleURL,
		AdminURL:    testAdminURL,
		Retry:       retry.Policy{MaxAttempts: 1},
		ApplySettle: time.Millisecond,
	}
}

func testControllerOptions() Options {
	return Options{
		ConsoleURL:  testConsoleURL,
		AdminURL:    testAdminURL,
		Retry:       retry.Policy{MaxAttempts: 1},
		ApplySettle: time.Millisecond,
	}
}

// scriptLogin puts the fake on the login page and makes the submit
// succeed: the form unloads and the console lands on the index page.
func scriptLogin(f *fakeSession, sel Selectors) {
	f.url = testConsoleURL
	f.present[sel.UsernameField] = true
	f.present[sel.PasswordField] = true
	f.present[sel.LoginButton] = true
	f.onClick[sel.LoginButton] = func(f *fakeSession) error {
		f.present[sel.UsernameField] = false
		f.present[sel.PasswordField] = false
		f.url = testIndexURL
		return nil
	}
}

// scriptStatusPage makes the advanced pane reachable with the given
// badge class on the 2.4GHz row.
func scriptStatusPage(f *fakeSession, sel Selectors, class string) {
	f.present[sel.AdvancedButton] = true
	f.present[sel.ContentPane] = true
	f.present[sel.StatusBadge] = true
	f.attrs[sel.StatusBadge] = class
}

// scriptWirelessForm makes the settings form reachable with the radio
// checkbox in the given state. Applying flips the badge class so the
// verification read observes the new state.
func scriptWirelessForm(f *fakeSession, sel Selectors, checked bool) {
	f.present[sel.WirelessMenu] = true
	f.present[sel.ConfigFrameElement()] = true
	f.frames[sel.ConfigFrame] = true
	f.present[sel.RadioCheckbox] = true
	f.present[sel.RadioLabel] = true
	f.present[sel.ApplyButton] = true
	f.checked[sel.RadioCheckbox] = checked
	f.onClick[sel.RadioLabel] = func(f *fakeSession) error {
		f.checked[sel.RadioCheckbox] = !f.checked[sel.RadioCheckbox]
		return nil
	}
	f.onClick[sel.ApplyButton] = func(f *fakeSession) error {
		if f.checked[sel.RadioCheckbox] {
			f.attrs[sel.StatusBadge] = "img_status 16 img_status_good"
		} else {
			f.attrs[sel.StatusBadge] = "img_status 16 img_status_error"
		}
		return nil
	}
}
