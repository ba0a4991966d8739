package console

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/muurk/radioctl/internal/browser"
	"github.com/muurk/radioctl/internal/retry"
)

func TestLoginSubmitsCredentialsOnce(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptLogin(f, sel)

	flow := NewFlow(f, testFlowOptions())
	if err := flow.Login(context.Background(), "admin", "hunter2"); err != nil {
		t.Fatalf("Login() = %v, want nil", err)
	}

	if got := f.filled[sel.UsernameField]; got != "admin" {
		t.Errorf("username filled = %q, want %q", got, "admin")
	}
	if got := f.filled[sel.PasswordField]; got != "hunter2" {
		t.Errorf("password was not written into the form")
	}
	if got := f.count("click:" + sel.LoginButton); got != 1 {
		t.Errorf("login clicks = %d, want 1", got)
	}

	// The call log is what gets surfaced in failures and debug output;
	// credential values must never appear in it.
	for _, call := range f.calls {
		if strings.Contains(call, "hunter2") || strings.Contains(call, "admin") {
			t.Fatalf("credential material leaked into call log: %q", call)
		}
	}
}

func TestLoginSkipsWhenAlreadyAuthenticated(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	f.url = testIndexURL
	f.present[sel.AdvancedButton] = true
	// No login form anywhere.

	flow := NewFlow(f, testFlowOptions())
	if err := flow.Login(context.Background(), "admin", "pw"); err != nil {
		t.Fatalf("Login() = %v, want nil", err)
	}
	if got := f.count("fill:" + sel.UsernameField); got != 0 {
		t.Errorf("username fills = %d, want 0", got)
	}
	if got := f.count("click:" + sel.LoginButton); got != 0 {
		t.Errorf("login clicks = %d, want 0", got)
	}
}

func TestLoginRejectedIsTerminal(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptLogin(f, sel)
	// The console bounces back to the login page with the form intact.
	f.onClick[sel.LoginButton] = func(f *fakeSession) error {
		f.url = testConsoleURL + "login.htm"
		return nil
	}

	opts := testFlowOptions()
	opts.Retry = retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}
	flow := NewFlow(f, opts)

	err := flow.Login(context.Background(), "admin", "wrong")
	if !IsAuthError(err) {
		t.Fatalf("Login() = %v, want auth error", err)
	}
	// A rejected login must not be hammered against the router.
	if got := f.count("click:" + sel.LoginButton); got != 1 {
		t.Errorf("login clicks = %d, want 1", got)
	}
}

func TestLoginTakesOverConcurrentSession(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptLogin(f, sel)
	f.onClick[sel.LoginButton] = func(f *fakeSession) error {
		f.present[sel.UsernameField] = false
		f.present[sel.PasswordField] = false
		f.present[sel.TakeoverYes] = true
		f.url = testConsoleURL + "multi_login.cgi"
		return nil
	}
	f.onClick[sel.TakeoverYes] = func(f *fakeSession) error {
		f.present[sel.TakeoverYes] = false
		f.url = testIndexURL
		return nil
	}

	flow := NewFlow(f, testFlowOptions())
	if err := flow.Login(context.Background(), "admin", "pw"); err != nil {
		t.Fatalf("Login() = %v, want nil", err)
	}
	if got := f.count("click:" + sel.TakeoverYes); got != 1 {
		t.Errorf("takeover clicks = %d, want 1", got)
	}
}

func TestLoginTakeoverFailure(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptLogin(f, sel)
	f.onClick[sel.LoginButton] = func(f *fakeSession) error {
		f.present[sel.UsernameField] = false
		f.present[sel.PasswordField] = false
		f.present[sel.TakeoverYes] = true
		f.url = testConsoleURL + "multi_login.cgi"
		return nil
	}
	// Clicking yes does nothing; the prompt never goes away.
	f.onClick[sel.TakeoverYes] = func(f *fakeSession) error { return nil }

	flow := NewFlow(f, testFlowOptions())
	err := flow.Login(context.Background(), "admin", "pw")
	if !IsAuthError(err) {
		t.Fatalf("Login() = %v, want auth error", err)
	}
}

func TestLoginRetriesTransientNavigation(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptLogin(f, sel)

	gotos := 0
	f.onGoto = func(f *fakeSession, url string) error {
		gotos++
		if gotos == 1 {
			return browser.NewNavigationError(url, context.DeadlineExceeded)
		}
		f.url = url
		return nil
	}

	opts := testFlowOptions()
	opts.Retry = retry.Policy{MaxAttempts: 2, Delay: time.Millisecond}
	flow := NewFlow(f, opts)

	if err := flow.Login(context.Background(), "admin", "pw"); err != nil {
		t.Fatalf("Login() = %v, want nil after retry", err)
	}
	if gotos != 2 {
		t.Errorf("navigations = %d, want 2", gotos)
	}
}
