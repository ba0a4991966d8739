package console

import (
	"context"
	"strings"

	"github.com/muurk/radioctl/internal/logging"
	"github.com/muurk/radioctl/internal/retry"
)

// Login authenticates the session against the console. The credentials
// are written into the form and dropped; they are never stored on the
// Flow and never logged. Transient failures are retried, but a rejected
// login is terminal: hammering a router with bad credentials trips its
// lockout.
func (f *Flow) Login(ctx context.Context, username, password string) error {
	attempts, err := retry.Do(ctx, f.retry, Transient, func() error {
		return f.loginOnce(username, password)
	})
	if err != nil {
		logging.LogAttempt("login", attempts, f.retry.MaxAttempts, err)
	}
	return err
}

func (f *Flow) loginOnce(username, password string) error {
	if err := f.session.Goto(f.consoleURL); err != nil {
		return err
	}
	if err := f.DismissInterstitial(); err != nil {
		return err
	}

	if err := f.session.WaitVisible(f.selectors.UsernameField); err != nil {
		// A console that goes straight to the admin chrome has a live
		// session already; there is nothing to submit.
		if ok, _ := f.session.Exists(f.selectors.AdvancedButton); ok {
			logging.Debug("Login form absent, session already authenticated")
			return nil
		}
		return err
	}

	if err := f.session.Fill(f.selectors.UsernameField, username); err != nil {
		return err
	}
	if err := f.session.Fill(f.selectors.PasswordField, password); err != nil {
		return err
	}

	logging.Debug("Submitting login form", logging.SecretField("password"))
	if err := f.session.Click(f.selectors.LoginButton); err != nil {
		return err
	}

	// The form unloading is the success signal. A form that stays put
	// means the console bounced the credentials back.
	if err := f.session.WaitGone(f.selectors.UsernameField); err != nil {
		if f.onLoginPage() {
			return NewAuthError("console rejected the credentials")
		}
		return err
	}

	if strings.Contains(strings.ToLower(f.session.URL()), f.selectors.TakeoverURL) {
		return f.takeover()
	}
	return nil
}

// onLoginPage reports whether the settled page still presents the login
// form. The URL check alone is not enough: post-login pages keep "login"
// in their path on some firmware builds.
func (f *Flow) onLoginPage() bool {
	if !strings.Contains(strings.ToLower(f.session.URL()), f.selectors.LoginURLMark) {
		return false
	}
	user, _ := f.session.Exists(f.selectors.UsernameField)
	pass, _ := f.session.Exists(f.selectors.PasswordField)
	return user && pass
}

// takeover displaces the concurrent admin session the console is
// protecting. The router allows one admin login at a time and parks new
// logins on a confirmation page.
func (f *Flow) takeover() error {
	logging.Info("Another admin session is active, taking over")
	if err := f.session.WaitVisible(f.selectors.TakeoverYes); err != nil {
		return err
	}
	if err := f.session.Click(f.selectors.TakeoverYes); err != nil {
		return err
	}

	// Navigating away from the prompt confirms the takeover.
	if err := f.session.WaitGone(f.selectors.TakeoverYes); err != nil {
		return NewAuthError("concurrent session could not be displaced")
	}
	return nil
}
