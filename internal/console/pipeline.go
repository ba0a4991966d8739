package console

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/radioctl/internal/logging"
	"github.com/muurk/radioctl/internal/radio"
	"github.com/muurk/radioctl/internal/retry"
	"github.com/muurk/radioctl/internal/urls"
)

// Stage identifies a pipeline step for progress reporting.
type Stage int

const (
	// StagePreflight checks network preconditions before anything opens.
	StagePreflight Stage = iota
	// StageSession launches the browser session.
	StageSession
	// StageLogin authenticates against the console.
	StageLogin
	// StageInspect reads the radio status from the console.
	StageInspect
	// StageToggle drives the wireless settings form.
	StageToggle
	// StageVerify re-reads the status after a submitted change.
	StageVerify
)

// String returns the stage token used in logs and progress callbacks.
func (s Stage) String() string {
	switch s {
	case StagePreflight:
		return "preflight"
	case StageSession:
		return "session"
	case StageLogin:
		return "login"
	case StageInspect:
		return "inspect"
	case StageToggle:
		return "toggle"
	case StageVerify:
		return "verify"
	default:
		return "unknown"
	}
}

// StepFunc receives progress notifications as the pipeline enters each
// stage. Implementations must return promptly; nil disables reporting.
type StepFunc func(stage Stage)

// Preflight reports an environment condition that rules out opening a
// console session, or nil when the flows may proceed.
type Preflight interface {
	Check() *radio.Status
}

// CredentialSource yields the admin credentials for the login step. The
// pipeline asks right before authenticating and drops the values once
// the step completes.
type CredentialSource interface {
	Credentials() (username, password string, err error)
}

// Options configures a Controller.
type Options struct {
	// ConsoleURL is the login entry point. Empty uses the stock console
	// address.
	ConsoleURL string

	// AdminURL is the advanced status page. Empty derives it from
	// ConsoleURL.
	AdminURL string

	// Selectors is the DOM contract to drive against. The zero value
	// selects the stock firmware contract.
	Selectors Selectors

	// Classifier detects the certificate warning page. Nil selects the
	// marker-based default.
	Classifier InterstitialClassifier

	// Retry is the policy for page reads. Form submits are never retried.
	Retry retry.Policy

	// ApplySettle is the wait between submit and verification. Zero uses
	// DefaultApplySettle.
	ApplySettle time.Duration

	// HoldOnFailure keeps the session open for the given duration after a
	// failed run before releasing it. Only useful with a visible browser;
	// zero disables it.
	HoldOnFailure time.Duration

	// Step receives stage notifications. Nil disables them.
	Step StepFunc
}

// Controller runs the end-to-end console pipeline: preflight, session,
// certificate warning, login, inspection, and, for toggles, the single
// submit with verification. Every operation opens its own browser
// session and releases it on every exit path; the Controller itself
// holds no per-run state and can be reused.
//
// Operations return a concrete verdict even when something breaks. The
// error result carries diagnostic detail for logs and display; callers
// never need it to decide the outcome.
type Controller struct {
	factory   Factory
	preflight Preflight
	creds     CredentialSource
	opts      Options
}

// NewController wires a Controller from its collaborators.
func NewController(factory Factory, preflight Preflight, creds CredentialSource, opts Options) *Controller {
	if opts.ConsoleURL == "" {
		opts.ConsoleURL = urls.DefaultConsole
	}
	if opts.AdminURL == "" {
		opts.AdminURL = urls.Admin(opts.ConsoleURL)
	}
	return &Controller{
		factory:   factory,
		preflight: preflight,
		creds:     creds,
		opts:      opts,
	}
}

// Status reports the current radio state.
func (c *Controller) Status(ctx context.Context) (radio.Status, error) {
	c.step(StagePreflight)
	if s := c.checkPreflight(); s != nil {
		return *s, nil
	}

	c.step(StageSession)
	sess, err := c.factory.Open(ctx)
	if err != nil {
		return radio.StatusUnexpectedFailure, NewSessionError(err)
	}

	status := radio.StatusUnexpectedFailure
	defer func() { c.release(sess, status.IsRadioState()) }()

	flow := c.newFlow(sess)

	c.step(StageLogin)
	if err := c.login(ctx, flow); err != nil {
		return radio.StatusUnexpectedFailure, err
	}

	c.step(StageInspect)
	st, err := flow.ReadStatus(ctx)
	status = st
	logging.Info("Radio status determined", zap.String("status", st.String()))
	return st, err
}

// Set drives the radio to the desired state. At most one settings submit
// happens per invocation; the verdict comes from re-reading the status
// page and reconciling it against the intent, so an unconfirmed change
// is reported, never re-submitted.
func (c *Controller) Set(ctx context.Context, desired radio.Desired) (radio.Result, error) {
	if desired == radio.DesiredNone {
		return radio.ResultUnexpectedFailure, errors.New("toggle invoked without a desired state")
	}

	c.step(StagePreflight)
	if s := c.checkPreflight(); s != nil {
		return radio.ResultFor(*s), nil
	}

	c.step(StageSession)
	sess, err := c.factory.Open(ctx)
	if err != nil {
		return radio.ResultUnexpectedFailure, NewSessionError(err)
	}

	result := radio.ResultUnexpectedFailure
	defer func() { c.release(sess, result.Succeeded()) }()

	flow := c.newFlow(sess)

	c.step(StageLogin)
	if err := c.login(ctx, flow); err != nil {
		return radio.ResultUnexpectedFailure, err
	}

	c.step(StageInspect)
	pre, err := flow.ReadStatus(ctx)
	if err != nil {
		return radio.ResultUnexpectedFailure, err
	}
	if !pre.IsRadioState() || pre == desired.Status() {
		// Precondition pass-through or an idempotent no-op; either way
		// the form is never opened.
		result = radio.Reconcile(desired, pre, pre)
		logging.Info("Toggle resolved without a write",
			zap.String("desired", desired.String()),
			zap.String("result", result.String()))
		return result, nil
	}

	c.step(StageToggle)
	checked, err := flow.OpenWirelessForm()
	if err != nil {
		return radio.ResultUnexpectedFailure, err
	}
	if checked == (desired == radio.DesiredOn) {
		// The form disagrees with the status page; the form is the
		// authority and it already holds the desired state.
		if desired == radio.DesiredOn {
			result = radio.ResultAlreadyOn
		} else {
			result = radio.ResultAlreadyOff
		}
		return result, nil
	}

	subErr := flow.SubmitToggle()
	if subErr != nil {
		// The change may or may not have been committed. Verification
		// below decides; submitting again is never an option.
		logging.Warn("Toggle submit did not complete cleanly", zap.Error(subErr))
	}

	c.step(StageVerify)
	post, err := flow.ReadStatus(ctx)
	if err != nil {
		result = radio.Reconcile(desired, pre, radio.StatusUnexpectedFailure)
		return result, NewUnconfirmedError("status could not be re-read after apply", err)
	}

	result = radio.Reconcile(desired, pre, post)
	logging.Info("Toggle reconciled",
		zap.String("desired", desired.String()),
		zap.String("pre", pre.String()),
		zap.String("post", post.String()),
		zap.String("result", result.String()))
	if !result.Succeeded() {
		if subErr != nil {
			return result, NewUnconfirmedError("console did not reach the desired state", subErr)
		}
		return result, NewUnconfirmedError("console did not reach the desired state", nil)
	}
	return result, nil
}

// checkPreflight runs the environment checks. A nil Preflight proceeds.
func (c *Controller) checkPreflight() *radio.Status {
	if c.preflight == nil {
		return nil
	}
	return c.preflight.Check()
}

// login fetches credentials and runs the authentication flow. The
// credentials live only in this frame.
func (c *Controller) login(ctx context.Context, flow *Flow) error {
	username, password, err := c.creds.Credentials()
	if err != nil {
		return NewAuthError("credentials unavailable: " + err.Error())
	}
	return flow.Login(ctx, username, password)
}

// release returns the session on every exit path. After a failed run it
// first honors HoldOnFailure so a visible browser stays inspectable.
func (c *Controller) release(sess Session, ok bool) {
	if !ok && c.opts.HoldOnFailure > 0 {
		if h, can := sess.(interface{ Hold(time.Duration) }); can {
			logging.Info("Holding browser open after failure",
				zap.Duration("hold", c.opts.HoldOnFailure))
			h.Hold(c.opts.HoldOnFailure)
		}
	}
	if err := sess.Close(); err != nil {
		logging.Warn("Browser session close failed", zap.Error(err))
	}
}

func (c *Controller) newFlow(sess Session) *Flow {
	return NewFlow(sess, FlowOptions{
		ConsoleURL:  c.opts.ConsoleURL,
		AdminURL:    c.opts.AdminURL,
		Selectors:   c.opts.Selectors,
		Classifier:  c.opts.Classifier,
		Retry:       c.opts.Retry,
		ApplySettle: c.opts.ApplySettle,
	})
}

// step reports a stage transition to the callback and the log.
func (c *Controller) step(s Stage) {
	logging.LogStep(int(s), s.String(), "start")
	if c.opts.Step != nil {
		c.opts.Step(s)
	}
}
