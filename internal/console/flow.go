package console

import (
	"time"

	"github.com/muurk/radioctl/internal/retry"
)

const (
	// DefaultReadAttempts and DefaultReadDelay shape the retry policy for
	// page reads when the caller does not supply one.
	DefaultReadAttempts = 3
	DefaultReadDelay    = 2 * time.Second

	// DefaultApplySettle is how long the console is given to commit a
	// submitted change before verification starts. The radio restarts
	// when toggled, so the status page lags the apply.
	DefaultApplySettle = 5 * time.Second
)

// FlowOptions configures a Flow. The zero value is usable: selectors and
// classifier fall back to the stock firmware contract and reads retry
// with the default policy.
type FlowOptions struct {
	// ConsoleURL is the login entry point.
	ConsoleURL string

	// AdminURL is the advanced status page.
	AdminURL string

	// Selectors is the DOM contract to drive against.
	Selectors Selectors

	// Classifier detects the certificate warning page. Nil selects the
	// marker-based default.
	Classifier InterstitialClassifier

	// Retry is the policy applied to page reads. Form submits are never
	// retried regardless of this policy.
	Retry retry.Policy

	// ApplySettle is the wait between submitting a change and starting
	// verification. Zero uses DefaultApplySettle.
	ApplySettle time.Duration
}

// Flow drives the admin console through one live browser session. A Flow
// is bound to its session and is discarded with it; it holds no
// credentials and no observed state.
type Flow struct {
	session    Session
	selectors  Selectors
	classifier InterstitialClassifier
	consoleURL string
	adminURL   string
	retry      retry.Policy
	settle     time.Duration
}

// NewFlow binds a Flow to a session.
func NewFlow(session Session, opts FlowOptions) *Flow {
	if opts.Selectors.UsernameField == "" {
		opts.Selectors = DefaultSelectors()
	}
	if opts.Classifier == nil {
		opts.Classifier = MarkerClassifier{
			Marker:        opts.Selectors.InterstitialMarker,
			DetailsButton: opts.Selectors.DetailsButton,
		}
	}
	if opts.Retry.MaxAttempts < 1 {
		opts.Retry = retry.Policy{
			MaxAttempts: DefaultReadAttempts,
			Delay:       DefaultReadDelay,
		}
	}
	if opts.ApplySettle == 0 {
		opts.ApplySettle = DefaultApplySettle
	}

	return &Flow{
		session:    session,
		selectors:  opts.Selectors,
		classifier: opts.Classifier,
		consoleURL: opts.ConsoleURL,
		adminURL:   opts.AdminURL,
		retry:      opts.Retry,
		settle:     opts.ApplySettle,
	}
}
