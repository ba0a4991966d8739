package console

import (
	"github.com/muurk/radioctl/internal/logging"
)

// InterstitialClassifier decides whether the page currently showing is a
// browser certificate warning rather than console content. It is a
// separate strategy because the warning markup belongs to the browser,
// not the router: a different browser build or locale changes it
// independently of the selector contract.
type InterstitialClassifier interface {
	IsInterstitial(s Session) (bool, error)
}

// MarkerClassifier detects the Chromium warning page by its body text
// together with the details control. Both have to be present: the marker
// alone could be quoted by console help text.
type MarkerClassifier struct {
	Marker        string
	DetailsButton string
}

// IsInterstitial probes the current page without altering it.
func (m MarkerClassifier) IsInterstitial(s Session) (bool, error) {
	found, err := s.BodyContains(m.Marker)
	if err != nil || !found {
		return false, err
	}
	return s.Exists(m.DetailsButton)
}

// DismissInterstitial clicks through the certificate warning when one is
// showing. Safe to call on any page: with no warning present it changes
// nothing, so the flows call it after every navigation.
func (f *Flow) DismissInterstitial() error {
	warning, err := f.classifier.IsInterstitial(f.session)
	if err != nil {
		return NewInterstitialError(err)
	}
	if !warning {
		return nil
	}

	logging.Debug("Certificate warning detected, proceeding through it")
	if err := f.session.Click(f.selectors.DetailsButton); err != nil {
		return NewInterstitialError(err)
	}
	if err := f.session.WaitVisible(f.selectors.ProceedLink); err != nil {
		return NewInterstitialError(err)
	}
	if err := f.session.Click(f.selectors.ProceedLink); err != nil {
		return NewInterstitialError(err)
	}

	// The warning page unloads once the proceed link is accepted.
	if err := f.session.WaitGone(f.selectors.DetailsButton); err != nil {
		return NewInterstitialError(err)
	}
	logging.Debug("Certificate warning dismissed")
	return nil
}
