package console

import (
	"time"

	"go.uber.org/zap"

	"github.com/muurk/radioctl/internal/logging"
)

// OpenWirelessForm navigates from the status pane to the wireless
// settings form and reports whether the radio checkbox is currently
// checked. The menu entry lives in the outer page; the form itself is
// served inside a named frame that the session stays scoped to on
// return.
func (f *Flow) OpenWirelessForm() (bool, error) {
	if err := f.session.ExitFrames(); err != nil {
		return false, err
	}
	if err := f.session.WaitVisible(f.selectors.WirelessMenu); err != nil {
		return false, err
	}
	if err := f.session.Click(f.selectors.WirelessMenu); err != nil {
		return false, err
	}

	if err := f.session.WaitVisible(f.selectors.ConfigFrameElement()); err != nil {
		return false, err
	}
	if err := f.session.EnterFrame(f.selectors.ConfigFrame); err != nil {
		return false, err
	}
	if err := f.session.WaitVisible(f.selectors.RadioCheckbox); err != nil {
		return false, err
	}
	return f.session.IsChecked(f.selectors.RadioCheckbox)
}

// SubmitToggle flips the radio checkbox and applies the change. Exactly
// one submit is ever issued: after the apply click, no path in the
// program submits again, because a duplicate apply on a settled change
// would toggle the radio back. Failures after the click are reported as
// unconfirmed and resolved by the verification read, never by retrying.
//
// The label is clicked rather than the checkbox; the console overlays
// the checkbox with its label and eats direct clicks.
func (f *Flow) SubmitToggle() error {
	if err := f.session.Click(f.selectors.RadioLabel); err != nil {
		return NewLayoutError("toggle", "radio checkbox could not be flipped", err)
	}
	if err := f.session.Click(f.selectors.ApplyButton); err != nil {
		return NewUnconfirmedError("apply click did not complete", err)
	}
	logging.Info("Radio change submitted")

	// The form frame reloads and re-presents the apply control once the
	// post lands; that reload is the only acknowledgement the console
	// offers. Not seeing it is not fatal here: the verification read
	// rules on the outcome either way.
	if err := f.session.WaitVisible(f.selectors.ApplyButton); err != nil {
		logging.Warn("Apply acknowledgement not observed", zap.Error(err))
	}

	// The router restarts the radio before re-rendering the page; give it
	// time before verification navigates away.
	if f.settle > 0 {
		time.Sleep(f.settle)
	}
	return nil
}
