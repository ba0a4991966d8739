package console

import (
	"context"
	"fmt"

	"github.com/muurk/radioctl/internal/logging"
	"github.com/muurk/radioctl/internal/radio"
	"github.com/muurk/radioctl/internal/retry"
)

// ReadStatus reports the 2.4GHz radio state shown on the console status
// page. The read never touches a form control, so repeating it is safe
// and transient failures are retried under the flow's policy. The
// returned status is RadioOn, RadioOff, or UnexpectedFailure; network
// preconditions are ruled out before a session ever opens.
func (f *Flow) ReadStatus(ctx context.Context) (radio.Status, error) {
	var status radio.Status
	attempts, err := retry.Do(ctx, f.retry, Transient, func() error {
		s, err := f.readOnce()
		if err != nil {
			return err
		}
		status = s
		return nil
	})
	if err != nil {
		logging.LogAttempt("status-read", attempts, f.retry.MaxAttempts, err)
		return radio.StatusUnexpectedFailure, err
	}
	return status, nil
}

func (f *Flow) readOnce() (radio.Status, error) {
	if err := f.openStatusPane(); err != nil {
		return radio.StatusUnknown, err
	}

	if err := f.session.WaitVisible(f.selectors.StatusBadge); err != nil {
		return radio.StatusUnknown, err
	}
	class, err := f.session.Attr(f.selectors.StatusBadge, "class")
	if err != nil {
		return radio.StatusUnknown, err
	}

	on, known := f.selectors.BadgeState(class)
	if !known {
		return radio.StatusUnknown, NewLayoutError("status",
			fmt.Sprintf("unrecognized status badge class %q", class), nil)
	}
	if on {
		return radio.StatusRadioOn, nil
	}
	return radio.StatusRadioOff, nil
}

// openStatusPane loads the advanced page and scopes the session to the
// document holding the status icons. Firmware builds differ on whether
// the pane renders inline or inside an iframe, so the pane is located by
// its content rather than by position.
func (f *Flow) openStatusPane() error {
	if err := f.session.ExitFrames(); err != nil {
		return err
	}
	if err := f.session.Goto(f.adminURL); err != nil {
		return err
	}
	if err := f.DismissInterstitial(); err != nil {
		return err
	}

	if err := f.session.WaitVisible(f.selectors.AdvancedButton); err != nil {
		return err
	}
	if err := f.session.Click(f.selectors.AdvancedButton); err != nil {
		return err
	}
	return f.session.EnterFrameWith(f.selectors.ContentPane)
}
