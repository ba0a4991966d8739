package console

import (
	"context"
	"testing"
	"time"

	"github.com/muurk/radioctl/internal/radio"
	"github.com/muurk/radioctl/internal/retry"
)

func TestReadStatusClassifiesBadge(t *testing.T) {
	tests := []struct {
		name  string
		class string
		want  radio.Status
	}{
		{"good badge", "img_status 16 img_status_good", radio.StatusRadioOn},
		{"warning badge", "img_status 16 img_status_warning", radio.StatusRadioOff},
		{"error badge", "img_status 16 img_status_error", radio.StatusRadioOff},
		{"unrecognized badge", "img_status 16 img_status_pending", radio.StatusUnexpectedFailure},
	}

	sel := DefaultSelectors()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeSession()
			scriptStatusPage(f, sel, tt.class)

			flow := NewFlow(f, testFlowOptions())
			got, err := flow.ReadStatus(context.Background())
			if got != tt.want {
				t.Errorf("ReadStatus() = %v, want %v", got, tt.want)
			}
			if tt.want == radio.StatusUnexpectedFailure {
				if !IsLayoutError(err) {
					t.Errorf("ReadStatus() error = %v, want layout error", err)
				}
			} else if err != nil {
				t.Errorf("ReadStatus() error = %v, want nil", err)
			}
		})
	}
}

func TestReadStatusScopesIntoContentPane(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptStatusPage(f, sel, "img_status 16 img_status_good")

	flow := NewFlow(f, testFlowOptions())
	if _, err := flow.ReadStatus(context.Background()); err != nil {
		t.Fatalf("ReadStatus() error = %v", err)
	}

	// The pane is expanded first, then the hosting document is located.
	clickAt, frameAt := -1, -1
	for i, call := range f.calls {
		switch call {
		case "click:" + sel.AdvancedButton:
			clickAt = i
		case "frame-with:" + sel.ContentPane:
			frameAt = i
		}
	}
	if clickAt == -1 || frameAt == -1 || frameAt < clickAt {
		t.Errorf("call order wrong: advanced click at %d, frame scope at %d", clickAt, frameAt)
	}
}

func TestReadStatusUnknownBadgeIsNotRetried(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptStatusPage(f, sel, "img_status 16 img_status_pending")

	opts := testFlowOptions()
	opts.Retry = retry.Policy{MaxAttempts: 3, Delay: time.Millisecond}
	flow := NewFlow(f, opts)

	got, err := flow.ReadStatus(context.Background())
	if got != radio.StatusUnexpectedFailure {
		t.Fatalf("ReadStatus() = %v, want %v", got, radio.StatusUnexpectedFailure)
	}
	if !IsLayoutError(err) {
		t.Fatalf("ReadStatus() error = %v, want layout error", err)
	}
	if got := f.count("goto:" + testAdminURL); got != 1 {
		t.Errorf("page loads = %d, want 1", got)
	}
}

func TestReadStatusRetriesSlowPane(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptStatusPage(f, sel, "img_status 16 img_status_good")

	// The advanced pane misses on the first load and renders on the next.
	f.present[sel.AdvancedButton] = false
	loads := 0
	f.onGoto = func(f *fakeSession, url string) error {
		f.url = url
		loads++
		if loads == 2 {
			f.present[sel.AdvancedButton] = true
		}
		return nil
	}

	opts := testFlowOptions()
	opts.Retry = retry.Policy{MaxAttempts: 2, Delay: time.Millisecond}
	flow := NewFlow(f, opts)

	got, err := flow.ReadStatus(context.Background())
	if err != nil {
		t.Fatalf("ReadStatus() error = %v, want nil after retry", err)
	}
	if got != radio.StatusRadioOn {
		t.Errorf("ReadStatus() = %v, want %v", got, radio.StatusRadioOn)
	}
	if loads != 2 {
		t.Errorf("page loads = %d, want 2", loads)
	}
}

func TestReadStatusIsSideEffectFree(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptStatusPage(f, sel, "img_status 16 img_status_good")
	scriptWirelessForm(f, sel, true)

	flow := NewFlow(f, testFlowOptions())
	if _, err := flow.ReadStatus(context.Background()); err != nil {
		t.Fatalf("ReadStatus() error = %v", err)
	}

	// Reads never touch a form control, even when the form is reachable.
	forbidden := []string{
		"click:" + sel.WirelessMenu,
		"click:" + sel.RadioLabel,
		"click:" + sel.ApplyButton,
		"fill:" + sel.UsernameField,
	}
	for _, call := range forbidden {
		if got := f.count(call); got != 0 {
			t.Errorf("%s happened %d times during a read, want 0", call, got)
		}
	}
}
