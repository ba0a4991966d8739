package console

import (
	"testing"
)

func TestOpenWirelessFormReportsCheckboxState(t *testing.T) {
	sel := DefaultSelectors()
	for _, checked := range []bool{true, false} {
		f := newFakeSession()
		scriptWirelessForm(f, sel, checked)

		flow := NewFlow(f, testFlowOptions())
		got, err := flow.OpenWirelessForm()
		if err != nil {
			t.Fatalf("OpenWirelessForm() error = %v", err)
		}
		if got != checked {
			t.Errorf("OpenWirelessForm() = %v, want %v", got, checked)
		}
		if got := f.count("frame:" + sel.ConfigFrame); got != 1 {
			t.Errorf("form frame entries = %d, want 1", got)
		}
	}
}

func TestSubmitToggleAppliesExactlyOnce(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptWirelessForm(f, sel, false)

	flow := NewFlow(f, testFlowOptions())
	if _, err := flow.OpenWirelessForm(); err != nil {
		t.Fatalf("OpenWirelessForm() error = %v", err)
	}
	if err := flow.SubmitToggle(); err != nil {
		t.Fatalf("SubmitToggle() = %v, want nil", err)
	}

	if got := f.count("click:" + sel.ApplyButton); got != 1 {
		t.Errorf("apply clicks = %d, want 1", got)
	}
	if !f.checked[sel.RadioCheckbox] {
		t.Error("checkbox was not flipped before apply")
	}
}

func TestSubmitToggleLabelMissing(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptWirelessForm(f, sel, false)
	f.present[sel.RadioLabel] = false
	delete(f.onClick, sel.RadioLabel)

	flow := NewFlow(f, testFlowOptions())
	err := flow.SubmitToggle()
	if !IsLayoutError(err) {
		t.Fatalf("SubmitToggle() = %v, want layout error", err)
	}
	if got := f.count("click:" + sel.ApplyButton); got != 0 {
		t.Errorf("apply clicks = %d, want 0 when the flip failed", got)
	}
}

func TestSubmitToggleApplyFailureIsUnconfirmed(t *testing.T) {
	sel := DefaultSelectors()
	f := newFakeSession()
	scriptWirelessForm(f, sel, false)
	f.present[sel.ApplyButton] = false
	delete(f.onClick, sel.ApplyButton)

	flow := NewFlow(f, testFlowOptions())
	err := flow.SubmitToggle()
	if !IsUnconfirmed(err) {
		t.Fatalf("SubmitToggle() = %v, want unconfirmed error", err)
	}
	// Unconfirmed means terminal: nothing may classify this as worth
	// re-attempting.
	if Transient(err) {
		t.Error("Transient() = true for an unconfirmed submit, want false")
	}
}
