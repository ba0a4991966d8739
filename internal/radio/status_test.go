package radio

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusRadioOn, "RADIO_ON"},
		{StatusRadioOff, "RADIO_OFF"},
		{StatusNotConnected, "NOT_CONNECTED_TO_ROUTER"},
		{StatusVPNConnected, "VPN_CONNECTED"},
		{StatusUnexpectedFailure, "UNEXPECTED_FAILURE"},
		{StatusUnknown, "UNKNOWN"},
		{Status(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result Result
		want   string
	}{
		{ResultSuccess, "SUCCESS"},
		{ResultAlreadyOn, "ALREADY_ON"},
		{ResultAlreadyOff, "ALREADY_OFF"},
		{ResultNotConnected, "NOT_CONNECTED_TO_ROUTER"},
		{ResultVPNConnected, "VPN_CONNECTED"},
		{ResultUnexpectedFailure, "UNEXPECTED_FAILURE"},
		{ResultUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", tt.result, got, tt.want)
		}
	}
}

func TestStatusIsRadioState(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusRadioOn, true},
		{StatusRadioOff, true},
		{StatusNotConnected, false},
		{StatusVPNConnected, false},
		{StatusUnexpectedFailure, false},
		{StatusUnknown, false},
	}

	for _, tt := range tests {
		if got := tt.status.IsRadioState(); got != tt.want {
			t.Errorf("%v.IsRadioState() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestResultSucceeded(t *testing.T) {
	tests := []struct {
		result Result
		want   bool
	}{
		{ResultSuccess, true},
		{ResultAlreadyOn, true},
		{ResultAlreadyOff, true},
		{ResultNotConnected, false},
		{ResultVPNConnected, false},
		{ResultUnexpectedFailure, false},
	}

	for _, tt := range tests {
		if got := tt.result.Succeeded(); got != tt.want {
			t.Errorf("%v.Succeeded() = %v, want %v", tt.result, got, tt.want)
		}
	}
}

func TestDesiredStatus(t *testing.T) {
	if got := DesiredOn.Status(); got != StatusRadioOn {
		t.Errorf("DesiredOn.Status() = %v, want %v", got, StatusRadioOn)
	}
	if got := DesiredOff.Status(); got != StatusRadioOff {
		t.Errorf("DesiredOff.Status() = %v, want %v", got, StatusRadioOff)
	}
	if got := DesiredNone.Status(); got != StatusUnknown {
		t.Errorf("DesiredNone.Status() = %v, want %v", got, StatusUnknown)
	}
}
