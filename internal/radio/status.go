package radio

// Status is the observed state of the 2.4GHz radio, derived fresh from
// live page inspection on every invocation and never persisted.
type Status int

const (
	// StatusUnknown is the zero value; it never escapes the pipeline.
	StatusUnknown Status = iota

	// StatusRadioOn means the wireless row indicator shows the radio enabled.
	StatusRadioOn

	// StatusRadioOff means the indicator shows the radio disabled.
	StatusRadioOff

	// StatusNotConnected means this machine is not joined to the target
	// network, so the admin console is unreachable. Detected before any
	// browser session is opened.
	StatusNotConnected

	// StatusVPNConnected means an active tunnel interface was detected;
	// the admin console typically routes incorrectly through it.
	StatusVPNConnected

	// StatusUnexpectedFailure covers every terminal automation fault:
	// engine start failure, controls absent, retries exhausted.
	StatusUnexpectedFailure
)

// String returns the canonical name used in logs, notifications, and output.
func (s Status) String() string {
	switch s {
	case StatusRadioOn:
		return "RADIO_ON"
	case StatusRadioOff:
		return "RADIO_OFF"
	case StatusNotConnected:
		return "NOT_CONNECTED_TO_ROUTER"
	case StatusVPNConnected:
		return "VPN_CONNECTED"
	case StatusUnexpectedFailure:
		return "UNEXPECTED_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// IsRadioState reports whether s is an actual radio reading rather than
// a precondition or failure value.
func (s Status) IsRadioState() bool {
	return s == StatusRadioOn || s == StatusRadioOff
}

// Result is the outcome of a toggle attempt, produced by Reconcile from
// the desired state and the pre/post observed states.
type Result int

const (
	// ResultUnknown is the zero value; it never escapes the pipeline.
	ResultUnknown Result = iota

	// ResultSuccess means a write was performed and the post-action read
	// confirmed the desired state.
	ResultSuccess

	// ResultAlreadyOn means the radio was already on; no write was performed.
	ResultAlreadyOn

	// ResultAlreadyOff means the radio was already off; no write was performed.
	ResultAlreadyOff

	// ResultNotConnected mirrors StatusNotConnected for toggle invocations.
	ResultNotConnected

	// ResultVPNConnected mirrors StatusVPNConnected for toggle invocations.
	ResultVPNConnected

	// ResultUnexpectedFailure covers terminal faults and unconfirmed writes.
	ResultUnexpectedFailure
)

// String returns the canonical name used in logs, notifications, and output.
func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "SUCCESS"
	case ResultAlreadyOn:
		return "ALREADY_ON"
	case ResultAlreadyOff:
		return "ALREADY_OFF"
	case ResultNotConnected:
		return "NOT_CONNECTED_TO_ROUTER"
	case ResultVPNConnected:
		return "VPN_CONNECTED"
	case ResultUnexpectedFailure:
		return "UNEXPECTED_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Succeeded reports whether r is a good outcome: the radio ended up in the
// desired state, whether or not a write was needed.
func (r Result) Succeeded() bool {
	return r == ResultSuccess || r == ResultAlreadyOn || r == ResultAlreadyOff
}

// Desired is the state a toggle invocation wants the radio in.
type Desired int

const (
	// DesiredNone marks a status-only invocation; no write is ever attempted.
	DesiredNone Desired = iota

	// DesiredOn requests the radio enabled.
	DesiredOn

	// DesiredOff requests the radio disabled.
	DesiredOff
)

// String returns "on", "off", or "none".
func (d Desired) String() string {
	switch d {
	case DesiredOn:
		return "on"
	case DesiredOff:
		return "off"
	default:
		return "none"
	}
}

// Status returns the radio Status d corresponds to, or StatusUnknown for
// DesiredNone.
func (d Desired) Status() Status {
	switch d {
	case DesiredOn:
		return StatusRadioOn
	case DesiredOff:
		return StatusRadioOff
	default:
		return StatusUnknown
	}
}
