package radio

// Reconcile maps one observed toggle transition onto the canonical Result.
//
// pre is the state observed before any write. Precondition and failure
// values pass straight through: a toggle that never got as far as a
// confirmed read cannot claim more than its pre-state knows. post is the
// state observed after the write; callers pass StatusUnexpectedFailure
// when the write was attempted but no confirming read succeeded, and pass
// post == pre when no write was performed.
//
// The mapping is total: every (desired, pre, post) triple yields exactly
// one Result, and ResultUnexpectedFailure is the catch-all for anything
// that is not a confirmed transition or a clean no-op.
func Reconcile(desired Desired, pre, post Status) Result {
	switch pre {
	case StatusNotConnected:
		return ResultNotConnected
	case StatusVPNConnected:
		return ResultVPNConnected
	case StatusUnexpectedFailure, StatusUnknown:
		return ResultUnexpectedFailure
	}

	// Idempotent no-op: already in the desired state, nothing was written.
	if pre == desired.Status() {
		if desired == DesiredOn {
			return ResultAlreadyOn
		}
		return ResultAlreadyOff
	}

	if desired == DesiredNone {
		// Status-only invocations report a Status, not a Result.
		return ResultUnexpectedFailure
	}

	if post == desired.Status() {
		return ResultSuccess
	}

	// Unconfirmed write. The submit may or may not have landed, so this is
	// reported rather than retried.
	return ResultUnexpectedFailure
}

// ResultFor maps a precondition or failure Status onto the Result a toggle
// invocation reports when the pipeline stops before any write.
func ResultFor(s Status) Result {
	switch s {
	case StatusNotConnected:
		return ResultNotConnected
	case StatusVPNConnected:
		return ResultVPNConnected
	default:
		return ResultUnexpectedFailure
	}
}
