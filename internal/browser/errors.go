package browser

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType categorizes automation failures so the retry policy has a
// well-defined signal to act on.
type ErrorType string

const (
	// ErrorTypeEngine indicates the browser engine failed to start or the
	// session is not usable. Never retryable.
	ErrorTypeEngine ErrorType = "engine"

	// ErrorTypeNavigation indicates a page load failed or did not settle.
	// Retryable.
	ErrorTypeNavigation ErrorType = "navigation"

	// ErrorTypeTimeout indicates a bounded wait expired before the element
	// reached the required state. Retryable.
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeStructural indicates an element the flow requires is absent
	// from the settled page. Never retryable.
	ErrorTypeStructural ErrorType = "structural"
)

// Session lifecycle misuse surfaces as engine errors wrapping these.
var (
	errNotLaunched     = errors.New("session not launched")
	errAlreadyLaunched = errors.New("session already launched")
)

// Error represents an automation failure with enough context to classify
// it, log it, and decide whether to retry. Selector values are CSS
// selectors, never page content.
type Error struct {
	Type      ErrorType
	Op        string
	Selector  string
	Retryable bool
	Err       error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("browser %s: %s", e.Op, e.Type)
	if e.Selector != "" {
		msg += fmt.Sprintf(" (selector %q)", e.Selector)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As chains
func (e *Error) Unwrap() error {
	return e.Err
}

// NewEngineError creates an error for engine start/session failures
func NewEngineError(op string, err error) *Error {
	return &Error{
		Type:      ErrorTypeEngine,
		Op:        op,
		Retryable: false,
		Err:       err,
	}
}

// NewNavigationError creates an error for failed page loads
func NewNavigationError(url string, err error) *Error {
	return &Error{
		Type:      ErrorTypeNavigation,
		Op:        "goto",
		Selector:  url,
		Retryable: true,
		Err:       err,
	}
}

// NewTimeoutError creates an error for an expired bounded wait
func NewTimeoutError(op, selector string, timeout time.Duration, err error) *Error {
	return &Error{
		Type:      ErrorTypeTimeout,
		Op:        op,
		Selector:  selector,
		Retryable: true,
		Err:       fmt.Errorf("not ready within %s: %w", timeout, err),
	}
}

// NewStructuralError creates an error for a required element that is
// absent from the settled page
func NewStructuralError(op, selector string) *Error {
	return &Error{
		Type:      ErrorTypeStructural,
		Op:        op,
		Selector:  selector,
		Retryable: false,
		Err:       errors.New("element not found"),
	}
}

// IsTimeout checks if an error is an expired bounded wait
func IsTimeout(err error) bool {
	var berr *Error
	if errors.As(err, &berr) {
		return berr.Type == ErrorTypeTimeout
	}
	return false
}

// IsStructural checks if an error reports a permanently absent element
func IsStructural(err error) bool {
	var berr *Error
	if errors.As(err, &berr) {
		return berr.Type == ErrorTypeStructural
	}
	return false
}

// IsNavigation checks if an error is a failed page load
func IsNavigation(err error) bool {
	var berr *Error
	if errors.As(err, &berr) {
		return berr.Type == ErrorTypeNavigation
	}
	return false
}

// IsEngineFailure checks if an error means the browser engine is unusable
func IsEngineFailure(err error) bool {
	var berr *Error
	if errors.As(err, &berr) {
		return berr.Type == ErrorTypeEngine
	}
	return false
}

// IsRetryable checks if an operation that returned err is worth
// re-attempting. Unknown error types are not retried.
func IsRetryable(err error) bool {
	var berr *Error
	if errors.As(err, &berr) {
		return berr.Retryable
	}
	return false
}
