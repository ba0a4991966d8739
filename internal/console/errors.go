package console

import (
	"errors"
	"fmt"

	"github.com/muurk/radioctl/internal/browser"
)

// ErrorType represents the category of flow failure
type ErrorType int

const (
	// ErrTypeSession indicates the browser session could not be opened
	ErrTypeSession ErrorType = iota
	// ErrTypeInterstitial indicates the certificate warning could not be
	// dismissed
	ErrTypeInterstitial
	// ErrTypeAuth indicates the console rejected the credentials
	ErrTypeAuth
	// ErrTypeLayout indicates the page did not match the expected
	// structure
	ErrTypeLayout
	// ErrTypeUnconfirmed indicates a settings change was submitted but the
	// console never acknowledged it
	ErrTypeUnconfirmed
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeSession:
		return "Session Error"
	case ErrTypeInterstitial:
		return "Certificate Warning Error"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeLayout:
		return "Page Layout Error"
	case ErrTypeUnconfirmed:
		return "Unconfirmed Change"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failure in one of the console flows. The message
// never carries credentials or page content; selectors and step names
// are the only context recorded.
type Error struct {
	Type      ErrorType
	Step      string // flow step that failed
	Message   string
	Err       error
	Retryable bool
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewSessionError creates an error for a session that never became usable
func NewSessionError(err error) *Error {
	return &Error{
		Type:      ErrTypeSession,
		Step:      "session",
		Message:   "browser session could not be opened",
		Err:       err,
		Retryable: false,
	}
}

// NewInterstitialError creates an error for a certificate warning that
// would not dismiss
func NewInterstitialError(err error) *Error {
	return &Error{
		Type:      ErrTypeInterstitial,
		Step:      "interstitial",
		Message:   "certificate warning did not dismiss",
		Err:       err,
		Retryable: true,
	}
}

// NewAuthError creates an error for rejected credentials. Never
// retryable: repeating a bad login only locks the account out.
func NewAuthError(message string) *Error {
	return &Error{
		Type:      ErrTypeAuth,
		Step:      "login",
		Message:   message,
		Retryable: false,
	}
}

// NewLayoutError creates an error for a page that settled without the
// structure the flow requires
func NewLayoutError(step, message string, err error) *Error {
	return &Error{
		Type:      ErrTypeLayout,
		Step:      step,
		Message:   message,
		Err:       err,
		Retryable: false,
	}
}

// NewUnconfirmedError creates an error for a submitted change with no
// observed acknowledgement. Never retryable: the change may have been
// applied, and a second submit could undo it.
func NewUnconfirmedError(message string, err error) *Error {
	return &Error{
		Type:      ErrTypeUnconfirmed,
		Step:      "apply",
		Message:   message,
		Err:       err,
		Retryable: false,
	}
}

// IsAuthError checks if an error means the console rejected the
// credentials
func IsAuthError(err error) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Type == ErrTypeAuth
	}
	return false
}

// IsUnconfirmed checks if an error means a change was submitted without
// an observed acknowledgement
func IsUnconfirmed(err error) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Type == ErrTypeUnconfirmed
	}
	return false
}

// IsLayoutError checks if an error reports console markup that no longer
// matches the selector contract
func IsLayoutError(err error) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Type == ErrTypeLayout
	}
	return false
}

// Transient reports whether an operation that returned err is worth
// re-attempting. Flow errors carry their own verdict; anything else is
// deferred to the browser layer's classification.
func Transient(err error) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Retryable
	}
	return browser.IsRetryable(err)
}

// GetShortErrorMessage returns a concise, user-friendly description of a
// flow failure
func GetShortErrorMessage(err error) string {
	var cerr *Error
	if !errors.As(err, &cerr) {
		if browser.IsTimeout(err) {
			return "Console page did not respond in time"
		}
		if browser.IsNavigation(err) {
			return "Could not reach the admin console"
		}
		if browser.IsEngineFailure(err) {
			return "Browser engine failed to start"
		}
		if browser.IsStructural(err) {
			return "Console page layout has changed"
		}
		return err.Error()
	}

	switch cerr.Type {
	case ErrTypeSession:
		return "Browser session could not be opened"
	case ErrTypeInterstitial:
		return "Certificate warning could not be dismissed"
	case ErrTypeAuth:
		return "Login rejected - check the stored credentials"
	case ErrTypeLayout:
		return "Console page layout has changed"
	case ErrTypeUnconfirmed:
		return "Change submitted but never confirmed - verify manually"
	default:
		return cerr.Message
	}
}
