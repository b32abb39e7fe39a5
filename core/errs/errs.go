// Package errs defines the error taxonomy shared across the framework:
// configuration errors, browser errors, element interaction errors and
// wait timeouts. Callers classify failures with errors.Is against the
// exported sentinels.
package errs

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConfig indicates a bad or missing configuration file or key.
	ErrConfig = errors.New("configuration error")
	// ErrBrowser indicates an unsupported browser name, a bad grid URL,
	// a missing start URL, or a failed launch/connect.
	ErrBrowser = errors.New("browser error")
	// ErrElement indicates a locator that resolves to nothing or to a
	// non-interactable node.
	ErrElement = errors.New("element error")
	// ErrWaitTimeout indicates a wait predicate that was never satisfied
	// within its timeout.
	ErrWaitTimeout = errors.New("wait timeout")
	// ErrWaitCancelled indicates a wait aborted by context cancellation.
	// Distinct from ErrWaitTimeout so callers can tell an external abort
	// from a predicate that genuinely never held.
	ErrWaitCancelled = errors.New("wait cancelled")
)

// Config wraps err as a configuration error.
func Config(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

// Browser wraps err as a browser error.
func Browser(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBrowser, fmt.Sprintf(format, args...))
}

// ElementError carries the locator and cause of a failed element interaction.
type ElementError struct {
	Locator string
	Op      string
	Err     error
}

func (e *ElementError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: element error", e.Op, e.Locator)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Locator, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// Is reports ErrElement so errors.Is(err, ErrElement) matches.
func (e *ElementError) Is(target error) bool { return target == ErrElement }

// Element returns an ElementError for op on the given locator.
func Element(op, locator string, cause error) error {
	return &ElementError{Locator: locator, Op: op, Err: cause}
}

// TimeoutError carries a description of what was awaited and for how long.
type TimeoutError struct {
	Awaiting string
	Timeout  time.Duration
	Err      error
}

func (e *TimeoutError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("timed out after %s awaiting %s", e.Timeout, e.Awaiting)
	}
	return fmt.Sprintf("timed out after %s awaiting %s: %v", e.Timeout, e.Awaiting, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// Is reports ErrWaitTimeout so errors.Is(err, ErrWaitTimeout) matches.
func (e *TimeoutError) Is(target error) bool { return target == ErrWaitTimeout }

// Timeout returns a TimeoutError for the awaited condition.
func Timeout(awaiting string, timeout time.Duration, cause error) error {
	return &TimeoutError{Awaiting: awaiting, Timeout: timeout, Err: cause}
}
