package springapps

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyExists is returned by the platform when a resource with the same name exists.
	// Provisioning treats it as success.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound indicates that a referenced service, app, deployment or build does not exist
	ErrNotFound = errors.New("not found")

	// ErrTransient is a remote failure assumed to be recoverable (network, throttling, 5xx)
	ErrTransient = errors.New("transient remote failure")

	// ErrTerminalBuildFailure indicates that a build result reached the Failed state
	ErrTerminalBuildFailure = errors.New("build failed")

	// ErrInvariantViolation indicates a caller error, such as a source reference that does not
	// match the tier of the service
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrDeploymentFailed marks failures while binding a source to a deployment
	ErrDeploymentFailed = errors.New("deployment failed")
)

// Error is a classified error. Kind is one of the sentinel errors above, or nil if the error
// could not be classified.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	default:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() []error {
	var errs []error
	for _, err := range []error{e.Kind, e.Err} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Wrap classifies err as kind. Errors that already carry a kind keep it.
func Wrap(op string, kind error, err error) error {
	if err == nil {
		return nil
	}
	if k := KindOf(err); k != nil {
		kind = k
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// Errorf creates a classified error with a formatted message
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of err, or nil if err is not classified
func KindOf(err error) error {
	for _, kind := range []error{
		ErrInvariantViolation,
		ErrTerminalBuildFailure,
		ErrAlreadyExists,
		ErrNotFound,
		ErrTransient,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
