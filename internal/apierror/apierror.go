package apierror

import (
	"context"
	"errors"
	"fmt"

	"github.com/nais/springapps-orchestrator/internal/springapps"
	"github.com/sirupsen/logrus"
)

var (
	ErrInternal  = Errorf("The orchestrator errored out while processing your request, and we didn't write a suitable error message. You might consider that a bug on our side. Please try again, and if the error persists, contact the NAIS team.")
	ErrTransient = Errorf("The platform is unavailable or throttling requests. This is probably a transient error, please try again.")
)

// Exit codes of presented errors
const (
	ExitInternal  = 1
	ExitUsage     = 2
	ExitNotFound  = 3
	ExitFailed    = 4
	ExitTransient = 5
	ExitCanceled  = 130
)

// Error is an error that can be presented to end-users
type Error struct {
	err error
}

func (e Error) Error() string {
	return e.err.Error()
}

// Errorf formats an error message for end-users. Remember not to leak sensitive information in error messages
func Errorf(format string, args ...any) Error {
	return Error{
		err: fmt.Errorf(format, args...),
	}
}

// Presented is an error message meant for end-users and the exit code it should end the process with
type Presented struct {
	Message  string
	ExitCode int
}

// Presenter turns errors into messages for end-users. Errors without a suitable message are logged
// with the original error attached.
type Presenter func(err error) Presented

// GetErrorPresenter returns a presenter that filters out error messages not intended for end users
func GetErrorPresenter(log logrus.FieldLogger) Presenter {
	return func(err error) Presented {
		var userErr Error
		if errors.As(err, &userErr) {
			return Presented{Message: userErr.Error(), ExitCode: ExitUsage}
		}

		switch {
		case errors.Is(err, context.Canceled):
			return Presented{Message: "Request canceled.", ExitCode: ExitCanceled}
		case errors.Is(err, context.DeadlineExceeded):
			return Presented{Message: "Timed out waiting for the platform.", ExitCode: ExitCanceled}
		}

		switch springapps.KindOf(err) {
		case springapps.ErrInvariantViolation:
			return Presented{Message: err.Error(), ExitCode: ExitUsage}
		case springapps.ErrNotFound:
			return Presented{Message: err.Error(), ExitCode: ExitNotFound}
		case springapps.ErrTerminalBuildFailure:
			return Presented{Message: "The build failed: " + err.Error(), ExitCode: ExitFailed}
		case springapps.ErrTransient:
			log.WithError(err).Errorf("transient platform error")
			return Presented{Message: ErrTransient.Error(), ExitCode: ExitTransient}
		}

		if errors.Is(err, springapps.ErrDeploymentFailed) {
			return Presented{Message: "The deployment failed: " + err.Error(), ExitCode: ExitFailed}
		}

		log.WithError(err).Errorf("unhandled error in the error presenter")
		return Presented{Message: ErrInternal.Error(), ExitCode: ExitInternal}
	}
}
