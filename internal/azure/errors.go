package azure

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/nais/springapps-orchestrator/internal/springapps"
)

// classify wraps an error returned by the Azure SDK with the matching error kind. Errors that do
// not match a kind are wrapped without one.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &springapps.Error{Op: op, Err: err}
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		switch {
		case respErr.StatusCode == http.StatusNotFound:
			return springapps.Wrap(op, springapps.ErrNotFound, err)
		case respErr.StatusCode == http.StatusConflict:
			return springapps.Wrap(op, springapps.ErrAlreadyExists, err)
		case respErr.StatusCode == http.StatusTooManyRequests || respErr.StatusCode >= http.StatusInternalServerError:
			return springapps.Wrap(op, springapps.ErrTransient, err)
		}
		return &springapps.Error{Op: op, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return springapps.Wrap(op, springapps.ErrTransient, err)
	}

	return &springapps.Error{Op: op, Err: err}
}

// exists turns a not found error into false
func exists(op string, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	err = classify(op, err)
	if springapps.IsNotFound(err) {
		return false, nil
	}
	return false, err
}
