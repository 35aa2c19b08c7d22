package binding

import (
	"errors"
	"fmt"
	"net"
)

// ErrCancelled is wrapped by every error reported for a cooperatively stopped invocation.
var ErrCancelled = errors.New("invocation cancelled")

// ErrUnknownParameter is wrapped when an input names no parameter of the operation.
var ErrUnknownParameter = errors.New("not a parameter")

// MissingRequiredFieldError reports a required parameter that was not supplied.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Field)
}

// InvalidParameterError reports a parameter whose value could not be bound to its declared type.
type InvalidParameterError struct {
	Field string
	Err   error
}

func (e *InvalidParameterError) Error() string {
	if errors.Is(e.Err, ErrUnknownParameter) {
		return fmt.Sprintf("parameter %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid value for parameter %q: %v", e.Field, e.Err)
}

func (e *InvalidParameterError) Unwrap() error {
	return e.Err
}

// InvalidProjectionError reports an output selector that cannot be applied to the operation.
type InvalidProjectionError struct {
	Selector string
	Reason   string
}

func (e *InvalidProjectionError) Error() string {
	return fmt.Sprintf("invalid output selector %q: %s", e.Selector, e.Reason)
}

// ConfigurationError reports mutually exclusive or otherwise conflicting options.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "conflicting options: " + e.Reason
}

// TransportResolutionFailureError reports that the service endpoint's host name could not be resolved.
type TransportResolutionFailureError struct {
	Endpoint string
	DNS      *net.DNSError
	Err      error
}

func (e *TransportResolutionFailureError) Error() string {
	return fmt.Sprintf("name resolution failure for endpoint %s: %s", e.Endpoint, e.DNS.Error())
}

func (e *TransportResolutionFailureError) Unwrap() error {
	return e.Err
}

// IsBindError reports whether err was raised while binding parameters, before any network call.
func IsBindError(err error) bool {
	var (
		missing    *MissingRequiredFieldError
		invalid    *InvalidParameterError
		projection *InvalidProjectionError
		conflict   *ConfigurationError
	)
	return errors.As(err, &missing) ||
		errors.As(err, &invalid) ||
		errors.As(err, &projection) ||
		errors.As(err, &conflict)
}
