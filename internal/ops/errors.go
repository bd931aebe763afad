package ops

import "fmt"

// ValidationError reports a request that failed schema validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UnknownOperationError reports an operation name absent from the registry.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// RemoteError wraps a failure reported by the calendar backend. It exists so
// callers and tests can tell backend failures apart from caller-input errors;
// the rendered text is the backend's own message.
type RemoteError struct {
	Err error
}

func (e *RemoteError) Error() string { return e.Err.Error() }

func (e *RemoteError) Unwrap() error { return e.Err }
