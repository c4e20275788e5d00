package core

import "fmt"

type Unit struct{}

// CommandError carries the HTTP status code a handler error should map to,
// together with the underlying cause.
type CommandError struct {
	Payload    interface{}
	StatusCode int
	Reason     *string
}

type CommandErrorOption func(*CommandError)

func WithReason(reason string) CommandErrorOption {
	return func(e *CommandError) {
		e.Reason = &reason
	}
}

func NewCommandError(statusCode int, payload interface{}, opts ...CommandErrorOption) CommandError {
	e := CommandError{
		StatusCode: statusCode,
		Payload:    payload,
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

func (r CommandError) Error() string {
	if r.Reason != nil {
		return *r.Reason
	}

	if cause, ok := r.Payload.(error); ok {
		return cause.Error()
	}

	return fmt.Sprintf("%+v", r.Payload)
}

func (r CommandError) Unwrap() error {
	if cause, ok := r.Payload.(error); ok {
		return cause
	}

	return nil
}
