package domain

import "errors"

// Sentinel error kinds. Every error returned by the services wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	// ErrConfiguration is fatal: the environment must be fixed, retrying will not help.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation means the caller supplied malformed input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStore wraps an infrastructure failure. It may be transient.
	ErrStore = errors.New("store error")
)

// Error is the typed error carried across the service boundary.
type Error struct {
	Kind    error  // one of the sentinels above
	Op      string // operation that failed, e.g. "CreateEvent"
	Subject string // entity or field the error is about, e.g. "organizer"
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotFoundError reports that the named entity ("organizer", "event", ...) does not exist.
func NotFoundError(entity string) *Error {
	return &Error{Kind: ErrNotFound, Subject: entity, Message: entity + " not found"}
}

// ValidationError reports malformed input for field.
func ValidationError(field, message string) *Error {
	return &Error{Kind: ErrValidation, Subject: field, Message: message}
}

// ConfigurationError reports a missing or invalid configuration value.
func ConfigurationError(key, message string) *Error {
	return &Error{Kind: ErrConfiguration, Subject: key, Message: message}
}

// StoreError wraps err as an infrastructure failure of op.
func StoreError(op string, err error) *Error {
	return &Error{Kind: ErrStore, Op: op, Message: "store failure", Err: err}
}

// WithOp stamps the operation name on err if it is a *Error without one.
// Any other error is wrapped as a StoreError.
func WithOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		if de.Op == "" {
			cp := *de
			cp.Op = op
			return &cp
		}
		return de
	}
	return StoreError(op, err)
}

