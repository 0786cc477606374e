package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPasswordPolicy   = errors.New("password does not satisfy the policy")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrRequiredFields   = errors.New("required fields are missing")
	ErrInvalidDate      = errors.New("invalid date")
	ErrTermsNotAccepted = errors.New("terms not accepted")
	ErrFileRequired     = errors.New("file is required")
	ErrFileKind         = errors.New("file kind is not allowed")
	ErrFileTooLarge     = errors.New("file is too large")
)

// User-facing messages attached to field errors.
const (
	MsgPasswordPolicy   = "Password must be at least 8 characters with 1 special character and alphanumeric"
	MsgPasswordMismatch = "Passwords do not match"
	MsgEmailRequired    = "Email is required"
	MsgPasswordRequired = "Password is required"
	MsgNameRequired     = "Name is required"
	MsgAcceptTerms      = "You must accept the terms and conditions"
	MsgItemRequired     = "Header and Title are required"
	MsgReminderRequired = "Please fill all fields for the reminder"
	MsgReminderDate     = "Reminder date is not a valid date"
	MsgDocumentRequired = "Document name and file are required"
	MsgFileKind         = "Only PDF, JPG, PNG, and Excel files are allowed"
	MsgFileTooLarge     = "File size must be less than 2MB"
)

// FieldErrors collects per-field validation failures. It unwraps to every
// sentinel it was built from, so errors.Is works for each of them.
type FieldErrors struct {
	Fields map[string]string

	order  []string
	causes []error
}

func (e *FieldErrors) add(field string, cause error, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = msg
	e.causes = append(e.causes, cause)
}

func (e *FieldErrors) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error joins the field messages in the order they were found.
func (e *FieldErrors) Error() string {
	msgs := make([]string, 0, len(e.order))
	for _, f := range e.order {
		msgs = append(msgs, f+": "+e.Fields[f])
	}
	return strings.Join(msgs, "; ")
}

// Unwrap returns the sentinel causes.
func (e *FieldErrors) Unwrap() []error {
	return e.causes
}

// Message returns the first field message, suitable for a notification.
func (e *FieldErrors) Message() string {
	if len(e.order) == 0 {
		return ""
	}
	return e.Fields[e.order[0]]
}

// Field returns the message recorded for field, if any.
func (e *FieldErrors) Field(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

// MessageOf returns the first field message of a *FieldErrors, or fallback.
func MessageOf(err error, fallback string) string {
	var fe *FieldErrors
	if errors.As(err, &fe) {
		if msg := fe.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}
