package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/view"
	"github.com/MKhiriev/salestrak-pa/models"
)

// Field name constants. They key FieldErrors.Fields and can be passed to
// Validate to restrict validation to a subset of fields.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldAcceptTerms     = "accept_terms"
	FieldHeader          = "header"
	FieldTitle           = "title"
	FieldReminder        = "reminder"
	FieldReminderDate    = "reminder_date"
	FieldDocumentName    = "doc_name"
	FieldFile            = "doc_file"

	// FieldDocumentCreate makes the file mandatory, as on document creation.
	FieldDocumentCreate = "document_create"
)

// specialChars is the fixed set of characters a password must contain one of.
const specialChars = "!@#$%^&*"

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 8

// FormValidator implements [Validator] for every client form:
// RegistrationForm, PasswordResetForm, LoginRequest, ItemForm, ReminderForm
// and DocumentUpload. Value and pointer forms are accepted.
type FormValidator struct{}

// NewFormValidator constructs a FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else. For a DocumentUpload, FieldDocumentCreate in fields makes
// the file mandatory; other field names are ignored there.
func (v *FormValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationForm:
		return scoped(ValidateRegistration(value), fields)
	case *models.RegistrationForm:
		return scoped(ValidateRegistration(*value), fields)

	case models.PasswordResetForm:
		return scoped(ValidatePasswordReset(value), fields)
	case *models.PasswordResetForm:
		return scoped(ValidatePasswordReset(*value), fields)

	case models.LoginRequest:
		return scoped(ValidateLogin(value), fields)
	case *models.LoginRequest:
		return scoped(ValidateLogin(*value), fields)

	case models.ItemForm:
		return scoped(ValidateItem(value), fields)
	case *models.ItemForm:
		return scoped(ValidateItem(*value), fields)

	case models.ReminderForm:
		return scoped(ValidateReminder(value), fields)
	case *models.ReminderForm:
		return scoped(ValidateReminder(*value), fields)

	case models.DocumentUpload:
		return ValidateDocument(value, hasField(fields, FieldDocumentCreate))
	case *models.DocumentUpload:
		return ValidateDocument(*value, hasField(fields, FieldDocumentCreate))

	default:
		return ErrUnsupportedType
	}
}

// scoped keeps only the failures of the named fields. No fields means all.
func scoped(err error, fields []string) error {
	if err == nil || len(fields) == 0 {
		return err
	}
	fe, ok := err.(*FieldErrors)
	if !ok {
		return err
	}

	out := &FieldErrors{}
	for i, f := range fe.order {
		if hasField(fields, f) {
			out.add(f, fe.causes[i], fe.Fields[f])
		}
	}
	return out.orNil()
}

func hasField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// ValidatePassword checks the password policy: at least MinPasswordLength
// characters with an ASCII letter, an ASCII digit and one of !@#$%^&*.
func ValidatePassword(password string) error {
	var letter, digit, special bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}

	if length < MinPasswordLength || !letter || !digit || !special {
		fe := &FieldErrors{}
		fe.add(FieldPassword, ErrPasswordPolicy, MsgPasswordPolicy)
		return fe
	}
	return nil
}

// ValidatePasswordConfirmation requires confirm to equal password exactly.
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		fe := &FieldErrors{}
		fe.add(FieldConfirmPassword, ErrPasswordMismatch, MsgPasswordMismatch)
		return fe
	}
	return nil
}

// ValidateLogin requires both the email and the password.
func ValidateLogin(req models.LoginRequest) error {
	fe := &FieldErrors{}
	if strings.TrimSpace(req.Email) == "" {
		fe.add(FieldEmail, ErrRequiredFields, MsgEmailRequired)
	}
	if req.Password == "" {
		fe.add(FieldPassword, ErrRequiredFields, MsgPasswordRequired)
	}
	return fe.orNil()
}

// ValidateRegistration checks the required fields, the password policy,
// the confirmation and the accepted terms.
func ValidateRegistration(form models.RegistrationForm) error {
	fe := &FieldErrors{}
	if strings.TrimSpace(form.Name) == "" {
		fe.add(FieldName, ErrRequiredFields, MsgNameRequired)
	}
	if strings.TrimSpace(form.Email) == "" {
		fe.add(FieldEmail, ErrRequiredFields, MsgEmailRequired)
	}
	mergePasswordErrors(fe, form.Password, form.ConfirmPassword)
	if !form.AcceptTerms {
		fe.add(FieldAcceptTerms, ErrTermsNotAccepted, MsgAcceptTerms)
	}
	return fe.orNil()
}

// ValidatePasswordReset applies the password rules to the new password.
func ValidatePasswordReset(form models.PasswordResetForm) error {
	fe := &FieldErrors{}
	if strings.TrimSpace(form.Email) == "" {
		fe.add(FieldEmail, ErrRequiredFields, MsgEmailRequired)
	}
	mergePasswordErrors(fe, form.Password, form.ConfirmPassword)
	return fe.orNil()
}

func mergePasswordErrors(fe *FieldErrors, password, confirm string) {
	if err := ValidatePassword(password); err != nil {
		fe.add(FieldPassword, ErrPasswordPolicy, MsgPasswordPolicy)
	}
	if err := ValidatePasswordConfirmation(password, confirm); err != nil {
		fe.add(FieldConfirmPassword, ErrPasswordMismatch, MsgPasswordMismatch)
	}
}

// ValidateItem requires a selected header and a non-blank title.
func ValidateItem(form models.ItemForm) error {
	fe := &FieldErrors{}
	if form.HeaderID <= 0 {
		fe.add(FieldHeader, ErrRequiredFields, MsgItemRequired)
	}
	if strings.TrimSpace(form.Title) == "" {
		fe.add(FieldTitle, ErrRequiredFields, MsgItemRequired)
	}
	return fe.orNil()
}

// ValidateReminder requires the name, a parseable date and a lead time.
func ValidateReminder(form models.ReminderForm) error {
	fe := &FieldErrors{}
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Date) == "" || strings.TrimSpace(form.Before) == "" {
		fe.add(FieldReminder, ErrRequiredFields, MsgReminderRequired)
		return fe
	}
	if _, err := view.ParseReminderDate(form.Date, nil); err != nil {
		fe.add(FieldReminderDate, ErrInvalidDate, MsgReminderDate)
	}
	return fe.orNil()
}
