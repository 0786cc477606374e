package state

import (
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
)

// AuthMode selects which auth form is shown.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthRegister
	AuthReset
)

func (m AuthMode) String() string {
	switch m {
	case AuthRegister:
		return "register"
	case AuthReset:
		return "reset"
	default:
		return "login"
	}
}

// AuthForm is the state of the login, registration and reset screens. The
// password and its confirmation are validated on every change.
type AuthForm struct {
	Mode AuthMode

	Name        string
	Email       string
	Mobile      string
	Password    string
	Confirm     string
	AcceptTerms bool

	// Errors holds the inline field messages.
	Errors     map[string]string
	Submitting bool
}

// NewAuthForm returns an empty form in mode.
func NewAuthForm(mode AuthMode) *AuthForm {
	return &AuthForm{Mode: mode, Errors: map[string]string{}}
}

// SetMode switches the form, keeping the email and dropping everything else.
func (f *AuthForm) SetMode(mode AuthMode) {
	email := f.Email
	*f = *NewAuthForm(mode)
	f.Email = email
}

// SetPassword updates the password and re-validates it and the confirmation.
func (f *AuthForm) SetPassword(p string) {
	f.Password = p
	if f.Mode == AuthLogin {
		return
	}

	if p != "" && validators.ValidatePassword(p) != nil {
		f.Errors[validators.FieldPassword] = validators.MsgPasswordPolicy
	} else {
		delete(f.Errors, validators.FieldPassword)
	}
	if f.Confirm != "" {
		f.checkConfirm()
	}
}

// SetConfirm updates the confirmation and re-validates it.
func (f *AuthForm) SetConfirm(c string) {
	f.Confirm = c
	if f.Mode != AuthLogin {
		f.checkConfirm()
	}
}

func (f *AuthForm) checkConfirm() {
	if validators.ValidatePasswordConfirmation(f.Password, f.Confirm) != nil {
		f.Errors[validators.FieldConfirmPassword] = validators.MsgPasswordMismatch
	} else {
		delete(f.Errors, validators.FieldConfirmPassword)
	}
}

// ApplyErrors replaces the inline messages with those of a failed validation.
func (f *AuthForm) ApplyErrors(fe *validators.FieldErrors) {
	f.Errors = map[string]string{}
	if fe == nil {
		return
	}
	for k, v := range fe.Fields {
		f.Errors[k] = v
	}
}

// CanSubmit reports whether the submit action is enabled: not already
// submitting, no inline password error and the mode's key fields present.
func (f *AuthForm) CanSubmit() bool {
	if f.Submitting || strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return false
	}
	if f.Mode == AuthLogin {
		return true
	}
	return f.Errors[validators.FieldPassword] == "" && f.Errors[validators.FieldConfirmPassword] == ""
}

// LoginRequest returns the POST /login body.
func (f *AuthForm) LoginRequest() models.LoginRequest {
	return models.LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

// RegistrationForm returns the registration form values.
func (f *AuthForm) RegistrationForm() models.RegistrationForm {
	return models.RegistrationForm{
		Name:            strings.TrimSpace(f.Name),
		Email:           strings.TrimSpace(f.Email),
		Mobile:          strings.TrimSpace(f.Mobile),
		Password:        f.Password,
		ConfirmPassword: f.Confirm,
		AcceptTerms:     f.AcceptTerms,
	}
}

// ResetForm returns the password reset form values.
func (f *AuthForm) ResetForm() models.PasswordResetForm {
	return models.PasswordResetForm{
		Email:           strings.TrimSpace(f.Email),
		Password:        f.Password,
		ConfirmPassword: f.Confirm,
	}
}
