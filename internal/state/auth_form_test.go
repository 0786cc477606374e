package state

import (
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestAuthForm_LivePasswordValidation(t *testing.T) {
	f := NewAuthForm(AuthRegister)
	f.Email = "a@b.c"

	f.SetPassword("abc12345")
	assert.Equal(t, validators.MsgPasswordPolicy, f.Errors[validators.FieldPassword])
	assert.False(t, f.CanSubmit())

	f.SetPassword("abc123!@")
	assert.Empty(t, f.Errors[validators.FieldPassword])

	f.SetConfirm("abc123!")
	assert.Equal(t, validators.MsgPasswordMismatch, f.Errors[validators.FieldConfirmPassword])
	assert.False(t, f.CanSubmit())

	f.SetConfirm("abc123!@")
	assert.True(t, f.CanSubmit())

	// changing the password re-checks a filled confirmation
	f.SetPassword("xyz123!@")
	assert.Equal(t, validators.MsgPasswordMismatch, f.Errors[validators.FieldConfirmPassword])
}

func TestAuthForm_EmptyPasswordHasNoInlineError(t *testing.T) {
	f := NewAuthForm(AuthReset)
	f.SetPassword("")

	assert.Empty(t, f.Errors)
}

func TestAuthForm_LoginSkipsPolicy(t *testing.T) {
	f := NewAuthForm(AuthLogin)
	f.Email = " a@b.c "
	f.SetPassword("short")

	assert.Empty(t, f.Errors)
	assert.True(t, f.CanSubmit())
	assert.Equal(t, "a@b.c", f.LoginRequest().Email)

	f.Submitting = true
	assert.False(t, f.CanSubmit())
}

func TestAuthForm_SetModeKeepsEmail(t *testing.T) {
	f := NewAuthForm(AuthLogin)
	f.Email = "a@b.c"
	f.Password = "secret"

	f.SetMode(AuthRegister)

	assert.Equal(t, AuthRegister, f.Mode)
	assert.Equal(t, "a@b.c", f.Email)
	assert.Empty(t, f.Password)
	assert.NotNil(t, f.Errors)
}

func TestAuthForm_ApplyErrors(t *testing.T) {
	f := NewAuthForm(AuthRegister)
	err := validators.ValidateRegistration(f.RegistrationForm())

	var fe *validators.FieldErrors
	assert.ErrorAs(t, err, &fe)
	f.ApplyErrors(fe)

	assert.Equal(t, validators.MsgNameRequired, f.Errors[validators.FieldName])
}

func TestNotification_Visible(t *testing.T) {
	now := time.Now()
	n := Warning("Header already exists", now)

	assert.True(t, n.Visible(now.Add(time.Second)))
	assert.False(t, n.Visible(now.Add(NotificationTTL)))
	assert.False(t, Notification{}.Visible(now))
	assert.Equal(t, LevelError, Failure("x", now).Level)
	assert.Equal(t, LevelSuccess, Success("x", now).Level)
}
