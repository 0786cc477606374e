package models

// RegistrationForm is the state of the registration screen.
type RegistrationForm struct {
	Name            string
	Email           string
	Mobile          string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// Request converts the form to the POST /register body.
func (f RegistrationForm) Request() RegisterRequest {
	return RegisterRequest{Name: f.Name, Email: f.Email, Password: f.Password, Mobile: f.Mobile}
}

// PasswordResetForm is the state of the password reset screen.
type PasswordResetForm struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Request converts the form to the POST /forgotPassword body.
func (f PasswordResetForm) Request() ResetPasswordRequest {
	return ResetPasswordRequest{Email: f.Email, Password: f.Password, ConfirmPassword: f.ConfirmPassword}
}

// ItemForm is the editable part of an item. HeaderID and ItemID are zero for
// a brand-new item.
type ItemForm struct {
	HeaderID   int64
	HeaderName string
	ItemID     int64
	Title      string
	ShortDesc  string
	DetDesc    string
	Highlights string
}

// IsNew reports whether the form describes an item not saved yet.
func (f ItemForm) IsNew() bool {
	return f.ItemID == 0
}

// ReminderForm is the add/edit reminder sub-form of the item editor.
// EditingID > 0 turns the save into an update.
type ReminderForm struct {
	Name      string
	Date      string
	Before    string
	EditingID int64
}
