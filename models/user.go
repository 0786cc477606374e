// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity of the signed-in account as reported by the backend.
// It is fetched on screen mount and discarded on logout.
type User struct {
	ID     int64  `json:"id,omitempty"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Mobile string `json:"mobile,omitempty"`
}

// MeResponse is the envelope returned by GET /me.
type MeResponse struct {
	User *User `json:"user"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

// ResetPasswordRequest is the body of POST /forgotPassword.
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// MessageResponse is the success body of the login, register and reset
// endpoints. User is filled by the login endpoint only.
type MessageResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
