// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// salestrak client services and screens.
//
// All Msg* constants are human-readable message strings shown in the
// notification line after an operation, or used as the fallback when the
// backend did not put any text of its own in an error body. Keeping them in
// one place ensures consistent wording throughout the client.
package app

// Success messages.
const (
	// MsgLoggedIn is shown after a successful login.
	MsgLoggedIn = "Logged in successfully"

	// MsgRegistered is shown after an account was created.
	MsgRegistered = "Registration successful, please log in"

	// MsgPasswordReset is shown after the password was changed.
	MsgPasswordReset = "Password updated, please log in"

	// MsgLoggedOut is shown on the menu after logout.
	MsgLoggedOut = "Logged out"

	MsgItemCreated = "Item created successfully"
	MsgItemUpdated = "Item updated successfully"
	MsgItemDeleted = "Item deleted successfully"

	MsgHeaderAdded = "Header added"

	MsgReminderAdded   = "Reminder added successfully!"
	MsgReminderUpdated = "Reminder updated successfully"
	MsgReminderDeleted = "Reminder deleted"

	MsgDocumentAdded   = "Document added successfully!"
	MsgDocumentUpdated = "Document updated successfully!"
	MsgDocumentDeleted = "Document deleted"

	// MsgDocumentDownloaded is a format string taking the written path and
	// the human readable size.
	MsgDocumentDownloaded = "Saved %s (%s)"

	// MsgLinkCopied is shown after the item link was put on the clipboard.
	MsgLinkCopied = "Item link copied to clipboard"
)

// Fallback error messages. They are used only when the backend sent no
// message of its own.
const (
	MsgGenericError = "An error occurred"

	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgResetFailed        = "Password reset failed"

	// MsgSessionExpired is shown when the backend no longer knows the
	// session and the user has to log in again.
	MsgSessionExpired = "Your session has expired, please log in again"

	MsgHeaderAddFailed = "Error adding header"

	MsgItemLoadFailed   = "Failed to load item"
	MsgItemCreateFailed = "Failed to create item"
	MsgItemUpdateFailed = "Failed to update item"
	MsgItemDeleteFailed = "Failed to delete item"

	MsgReminderAddFailed    = "Failed to add reminder"
	MsgReminderFetchFailed  = "Failed to fetch reminder"
	MsgReminderUpdateFailed = "Failed to update reminder"
	MsgReminderDeleteFailed = "Failed to delete"

	MsgDocumentAddFailed      = "Failed to add document"
	MsgDocumentUpdateFailed   = "Failed to update document"
	MsgDocumentDeleteFailed   = "Failed to delete document"
	MsgDocumentDownloadFailed = "Failed to download document"

	MsgClipboardFailed = "Could not access the clipboard"
)
