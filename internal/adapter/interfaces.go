// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the SalesTrak backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) whose requests always carry the session cookies.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401), while
// [MessageOf] recovers the text the server put in the error body.
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/salestrak-pa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the SalesTrak backend. One method
// exists per backend endpoint. Implementations are responsible for
// serialisation, carrying the session cookies and mapping transport-level
// errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// BaseURL returns the normalised backend address.
	BaseURL() string

	// Cookies returns the session cookies currently held for the backend.
	Cookies() []*http.Cookie

	// SetCookies replaces the session cookies, e.g. with the ones restored
	// from the local session store.
	SetCookies(cookies []*http.Cookie)

	// Me returns the signed-in user (GET /me). A session without a user
	// yields a nil user and no error.
	Me(ctx context.Context) (*models.User, error)

	// Logout ends the server session (POST /logOut).
	Logout(ctx context.Context) error

	// Login authenticates with email and password (POST /login). On success
	// the server sets the session cookie.
	Login(ctx context.Context, req models.LoginRequest) (models.MessageResponse, error)

	// Register creates an account (POST /register).
	Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error)

	// ResetPassword sets a new password for the email (POST /forgotPassword).
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.MessageResponse, error)

	// GetHeaders lists every header (GET /Header).
	GetHeaders(ctx context.Context) ([]models.Header, error)

	// AddHeader creates a header (POST /addHeader). An existing name is
	// reported as [ErrConflict].
	AddHeader(ctx context.Context, name string) (models.Header, error)

	// GetAllItems lists the items grouped by header (GET /getAllItemData).
	GetAllItems(ctx context.Context) ([]models.HeaderGroup, error)

	// UpsertItem creates an item, or updates it when req carries
	// UpdatedItemID (POST /addItems).
	UpsertItem(ctx context.Context, req models.ItemUpsertRequest) (models.ItemSaved, error)

	// GetItem fetches an item with its reminders and documents
	// (POST /getItemByHeaderId).
	GetItem(ctx context.Context, headerID, itemID int64) (models.ItemDetails, error)

	// DeleteItem removes an item (DELETE /deleteItem/{id}).
	DeleteItem(ctx context.Context, itemID int64) error

	// GetAllReminders lists the reminders of every item
	// (GET /getAllremainderDate).
	GetAllReminders(ctx context.Context) ([]models.Reminder, error)

	// AddReminder creates a reminder (POST /addReminder).
	AddReminder(ctx context.Context, req models.ReminderRequest) error

	// EditReminder fetches a reminder for editing (GET /editReminder/{id}).
	EditReminder(ctx context.Context, id int64) (models.Reminder, error)

	// UpdateReminder saves an edited reminder (PUT /updateReminder/{id}).
	UpdateReminder(ctx context.Context, id int64, req models.ReminderUpdateRequest) error

	// DeleteReminder removes a reminder (DELETE /deleteReminder/{id}).
	DeleteReminder(ctx context.Context, id int64) error

	// GetLeadTimes lists the "alert before" options (GET /remindMeName).
	GetLeadTimes(ctx context.Context) ([]models.LeadTime, error)

	// GetAllDocuments lists the documents of every item
	// (GET /getAllDocumentData).
	GetAllDocuments(ctx context.Context) ([]models.Document, error)

	// SearchDocuments runs the server-side document typeahead
	// (GET /searchDocuments?term=).
	SearchDocuments(ctx context.Context, term string) ([]models.SearchOption, error)

	// SearchItems runs the server-side item typeahead (GET /searchItems?term=).
	SearchItems(ctx context.Context, term string) ([]models.SearchOption, error)

	// AddDocument uploads a new document as multipart form data
	// (POST /addDocument).
	AddDocument(ctx context.Context, upload models.DocumentUpload) error

	// UpdateDocument saves a document as multipart form data
	// (PUT /updateDocument/{id}). The file part is sent only when the form
	// carries a new file.
	UpdateDocument(ctx context.Context, id int64, upload models.DocumentUpload) error

	// DeleteDocument removes a document (DELETE /deleteDocument/{id}).
	DeleteDocument(ctx context.Context, id int64) error

	// DownloadDocument streams the stored file (GET /download/{id}).
	DownloadDocument(ctx context.Context, id int64) (models.DownloadedDocument, error)

	// DownloadURL returns the absolute download address of a document.
	DownloadURL(id int64) string
}
