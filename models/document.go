// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Document is a file attached to an item. The stored file is immutable;
// only the display name can change without a new upload.
type Document struct {
	ID         int64  `json:"id"`
	ItemID     int64  `json:"item_id,omitempty"`
	HeaderID   int64  `json:"header_id,omitempty"`
	Name       string `json:"doc_name"`
	FilePath   string `json:"doc_file_path,omitempty"`
	ItemTitle  string `json:"item_title,omitempty"`
	HeaderName string `json:"header_name,omitempty"`
}

// FileRef describes the file attached to a document form.
//
// IsExisting marks a reference to the file already stored on the server; such
// a file is never re-uploaded.
type FileRef struct {
	Name        string
	Path        string
	Size        int64
	ContentType string
	IsExisting  bool

	// Reader supplies the upload body. When nil the file at Path is opened.
	Reader io.Reader
}

// DocumentUpload is the in-memory document form sent as multipart data.
// EditingID > 0 turns the save into PUT /updateDocument/{EditingID}.
type DocumentUpload struct {
	Name      string
	HeaderID  int64
	ItemID    int64
	File      *FileRef
	EditingID int64
}

// HasNewFile reports whether the form carries a file that must be uploaded.
func (d DocumentUpload) HasNewFile() bool {
	return d.File != nil && !d.File.IsExisting
}

// DownloadedDocument is the streamed body of GET /download/{id}.
// The caller must close Body.
type DownloadedDocument struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
