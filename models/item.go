// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Header is a named category that owns an ordered list of items.
type Header struct {
	ID         int64  `json:"id"`
	HeaderName string `json:"header_name"`
}

// UnmarshalJSON accepts both "header_name" and the legacy "name" key that the
// add-header endpoint echoes back.
func (h *Header) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID         int64  `json:"id"`
		HeaderName string `json:"header_name"`
		Name       string `json:"name"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	h.ID = raw.ID
	h.HeaderName = raw.HeaderName
	if h.HeaderName == "" {
		h.HeaderName = raw.Name
	}
	return nil
}

// HeaderRequest is the body of POST /addHeader.
type HeaderRequest struct {
	Name string `json:"name"`
}

// HeaderCreated is the response of POST /addHeader.
type HeaderCreated struct {
	Header Header `json:"header"`
}

// Item is a single tracked entry. It always belongs to exactly one header.
type Item struct {
	ID         int64  `json:"id"`
	HeaderID   int64  `json:"header_id"`
	HeaderName string `json:"header_name"`
	Title      string `json:"title"`
	ShortDesc  string `json:"short_desc"`
	DetDesc    string `json:"det_desc"`
	Highlights string `json:"highlights"`
}

// HeaderGroup is one bucket of GET /getAllItemData.
type HeaderGroup struct {
	HeaderID   int64  `json:"header_id"`
	HeaderName string `json:"header_name"`
	Items      []Item `json:"items"`
}

// ItemUpsertRequest is the body of POST /addItems. UpdatedHeaderID and
// UpdatedItemID are set only when an existing item is being saved.
type ItemUpsertRequest struct {
	HeaderID        int64  `json:"header_id"`
	HeaderName      string `json:"header_name"`
	Title           string `json:"title"`
	ShortDesc       string `json:"short_desc"`
	DetDesc         string `json:"det_desc"`
	Highlights      string `json:"highlights"`
	UpdatedHeaderID *int64 `json:"updatedHeaderId,omitempty"`
	UpdatedItemID   *int64 `json:"updatedItemId,omitempty"`
}

// ItemSaved is the response of POST /addItems.
type ItemSaved struct {
	HeaderID int64 `json:"header_id"`
	ItemID   int64 `json:"item_id"`
}

// ItemLookupRequest is the body of POST /getItemByHeaderId.
type ItemLookupRequest struct {
	HeaderID int64 `json:"headerId"`
	ItemID   int64 `json:"itemId"`
}

// ItemDetails is the response of POST /getItemByHeaderId: the item with its
// reminders and documents.
type ItemDetails struct {
	Item      Item       `json:"item"`
	Reminders []Reminder `json:"reminders"`
	Documents []Document `json:"documents"`
}
