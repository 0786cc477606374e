// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Reminder belongs to an item and fires AlertBefore ahead of Date.
// Date is kept as the backend sends it; see view.ParseReminderDate.
type Reminder struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"item_id,omitempty"`
	HeaderID    int64  `json:"header_id,omitempty"`
	Name        string `json:"reminder_name"`
	Date        string `json:"reminder_date"`
	AlertBefore string `json:"alert_before"`
	ItemTitle   string `json:"item_title,omitempty"`
	HeaderName  string `json:"header_name,omitempty"`
}

// LeadTime is one "alert before" choice offered by GET /remindMeName.
type LeadTime struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ReminderRequest is the body of POST /addReminder.
type ReminderRequest struct {
	HeaderID int64  `json:"header_id"`
	ItemID   int64  `json:"item_id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Before   string `json:"before"`
}

// ReminderUpdateRequest is the body of PUT /updateReminder/{id}.
type ReminderUpdateRequest struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Before string `json:"before"`
}
