// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds one view-state container per screen. Each container
// owns an enumerated set of fields and exposes the actions that change them;
// screens never assign the fields of another screen.
//
// Containers are not safe for concurrent use. They are mutated only from the
// TUI update loop, which applies results of background commands as messages.
package state
