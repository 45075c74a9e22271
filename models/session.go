// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the login state the command-line client keeps between runs.
type Session struct {
	// Server is the base URL the token was issued by.
	Server  string    `json:"server"`
	UserID  int64     `json:"user_id"`
	Email   string    `json:"email"`
	Role    Role      `json:"role"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}
