// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of an account.
type Role string

const (
	// RoleTaxpayer is the default role assigned at registration.
	RoleTaxpayer Role = "taxpayer"
	// RoleAdmin may read every taxpayer's records.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTaxpayer || r == RoleAdmin
}

// User represents an account that owns tax profiles and payments.
// PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	// UserID is the server-assigned identifier.
	UserID int64 `json:"id"`

	// Name is the display name of the taxpayer.
	Name string `json:"name"`

	// Email is unique across all accounts and used as the login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Role controls which records the account may access.
	Role Role `json:"role"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,pwd"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=taxpayer admin"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the mutable profile fields of a user.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
}

// ChangePasswordRequest is the body of POST /api/users/change-password/{id}.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,pwd,nefield=CurrentPassword"`
}

// LoginResponse is returned after a successful registration or login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
