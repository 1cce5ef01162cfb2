// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Role is the backend role name attached to every account.
type Role string

const (
	// RoleKaryawan is the outlet cashier role.
	RoleKaryawan Role = "karyawan"
	// RoleGudang is the warehouse staff role.
	RoleGudang Role = "gudang"
	// RoleOwner is the chain owner role with access to outlets, users and reports.
	RoleOwner Role = "owner"
)

// Normalize returns the role lowercased and trimmed. The backend is not
// consistent about casing.
func (r Role) Normalize() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(r))))
}

// Known reports whether the role is one the client has a home screen for.
func (r Role) Known() bool {
	switch r.Normalize() {
	case RoleKaryawan, RoleGudang, RoleOwner:
		return true
	}
	return false
}

// User is the cached profile of the signed-in account. It is persisted under
// the user-data session key as JSON, with Role passed through
// [Role.Normalize] by the auth service before it is saved.
type User struct {
	// ID is the backend identifier of the account.
	ID int64 `json:"id" validate:"required"`

	// Username is the login name, also shown in greetings.
	Username string `json:"username" validate:"required"`

	// Role decides which part of the application the user may open.
	Role Role `json:"role" validate:"required"`

	// OutletID binds cashiers to a single outlet. Nil for owners and
	// warehouse staff.
	OutletID *int64 `json:"outlet_id,omitempty"`

	// Outlet is populated by some endpoints (e.g. /me) when the backend eager
	// loads the relation.
	Outlet *Outlet `json:"outlet,omitempty"`
}

// CreateUserPayload is the body of POST /users.
type CreateUserPayload struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     Role    `json:"role" validate:"required,oneof=karyawan gudang owner"`
	OutletID *int64  `json:"outlet_id,omitempty"`
	Name     *string `json:"name,omitempty"`
}

// UpdateUserPayload is the body of PUT /users/{id}. Nil fields are omitted.
type UpdateUserPayload struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     *Role   `json:"role,omitempty" validate:"omitempty,oneof=karyawan gudang owner"`
	OutletID *int64  `json:"outlet_id,omitempty"`
}
