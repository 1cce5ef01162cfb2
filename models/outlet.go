// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outlet is a branch of the chain.
type Outlet struct {
	ID         int64  `json:"id"`
	Nama       string `json:"nama"`
	Alamat     string `json:"alamat"`
	IsActive   bool   `json:"is_active"`
	UsersCount *int   `json:"users_count,omitempty"`
}

// CreateOutletPayload is the body of POST /outlets.
type CreateOutletPayload struct {
	Nama     string `json:"nama" validate:"required"`
	Alamat   string `json:"alamat" validate:"required"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateOutletPayload is the body of PUT /outlets/{id}.
type UpdateOutletPayload struct {
	Nama     *string `json:"nama,omitempty"`
	Alamat   *string `json:"alamat,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
