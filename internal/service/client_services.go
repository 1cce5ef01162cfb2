// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/validators"
)

// ClientServices groups the services the shell needs.
type ClientServices struct {
	AuthService     AuthService
	OwnerService    OwnerService
	GudangService   GudangService
	KaryawanService KaryawanService
}

// NewClientServices wires every service to gw and the session store.
func NewClientServices(gw adapter.Gateway, sess SessionManager) *ClientServices {
	res := resourceClient{gw: gw, validator: validators.NewPayloadValidator()}

	return &ClientServices{
		AuthService:     NewClientAuthService(res, sess),
		OwnerService:    NewOwnerService(res),
		GudangService:   NewGudangService(res),
		KaryawanService: NewKaryawanService(res),
	}
}
