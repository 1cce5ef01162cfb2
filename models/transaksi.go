// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentTunai PaymentMethod = "tunai"
	PaymentQRIS  PaymentMethod = "qris"
)

// TransaksiItem is one product line of a sale.
type TransaksiItem struct {
	ID          *int64           `json:"id,omitempty"`
	TransaksiID *int64           `json:"transaksi_id,omitempty"`
	ProdukID    int64            `json:"produk_id" validate:"required"`
	Quantity    int              `json:"quantity" validate:"gt=0"`
	Subtotal    *decimal.Decimal `json:"subtotal,omitempty"`
	Produk      *Product         `json:"produk,omitempty"`
}

// Transaksi is a completed sale at an outlet.
type Transaksi struct {
	ID          int64           `json:"id"`
	OutletID    int64           `json:"outlet_id"`
	KaryawanID  int64           `json:"karyawan_id"`
	Tanggal     string          `json:"tanggal"`
	Total       decimal.Decimal `json:"total"`
	MetodeBayar PaymentMethod   `json:"metode_bayar"`
	BuktiQRIS   *string         `json:"bukti_qris,omitempty"`
	Items       []TransaksiItem `json:"items,omitempty"`
}

// TransaksiItemPayload is one line of a new sale.
type TransaksiItemPayload struct {
	ProdukID int64 `json:"produk_id" validate:"required"`
	Quantity int   `json:"quantity" validate:"gt=0"`
}

// CreateTransaksiPayload is submitted as multipart form data to POST /transaksi.
// Items are sent as a JSON-encoded string field.
type CreateTransaksiPayload struct {
	Tanggal     string                 `form:"tanggal" validate:"required"`
	MetodeBayar PaymentMethod          `form:"metode_bayar" validate:"required,oneof=tunai qris"`
	Items       []TransaksiItemPayload `form:"items" validate:"required,min=1,dive"`
	BuktiQRIS   *FileAsset             `form:"bukti_qris"`
}

// UpdateTransaksiPayload is submitted as multipart form data to
// POST /transaksi/{id} with a _method=PUT override.
type UpdateTransaksiPayload struct {
	Tanggal     string                 `form:"tanggal"`
	MetodeBayar PaymentMethod          `form:"metode_bayar" validate:"omitempty,oneof=tunai qris"`
	Items       []TransaksiItemPayload `form:"items" validate:"dive"`
	BuktiQRIS   *FileAsset             `form:"bukti_qris"`
}
