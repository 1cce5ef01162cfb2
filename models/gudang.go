// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StockRequestStatus is the lifecycle state of a stock request.
type StockRequestStatus string

const (
	StockRequestPending   StockRequestStatus = "pending"
	StockRequestApproved  StockRequestStatus = "approved"
	StockRequestRejected  StockRequestStatus = "rejected"
	StockRequestCompleted StockRequestStatus = "completed"
	StockRequestCancelled StockRequestStatus = "cancelled"
)

// ShipmentStatus is the lifecycle state of an outgoing warehouse shipment.
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentReceived  ShipmentStatus = "received"
	ShipmentCancelled ShipmentStatus = "cancelled"
)

// StokGudang is the warehouse stock level of one material.
type StokGudang struct {
	BahanID int64   `json:"bahan_id"`
	Stok    float64 `json:"stok"`
	Bahan   *Bahan  `json:"bahan,omitempty"`
}

// StokOutletItem is the stock level of one material at the caller's outlet.
type StokOutletItem struct {
	BahanID int64   `json:"bahan_id"`
	Stok    float64 `json:"stok"`
	Bahan   *Bahan  `json:"bahan,omitempty"`
}

// BahanGudang is a material as offered by the warehouse to outlets.
type BahanGudang struct {
	ID     int64   `json:"id"`
	Nama   string  `json:"nama"`
	Satuan string  `json:"satuan"`
	Stok   float64 `json:"stok"`
}

// BarangMasuk is an incoming delivery from a supplier.
type BarangMasuk struct {
	ID       int64   `json:"id"`
	BahanID  int64   `json:"bahan_id"`
	Jumlah   float64 `json:"jumlah"`
	Tanggal  string  `json:"tanggal"`
	Supplier string  `json:"supplier"`
	Bahan    *Bahan  `json:"bahan,omitempty"`
}

// CreateBarangMasukPayload is the body of POST /gudang/barang-masuk.
type CreateBarangMasukPayload struct {
	BahanID  int64   `json:"bahan_id" validate:"required"`
	Jumlah   float64 `json:"jumlah" validate:"gt=0"`
	Tanggal  string  `json:"tanggal,omitempty"`
	Supplier string  `json:"supplier" validate:"required"`
}

// UpdateBarangMasukPayload is the body of PUT /gudang/barang-masuk/{id}.
type UpdateBarangMasukPayload struct {
	BahanID  *int64   `json:"bahan_id,omitempty"`
	Jumlah   *float64 `json:"jumlah,omitempty" validate:"omitempty,gt=0"`
	Tanggal  *string  `json:"tanggal,omitempty"`
	Supplier *string  `json:"supplier,omitempty"`
}

// BarangKeluar is a shipment from the warehouse to an outlet.
type BarangKeluar struct {
	ID            int64          `json:"id"`
	PermintaanID  *int64         `json:"permintaan_id,omitempty"`
	GudangID      *int64         `json:"gudang_id,omitempty"`
	OutletID      *int64         `json:"outlet_id,omitempty"`
	TanggalKeluar string         `json:"tanggal_keluar"`
	Status        ShipmentStatus `json:"status"`
	BuktiFoto     *string        `json:"bukti_foto,omitempty"`
	Jumlah        *float64       `json:"jumlah,omitempty"`
	Bahan         *Bahan         `json:"bahan,omitempty"`
}

// PermintaanStok is a stock request raised by an outlet.
type PermintaanStok struct {
	ID       int64              `json:"id"`
	OutletID int64              `json:"outlet_id"`
	BahanID  int64              `json:"bahan_id"`
	Jumlah   float64            `json:"jumlah"`
	Status   StockRequestStatus `json:"status"`
	Bahan    *Bahan             `json:"bahan,omitempty"`
	Outlet   *Outlet            `json:"outlet,omitempty"`
}

// CreatePermintaanStokPayload is the body of POST /permintaan-stok.
type CreatePermintaanStokPayload struct {
	BahanID int64   `json:"bahan_id" validate:"required"`
	Jumlah  float64 `json:"jumlah" validate:"gt=0"`
}

// UpdatePermintaanStokKaryawanPayload is the body a cashier sends to
// PUT /permintaan-stok/{id}.
type UpdatePermintaanStokKaryawanPayload struct {
	BahanID *int64   `json:"bahan_id,omitempty"`
	Jumlah  *float64 `json:"jumlah,omitempty" validate:"omitempty,gt=0"`
}

// UpdatePermintaanStokPayload moves a stock request through its lifecycle.
type UpdatePermintaanStokPayload struct {
	Status StockRequestStatus `json:"status" validate:"required,oneof=pending approved rejected completed cancelled"`
	Jumlah *float64           `json:"jumlah,omitempty" validate:"omitempty,gt=0"`
}

// TerimaBarangKeluarResponse is returned when an outlet confirms receipt.
type TerimaBarangKeluarResponse struct {
	Message      string          `json:"message"`
	BarangKeluar *BarangKeluar   `json:"barang_keluar,omitempty"`
	Permintaan   *PermintaanStok `json:"permintaan,omitempty"`
}
