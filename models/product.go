// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Kategori groups products and raw materials.
type Kategori struct {
	ID   int64  `json:"id"`
	Nama string `json:"nama"`
}

// CreateKategoriPayload is the body of POST /gudang/kategori.
type CreateKategoriPayload struct {
	Nama string `json:"nama" validate:"required"`
}

// UpdateKategoriPayload is the body of PUT /gudang/kategori/{id}.
type UpdateKategoriPayload struct {
	Nama string `json:"nama" validate:"required"`
}

// Bahan is a raw material tracked by the warehouse.
type Bahan struct {
	ID                int64   `json:"id"`
	Nama              string  `json:"nama"`
	Satuan            string  `json:"satuan"`
	StokMinimumGudang float64 `json:"stok_minimum_gudang"`
	StokMinimumOutlet float64 `json:"stok_minimum_outlet"`
}

// CreateBahanPayload is the body of POST /gudang/bahan.
type CreateBahanPayload struct {
	Nama              string  `json:"nama" validate:"required"`
	Satuan            string  `json:"satuan" validate:"required"`
	StokMinimumGudang float64 `json:"stok_minimum_gudang" validate:"gte=0"`
	StokMinimumOutlet float64 `json:"stok_minimum_outlet" validate:"gte=0"`
}

// UpdateBahanPayload is the body of PUT /gudang/bahan/{id}.
type UpdateBahanPayload struct {
	Nama              *string  `json:"nama,omitempty"`
	Satuan            *string  `json:"satuan,omitempty"`
	StokMinimumGudang *float64 `json:"stok_minimum_gudang,omitempty" validate:"omitempty,gte=0"`
	StokMinimumOutlet *float64 `json:"stok_minimum_outlet,omitempty" validate:"omitempty,gte=0"`
}

// Komposisi is one raw-material line of a product recipe.
type Komposisi struct {
	ID       *int64  `json:"id,omitempty"`
	ProdukID *int64  `json:"produk_id,omitempty"`
	BahanID  int64   `json:"bahan_id" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	Bahan    *Bahan  `json:"bahan,omitempty"`
}

// Product is a sellable menu item.
type Product struct {
	ID          int64           `json:"id"`
	Nama        string          `json:"nama"`
	Harga       decimal.Decimal `json:"harga"`
	Gambar      *string         `json:"gambar,omitempty"`
	IsAvailable *bool           `json:"is_available,omitempty"`
	Category    string          `json:"category,omitempty"`
	Komposisi   []Komposisi     `json:"komposisi,omitempty"`
}

// CreateProductPayload is submitted as multipart form data to POST /produk.
type CreateProductPayload struct {
	Nama       string          `form:"nama" validate:"required"`
	Harga      decimal.Decimal `form:"harga" validate:"gt=0"`
	Category   string          `form:"category"`
	KategoriID int64           `form:"kategori_id" validate:"required"`
	Komposisi  []Komposisi     `form:"komposisi" validate:"dive"`
	Gambar     *FileAsset      `form:"gambar"`
}

// UpdateProductPayload is submitted as multipart form data to
// POST /produk/{id} with a _method=PUT override. Zero fields are omitted.
type UpdateProductPayload struct {
	Nama       string           `form:"nama"`
	Harga      *decimal.Decimal `form:"harga" validate:"omitempty,gt=0"`
	Category   string           `form:"category"`
	KategoriID int64            `form:"kategori_id"`
	Komposisi  []Komposisi      `form:"komposisi" validate:"dive"`
	Gambar     *FileAsset       `form:"gambar"`
}

// FileAsset describes a picked image or document before upload.
type FileAsset struct {
	// URI is the local path of the file, optionally prefixed with file://.
	URI string `validate:"required"`
	// Name is the original file name, if the picker reported one.
	Name string
	// Type is the MIME type, if the picker reported one.
	Type string
}
