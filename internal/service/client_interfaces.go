// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service exposes the backend resources as typed operations.
//
// Every operation validates its payload, then goes through the
// [adapter.Gateway]. Gateway failures are returned unwrapped so that
// Error() stays the user-facing message produced by the gateway; match them
// with errors.Is against the adapter sentinels.
package service

import (
	"context"
	"encoding/json"

	"github.com/esteh-pos/pos-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager is the part of the session store the services use.
type SessionManager interface {
	GetToken(ctx context.Context) (string, bool)
	SaveToken(ctx context.Context, token string)
	SaveUser(ctx context.Context, user models.User)
	User(ctx context.Context) (models.User, bool)
	Current(ctx context.Context) (models.Session, bool)
	RemoveToken(ctx context.Context)
}

// AuthService signs users in and out.
type AuthService interface {
	// Login authenticates and persists the session. Accounts with an
	// unknown role are rejected with [ErrUnknownRole].
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	// Me fetches the profile of the signed-in user and refreshes the cache.
	Me(ctx context.Context) (models.User, error)
	// Logout tells the backend and clears the local session. The session is
	// cleared even when the request fails; that error is returned.
	Logout(ctx context.Context) error
	// RestoreSession returns the persisted session if it is complete and
	// its role is known. An unknown role clears the session.
	RestoreSession(ctx context.Context) (models.Session, bool)
}

// OwnerService covers outlets, users and reports.
type OwnerService interface {
	ListOutlets(ctx context.Context) ([]models.Outlet, error)
	GetOutlet(ctx context.Context, id int64) (models.Outlet, error)
	CreateOutlet(ctx context.Context, payload models.CreateOutletPayload) (models.Outlet, error)
	UpdateOutlet(ctx context.Context, id int64, payload models.UpdateOutletPayload) (models.Outlet, error)
	DeleteOutlet(ctx context.Context, id int64) error

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, payload models.CreateUserPayload) (models.User, error)
	UpdateUser(ctx context.Context, id int64, payload models.UpdateUserPayload) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	LaporanPendapatan(ctx context.Context, startDate, endDate string) (models.LaporanResponse, error)
	ExportLaporan(ctx context.Context, startDate, endDate string) (json.RawMessage, error)
	Dashboard(ctx context.Context) (models.DashboardData, error)
	StokDetail(ctx context.Context) (json.RawMessage, error)
}

// GudangService covers the warehouse: materials, deliveries, shipments,
// stock, stock requests and categories.
type GudangService interface {
	ListBahan(ctx context.Context) ([]models.Bahan, error)
	GetBahan(ctx context.Context, id int64) (models.Bahan, error)
	CreateBahan(ctx context.Context, payload models.CreateBahanPayload) (models.Bahan, error)
	UpdateBahan(ctx context.Context, id int64, payload models.UpdateBahanPayload) (models.Bahan, error)
	DeleteBahan(ctx context.Context, id int64) error

	ListBarangMasuk(ctx context.Context) ([]models.BarangMasuk, error)
	GetBarangMasuk(ctx context.Context, id int64) (models.BarangMasuk, error)
	CreateBarangMasuk(ctx context.Context, payload models.CreateBarangMasukPayload) (models.BarangMasuk, error)
	UpdateBarangMasuk(ctx context.Context, id int64, payload models.UpdateBarangMasukPayload) (models.BarangMasuk, error)
	DeleteBarangMasuk(ctx context.Context, id int64) error

	ListBarangKeluar(ctx context.Context) ([]models.BarangKeluar, error)
	GetBarangKeluar(ctx context.Context, id int64) (models.BarangKeluar, error)

	Stok(ctx context.Context) ([]models.StokGudang, error)

	ListPermintaanStok(ctx context.Context) ([]models.PermintaanStok, error)
	GetPermintaanStok(ctx context.Context, id int64) (models.PermintaanStok, error)
	UpdatePermintaanStok(ctx context.Context, id int64, payload models.UpdatePermintaanStokPayload) (models.PermintaanStok, error)
	UpdatePermintaanStokStatus(ctx context.Context, id int64, payload models.UpdatePermintaanStokPayload) (models.PermintaanStok, error)

	ListKategori(ctx context.Context) ([]models.Kategori, error)
	CreateKategori(ctx context.Context, payload models.CreateKategoriPayload) (models.Kategori, error)
	UpdateKategori(ctx context.Context, id int64, payload models.UpdateKategoriPayload) (models.Kategori, error)
	DeleteKategori(ctx context.Context, id int64) error
}

// KaryawanService covers the cashier: products, sales, stock requests and
// receiving shipments.
type KaryawanService interface {
	ListProduk(ctx context.Context) ([]models.Product, error)
	GetProduk(ctx context.Context, id int64) (models.Product, error)
	ListKategori(ctx context.Context) ([]models.Kategori, error)
	CreateProduk(ctx context.Context, payload models.CreateProductPayload) (models.Product, error)
	UpdateProduk(ctx context.Context, id int64, payload models.UpdateProductPayload) (models.Product, error)
	DeleteProduk(ctx context.Context, id int64) error

	ListTransaksi(ctx context.Context) ([]models.Transaksi, error)
	GetTransaksi(ctx context.Context, id int64) (models.Transaksi, error)
	CreateTransaksi(ctx context.Context, payload models.CreateTransaksiPayload) (models.Transaksi, error)
	UpdateTransaksi(ctx context.Context, id int64, payload models.UpdateTransaksiPayload) (models.Transaksi, error)
	DeleteTransaksi(ctx context.Context, id int64) error

	ListPermintaanStok(ctx context.Context) ([]models.PermintaanStok, error)
	GetPermintaanStok(ctx context.Context, id int64) (models.PermintaanStok, error)
	CreatePermintaanStok(ctx context.Context, payload models.CreatePermintaanStokPayload) (models.PermintaanStok, error)
	UpdatePermintaanStok(ctx context.Context, id int64, payload models.UpdatePermintaanStokKaryawanPayload) (models.PermintaanStok, error)
	DeletePermintaanStok(ctx context.Context, id int64) error

	StokOutlet(ctx context.Context) ([]models.StokOutletItem, error)
	BahanGudang(ctx context.Context) ([]models.BahanGudang, error)

	// TerimaBarangKeluar confirms receipt of a shipment. With a photo the
	// request is multipart; without one it is a bodiless JSON POST.
	TerimaBarangKeluar(ctx context.Context, id int64, photo *models.FileAsset) (models.TerimaBarangKeluarResponse, error)
}

// AppInfoService reports what the running client is and where it talks to.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
	BackendURL(ctx context.Context) string
	Platform(ctx context.Context) string
}
