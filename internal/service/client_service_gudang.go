// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/esteh-pos/pos-client/models"
)

type gudangService struct {
	resourceClient
}

// NewGudangService returns the [GudangService] over res.
func NewGudangService(res resourceClient) GudangService {
	return &gudangService{resourceClient: res}
}

func (g *gudangService) ListBahan(ctx context.Context) ([]models.Bahan, error) {
	return getResource[[]models.Bahan](ctx, g.resourceClient, "/gudang/bahan")
}

func (g *gudangService) GetBahan(ctx context.Context, id int64) (models.Bahan, error) {
	return getResource[models.Bahan](ctx, g.resourceClient, fmt.Sprintf("/gudang/bahan/%d", id))
}

func (g *gudangService) CreateBahan(ctx context.Context, payload models.CreateBahanPayload) (models.Bahan, error) {
	return sendResource[models.Bahan](ctx, g.resourceClient, http.MethodPost, "/gudang/bahan", payload)
}

func (g *gudangService) UpdateBahan(ctx context.Context, id int64, payload models.UpdateBahanPayload) (models.Bahan, error) {
	return sendResource[models.Bahan](ctx, g.resourceClient, http.MethodPut, fmt.Sprintf("/gudang/bahan/%d", id), payload)
}

func (g *gudangService) DeleteBahan(ctx context.Context, id int64) error {
	return deleteResource(ctx, g.resourceClient, fmt.Sprintf("/gudang/bahan/%d", id))
}

func (g *gudangService) ListBarangMasuk(ctx context.Context) ([]models.BarangMasuk, error) {
	return getResource[[]models.BarangMasuk](ctx, g.resourceClient, "/gudang/barang-masuk")
}

func (g *gudangService) GetBarangMasuk(ctx context.Context, id int64) (models.BarangMasuk, error) {
	return getResource[models.BarangMasuk](ctx, g.resourceClient, fmt.Sprintf("/gudang/barang-masuk/%d", id))
}

func (g *gudangService) CreateBarangMasuk(ctx context.Context, payload models.CreateBarangMasukPayload) (models.BarangMasuk, error) {
	return sendResource[models.BarangMasuk](ctx, g.resourceClient, http.MethodPost, "/gudang/barang-masuk", payload)
}

func (g *gudangService) UpdateBarangMasuk(ctx context.Context, id int64, payload models.UpdateBarangMasukPayload) (models.BarangMasuk, error) {
	return sendResource[models.BarangMasuk](ctx, g.resourceClient, http.MethodPut, fmt.Sprintf("/gudang/barang-masuk/%d", id), payload)
}

func (g *gudangService) DeleteBarangMasuk(ctx context.Context, id int64) error {
	return deleteResource(ctx, g.resourceClient, fmt.Sprintf("/gudang/barang-masuk/%d", id))
}

func (g *gudangService) ListBarangKeluar(ctx context.Context) ([]models.BarangKeluar, error) {
	return getResource[[]models.BarangKeluar](ctx, g.resourceClient, "/gudang/barang-keluar")
}

func (g *gudangService) GetBarangKeluar(ctx context.Context, id int64) (models.BarangKeluar, error) {
	return getResource[models.BarangKeluar](ctx, g.resourceClient, fmt.Sprintf("/gudang/barang-keluar/%d", id))
}

func (g *gudangService) Stok(ctx context.Context) ([]models.StokGudang, error) {
	return getResource[[]models.StokGudang](ctx, g.resourceClient, "/gudang/stok")
}

func (g *gudangService) ListPermintaanStok(ctx context.Context) ([]models.PermintaanStok, error) {
	return getResource[[]models.PermintaanStok](ctx, g.resourceClient, "/gudang/permintaan-stok")
}

func (g *gudangService) GetPermintaanStok(ctx context.Context, id int64) (models.PermintaanStok, error) {
	return getResource[models.PermintaanStok](ctx, g.resourceClient, fmt.Sprintf("/gudang/permintaan-stok/%d", id))
}

func (g *gudangService) UpdatePermintaanStok(ctx context.Context, id int64, payload models.UpdatePermintaanStokPayload) (models.PermintaanStok, error) {
	return sendResource[models.PermintaanStok](ctx, g.resourceClient, http.MethodPut, fmt.Sprintf("/gudang/permintaan-stok/%d", id), payload)
}

// UpdatePermintaanStokStatus goes through the cross-role endpoint shared
// with outlets.
func (g *gudangService) UpdatePermintaanStokStatus(ctx context.Context, id int64, payload models.UpdatePermintaanStokPayload) (models.PermintaanStok, error) {
	return sendResource[models.PermintaanStok](ctx, g.resourceClient, http.MethodPut, fmt.Sprintf("/permintaan-stok/%d", id), payload)
}

func (g *gudangService) ListKategori(ctx context.Context) ([]models.Kategori, error) {
	return getResource[[]models.Kategori](ctx, g.resourceClient, "/gudang/kategori")
}

func (g *gudangService) CreateKategori(ctx context.Context, payload models.CreateKategoriPayload) (models.Kategori, error) {
	return sendResource[models.Kategori](ctx, g.resourceClient, http.MethodPost, "/gudang/kategori", payload)
}

func (g *gudangService) UpdateKategori(ctx context.Context, id int64, payload models.UpdateKategoriPayload) (models.Kategori, error) {
	return sendResource[models.Kategori](ctx, g.resourceClient, http.MethodPut, fmt.Sprintf("/gudang/kategori/%d", id), payload)
}

func (g *gudangService) DeleteKategori(ctx context.Context, id int64) error {
	return deleteResource(ctx, g.resourceClient, fmt.Sprintf("/gudang/kategori/%d", id))
}
