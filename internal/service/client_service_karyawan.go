// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/models"
)

// defaultProductCategory is sent when a product is created without one.
const defaultProductCategory = "Minuman"

type karyawanService struct {
	resourceClient
}

// NewKaryawanService returns the [KaryawanService] over res.
func NewKaryawanService(res resourceClient) KaryawanService {
	return &karyawanService{resourceClient: res}
}

func (k *karyawanService) ListProduk(ctx context.Context) ([]models.Product, error) {
	return getResource[[]models.Product](ctx, k.resourceClient, "/produk")
}

func (k *karyawanService) GetProduk(ctx context.Context, id int64) (models.Product, error) {
	return getResource[models.Product](ctx, k.resourceClient, fmt.Sprintf("/produk/%d", id))
}

func (k *karyawanService) ListKategori(ctx context.Context) ([]models.Kategori, error) {
	return getResource[[]models.Kategori](ctx, k.resourceClient, "/kategori")
}

func (k *karyawanService) CreateProduk(ctx context.Context, payload models.CreateProductPayload) (models.Product, error) {
	category := payload.Category
	if category == "" {
		category = defaultProductCategory
	}

	form := adapter.NewFormData().
		Append("nama", payload.Nama).
		Append("harga", payload.Harga.String()).
		Append("category", category).
		Append("kategori_id", strconv.FormatInt(payload.KategoriID, 10))
	appendKomposisi(form, payload.Komposisi)
	form.AppendFile("gambar", adapter.PrepareImageFile(payload.Gambar))

	return sendForm[models.Product](ctx, k.resourceClient, "/produk", payload, form)
}

func (k *karyawanService) UpdateProduk(ctx context.Context, id int64, payload models.UpdateProductPayload) (models.Product, error) {
	form := adapter.NewFormData().Append("_method", http.MethodPut)
	if payload.Nama != "" {
		form.Append("nama", payload.Nama)
	}
	if payload.Harga != nil {
		form.Append("harga", payload.Harga.String())
	}
	if payload.Category != "" {
		form.Append("category", payload.Category)
	}
	if payload.KategoriID != 0 {
		form.Append("kategori_id", strconv.FormatInt(payload.KategoriID, 10))
	}
	appendKomposisi(form, payload.Komposisi)
	form.AppendFile("gambar", adapter.PrepareImageFile(payload.Gambar))

	return sendForm[models.Product](ctx, k.resourceClient, fmt.Sprintf("/produk/%d", id), payload, form)
}

func (k *karyawanService) DeleteProduk(ctx context.Context, id int64) error {
	return deleteResource(ctx, k.resourceClient, fmt.Sprintf("/produk/%d", id))
}

func (k *karyawanService) ListTransaksi(ctx context.Context) ([]models.Transaksi, error) {
	return getResource[[]models.Transaksi](ctx, k.resourceClient, "/transaksi")
}

func (k *karyawanService) GetTransaksi(ctx context.Context, id int64) (models.Transaksi, error) {
	return getResource[models.Transaksi](ctx, k.resourceClient, fmt.Sprintf("/transaksi/%d", id))
}

func (k *karyawanService) CreateTransaksi(ctx context.Context, payload models.CreateTransaksiPayload) (models.Transaksi, error) {
	items, err := json.Marshal(payload.Items)
	if err != nil {
		return models.Transaksi{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	form := adapter.NewFormData().
		Append("tanggal", payload.Tanggal).
		Append("metode_bayar", string(payload.MetodeBayar)).
		Append("items", string(items))
	form.AppendFile("bukti_qris", adapter.PrepareImageFile(payload.BuktiQRIS))

	return sendForm[models.Transaksi](ctx, k.resourceClient, "/transaksi", payload, form)
}

func (k *karyawanService) UpdateTransaksi(ctx context.Context, id int64, payload models.UpdateTransaksiPayload) (models.Transaksi, error) {
	form := adapter.NewFormData().Append("_method", http.MethodPut)
	if payload.Tanggal != "" {
		form.Append("tanggal", payload.Tanggal)
	}
	if payload.MetodeBayar != "" {
		form.Append("metode_bayar", string(payload.MetodeBayar))
	}
	if len(payload.Items) > 0 {
		items, err := json.Marshal(payload.Items)
		if err != nil {
			return models.Transaksi{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		form.Append("items", string(items))
	}
	form.AppendFile("bukti_qris", adapter.PrepareImageFile(payload.BuktiQRIS))

	return sendForm[models.Transaksi](ctx, k.resourceClient, fmt.Sprintf("/transaksi/%d", id), payload, form)
}

func (k *karyawanService) DeleteTransaksi(ctx context.Context, id int64) error {
	return deleteResource(ctx, k.resourceClient, fmt.Sprintf("/transaksi/%d", id))
}

func (k *karyawanService) ListPermintaanStok(ctx context.Context) ([]models.PermintaanStok, error) {
	return getResource[[]models.PermintaanStok](ctx, k.resourceClient, "/permintaan-stok")
}

func (k *karyawanService) GetPermintaanStok(ctx context.Context, id int64) (models.PermintaanStok, error) {
	return getResource[models.PermintaanStok](ctx, k.resourceClient, fmt.Sprintf("/permintaan-stok/%d", id))
}

func (k *karyawanService) CreatePermintaanStok(ctx context.Context, payload models.CreatePermintaanStokPayload) (models.PermintaanStok, error) {
	return sendResource[models.PermintaanStok](ctx, k.resourceClient, http.MethodPost, "/permintaan-stok", payload)
}

func (k *karyawanService) UpdatePermintaanStok(ctx context.Context, id int64, payload models.UpdatePermintaanStokKaryawanPayload) (models.PermintaanStok, error) {
	return sendResource[models.PermintaanStok](ctx, k.resourceClient, http.MethodPut, fmt.Sprintf("/permintaan-stok/%d", id), payload)
}

func (k *karyawanService) DeletePermintaanStok(ctx context.Context, id int64) error {
	return deleteResource(ctx, k.resourceClient, fmt.Sprintf("/permintaan-stok/%d", id))
}

func (k *karyawanService) StokOutlet(ctx context.Context) ([]models.StokOutletItem, error) {
	return getResource[[]models.StokOutletItem](ctx, k.resourceClient, "/stok/outlet")
}

func (k *karyawanService) BahanGudang(ctx context.Context) ([]models.BahanGudang, error) {
	return getResource[[]models.BahanGudang](ctx, k.resourceClient, "/bahan-gudang")
}

func (k *karyawanService) TerimaBarangKeluar(ctx context.Context, id int64, photo *models.FileAsset) (models.TerimaBarangKeluarResponse, error) {
	endpoint := fmt.Sprintf("/barang-keluar/%d/terima", id)
	if photo == nil {
		return adapter.Request[models.TerimaBarangKeluarResponse](ctx, k.gw, endpoint, adapter.RequestOptions{Method: http.MethodPost})
	}

	form := adapter.NewFormData().AppendFile("bukti_foto", adapter.PrepareImageFile(photo))
	return sendForm[models.TerimaBarangKeluarResponse](ctx, k.resourceClient, endpoint, photo, form)
}

// appendKomposisi adds the recipe lines as komposisi[i][bahan_id] and
// komposisi[i][quantity].
func appendKomposisi(form *adapter.FormData, lines []models.Komposisi) {
	for i, line := range lines {
		form.Append(fmt.Sprintf("komposisi[%d][bahan_id]", i), strconv.FormatInt(line.BahanID, 10))
		form.Append(fmt.Sprintf("komposisi[%d][quantity]", i), strconv.FormatFloat(line.Quantity, 'f', -1, 64))
	}
}
