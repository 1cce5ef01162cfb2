// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/mock"
	"github.com/esteh-pos/pos-client/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newKaryawanService(t *testing.T) (KaryawanService, *mock.MockGateway) {
	t.Helper()
	gw := mock.NewMockGateway(gomock.NewController(t))
	return NewKaryawanService(newTestResource(gw)), gw
}

// formValues flattens the plain parts of form in order.
func formValues(form *adapter.FormData) [][2]string {
	var out [][2]string
	for _, p := range form.Parts() {
		if !p.IsFile() {
			out = append(out, [2]string{p.Name, p.Value})
		}
	}
	return out
}

func TestKaryawan_CreateProdukBuildsForm(t *testing.T) {
	svc, gw := newKaryawanService(t)
	ctx := context.Background()

	var sent *adapter.FormData
	gw.EXPECT().DoForm(ctx, "/produk", gomock.Any(), http.MethodPost).
		DoAndReturn(func(_ context.Context, _ string, form *adapter.FormData, _ string) (json.RawMessage, error) {
			sent = form
			return json.RawMessage(`{"id":11,"nama":"Es Teh Manis","harga":"5000.5"}`), nil
		})

	product, err := svc.CreateProduk(ctx, models.CreateProductPayload{
		Nama:       "Es Teh Manis",
		Harga:      decimal.RequireFromString("5000.5"),
		KategoriID: 2,
		Komposisi: []models.Komposisi{
			{BahanID: 3, Quantity: 0.25},
			{BahanID: 4, Quantity: 10},
		},
		Gambar: &models.FileAsset{URI: "file:///tmp/picked/teh.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)

	require.NotNil(t, sent)
	assert.Equal(t, [][2]string{
		{"nama", "Es Teh Manis"},
		{"harga", "5000.5"},
		{"category", "Minuman"},
		{"kategori_id", "2"},
		{"komposisi[0][bahan_id]", "3"},
		{"komposisi[0][quantity]", "0.25"},
		{"komposisi[1][bahan_id]", "4"},
		{"komposisi[1][quantity]", "10"},
	}, formValues(sent))

	parts := sent.Parts()
	image := parts[len(parts)-1]
	require.True(t, image.IsFile())
	assert.Equal(t, "gambar", image.Name)
	assert.Equal(t, "teh.png", image.FileName)
	assert.Equal(t, "image/png", image.ContentType)
	assert.Equal(t, "/tmp/picked/teh.png", image.File.Path)
}

func TestKaryawan_CreateProdukValidatesBeforeSending(t *testing.T) {
	svc, _ := newKaryawanService(t)

	_, err := svc.CreateProduk(context.Background(), models.CreateProductPayload{
		Nama:       "Gratis",
		Harga:      decimal.Zero,
		KategoriID: 1,
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestKaryawan_UpdateProdukUsesMethodOverride(t *testing.T) {
	svc, gw := newKaryawanService(t)
	ctx := context.Background()
	price := decimal.NewFromInt(7000)

	gw.EXPECT().DoForm(ctx, "/produk/11", gomock.Any(), http.MethodPost).
		DoAndReturn(func(_ context.Context, _ string, form *adapter.FormData, _ string) (json.RawMessage, error) {
			assert.Equal(t, [][2]string{
				{"_method", "PUT"},
				{"harga", "7000"},
			}, formValues(form))
			return json.RawMessage(`{"id":11,"nama":"Es Teh Manis","harga":7000}`), nil
		})

	_, err := svc.UpdateProduk(ctx, 11, models.UpdateProductPayload{Harga: &price})
	require.NoError(t, err)
}

func TestKaryawan_CreateTransaksiEncodesItems(t *testing.T) {
	svc, gw := newKaryawanService(t)
	ctx := context.Background()

	gw.EXPECT().DoForm(ctx, "/transaksi", gomock.Any(), http.MethodPost).
		DoAndReturn(func(_ context.Context, _ string, form *adapter.FormData, _ string) (json.RawMessage, error) {
			items, ok := form.Get("items")
			require.True(t, ok)
			assert.JSONEq(t, `[{"produk_id":11,"quantity":2}]`, items)

			method, _ := form.Get("metode_bayar")
			assert.Equal(t, "tunai", method)
			return json.RawMessage(`{"id":100,"total":10000,"metode_bayar":"tunai"}`), nil
		})

	trx, err := svc.CreateTransaksi(ctx, models.CreateTransaksiPayload{
		Tanggal:     "2026-10-19",
		MetodeBayar: models.PaymentTunai,
		Items:       []models.TransaksiItemPayload{{ProdukID: 11, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), trx.ID)
}

func TestKaryawan_CreateTransaksiRequiresItems(t *testing.T) {
	svc, _ := newKaryawanService(t)

	_, err := svc.CreateTransaksi(context.Background(), models.CreateTransaksiPayload{
		Tanggal:     "2026-10-19",
		MetodeBayar: models.PaymentQRIS,
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestKaryawan_UpdateTransaksiUsesMethodOverride(t *testing.T) {
	svc, gw := newKaryawanService(t)
	ctx := context.Background()

	gw.EXPECT().DoForm(ctx, "/transaksi/100", gomock.Any(), http.MethodPost).
		DoAndReturn(func(_ context.Context, _ string, form *adapter.FormData, _ string) (json.RawMessage, error) {
			override, _ := form.Get("_method")
			assert.Equal(t, "PUT", override)
			_, hasItems := form.Get("items")
			assert.False(t, hasItems)
			return json.RawMessage(`{"id":100}`), nil
		})

	_, err := svc.UpdateTransaksi(ctx, 100, models.UpdateTransaksiPayload{MetodeBayar: models.PaymentQRIS})
	require.NoError(t, err)
}

func TestKaryawan_TerimaBarangKeluar(t *testing.T) {
	t.Run("without photo", func(t *testing.T) {
		svc, gw := newKaryawanService(t)
		ctx := context.Background()

		gw.EXPECT().Do(ctx, "/barang-keluar/5/terima", adapter.RequestOptions{Method: http.MethodPost}).
			Return(json.RawMessage(`{"message":"Barang diterima"}`), nil)

		resp, err := svc.TerimaBarangKeluar(ctx, 5, nil)

		require.NoError(t, err)
		assert.Equal(t, "Barang diterima", resp.Message)
	})

	t.Run("with photo", func(t *testing.T) {
		svc, gw := newKaryawanService(t)
		ctx := context.Background()

		gw.EXPECT().DoForm(ctx, "/barang-keluar/5/terima", gomock.Any(), http.MethodPost).
			DoAndReturn(func(_ context.Context, _ string, form *adapter.FormData, _ string) (json.RawMessage, error) {
				parts := form.Parts()
				require.Len(t, parts, 1)
				assert.Equal(t, "bukti_foto", parts[0].Name)
				assert.Equal(t, "image/jpeg", parts[0].ContentType)
				return json.RawMessage(`{"message":"Barang diterima","barang_keluar":{"id":5,"status":"received"}}`), nil
			})

		resp, err := svc.TerimaBarangKeluar(ctx, 5, &models.FileAsset{URI: "/tmp/bukti.jpg"})

		require.NoError(t, err)
		require.NotNil(t, resp.BarangKeluar)
		assert.Equal(t, models.ShipmentReceived, resp.BarangKeluar.Status)
	})
}

func TestKaryawan_ListProdukShapeMismatch(t *testing.T) {
	svc, gw := newKaryawanService(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, "/produk", gomock.Any()).Return(json.RawMessage(`{"data":[]}`), nil)
	gw.EXPECT().URL("/produk").Return("http://localhost/api/produk")

	_, err := svc.ListProduk(ctx)

	require.ErrorIs(t, err, adapter.ErrInvalidJSON)
	assert.Contains(t, err.Error(), "http://localhost/api/produk")
}
