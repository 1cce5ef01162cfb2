// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// LaporanPendapatan is the revenue of a single day.
type LaporanPendapatan struct {
	Tanggal         string          `json:"tanggal"`
	TotalPendapatan decimal.Decimal `json:"total_pendapatan"`
	JumlahTransaksi int             `json:"jumlah_transaksi"`
}

// LaporanResponse is returned by GET /laporan/pendapatan.
type LaporanResponse struct {
	Data            []LaporanPendapatan `json:"data"`
	TotalPendapatan decimal.Decimal     `json:"total_pendapatan"`
	TotalTransaksi  int                 `json:"total_transaksi"`
}

// DashboardData is the owner dashboard summary.
type DashboardData struct {
	TotalOutlet       int             `json:"total_outlet"`
	TotalKaryawan     int             `json:"total_karyawan"`
	PendapatanHariIni decimal.Decimal `json:"pendapatan_hari_ini"`
	StokKritisGudang  int             `json:"stok_kritis_gudang"`
}
