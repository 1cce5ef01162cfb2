// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/esteh-pos/pos-client/models"
)

type ownerService struct {
	resourceClient
}

// NewOwnerService returns the [OwnerService] over res.
func NewOwnerService(res resourceClient) OwnerService {
	return &ownerService{resourceClient: res}
}

func (o *ownerService) ListOutlets(ctx context.Context) ([]models.Outlet, error) {
	return getResource[[]models.Outlet](ctx, o.resourceClient, "/outlets")
}

func (o *ownerService) GetOutlet(ctx context.Context, id int64) (models.Outlet, error) {
	return getResource[models.Outlet](ctx, o.resourceClient, fmt.Sprintf("/outlets/%d", id))
}

func (o *ownerService) CreateOutlet(ctx context.Context, payload models.CreateOutletPayload) (models.Outlet, error) {
	return sendResource[models.Outlet](ctx, o.resourceClient, http.MethodPost, "/outlets", payload)
}

func (o *ownerService) UpdateOutlet(ctx context.Context, id int64, payload models.UpdateOutletPayload) (models.Outlet, error) {
	return sendResource[models.Outlet](ctx, o.resourceClient, http.MethodPut, fmt.Sprintf("/outlets/%d", id), payload)
}

func (o *ownerService) DeleteOutlet(ctx context.Context, id int64) error {
	return deleteResource(ctx, o.resourceClient, fmt.Sprintf("/outlets/%d", id))
}

func (o *ownerService) ListUsers(ctx context.Context) ([]models.User, error) {
	return getResource[[]models.User](ctx, o.resourceClient, "/users")
}

func (o *ownerService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return getResource[models.User](ctx, o.resourceClient, fmt.Sprintf("/users/%d", id))
}

func (o *ownerService) CreateUser(ctx context.Context, payload models.CreateUserPayload) (models.User, error) {
	return sendResource[models.User](ctx, o.resourceClient, http.MethodPost, "/users", payload)
}

func (o *ownerService) UpdateUser(ctx context.Context, id int64, payload models.UpdateUserPayload) (models.User, error) {
	return sendResource[models.User](ctx, o.resourceClient, http.MethodPut, fmt.Sprintf("/users/%d", id), payload)
}

func (o *ownerService) DeleteUser(ctx context.Context, id int64) error {
	return deleteResource(ctx, o.resourceClient, fmt.Sprintf("/users/%d", id))
}

func (o *ownerService) LaporanPendapatan(ctx context.Context, startDate, endDate string) (models.LaporanResponse, error) {
	query, err := dateRangeQuery(startDate, endDate)
	if err != nil {
		return models.LaporanResponse{}, err
	}
	return getResource[models.LaporanResponse](ctx, o.resourceClient, "/laporan/pendapatan?"+query)
}

func (o *ownerService) ExportLaporan(ctx context.Context, startDate, endDate string) (json.RawMessage, error) {
	query, err := dateRangeQuery(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return rawResource(ctx, o.resourceClient, "/laporan/export?"+query)
}

func (o *ownerService) Dashboard(ctx context.Context) (models.DashboardData, error) {
	return getResource[models.DashboardData](ctx, o.resourceClient, "/dashboard")
}

func (o *ownerService) StokDetail(ctx context.Context) (json.RawMessage, error) {
	return rawResource(ctx, o.resourceClient, "/stok-detail")
}

// dateRangeQuery encodes start_date and end_date, both YYYY-MM-DD.
func dateRangeQuery(startDate, endDate string) (string, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return "", fmt.Errorf("%w: start date %q", ErrInvalidDateRange, startDate)
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return "", fmt.Errorf("%w: end date %q", ErrInvalidDateRange, endDate)
	}
	if end.Before(start) {
		return "", fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, endDate, startDate)
	}

	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	return q.Encode(), nil
}
