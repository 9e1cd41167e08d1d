// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
	"github.com/MKhiriev/go-vpn-pilot/models"
	"github.com/go-resty/resty/v2"
)

type httpDaemonAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDaemonAdapter constructs the REST implementation of
// [DaemonAdapter] for the daemon at adapterCfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPDaemonAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (DaemonAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpDaemonAdapter{client: client, logger: logger}, nil
}

// SetToken implements [DaemonAdapter].
func (h *httpDaemonAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [DaemonAdapter].
func (h *httpDaemonAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [DaemonAdapter]. GET /api/version.
func (h *httpDaemonAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Session implements [DaemonAdapter]. GET /api/session.
func (h *httpDaemonAdapter) Session(ctx context.Context) (bool, error) {
	var body models.LoggedInResponse
	if err := h.get(ctx, "/api/session", &body); err != nil {
		return false, fmt.Errorf("session request: %w", err)
	}
	return body.LoggedIn, nil
}

// Account implements [DaemonAdapter]. GET /api/account.
func (h *httpDaemonAdapter) Account(ctx context.Context) (models.AccountInfo, error) {
	var info models.AccountInfo
	if err := h.get(ctx, "/api/account", &info); err != nil {
		return models.AccountInfo{}, fmt.Errorf("account request: %w", err)
	}
	return info, nil
}

// Status implements [DaemonAdapter]. GET /api/status.
func (h *httpDaemonAdapter) Status(ctx context.Context) (models.ConnectionStatus, error) {
	var status models.ConnectionStatus
	if err := h.get(ctx, "/api/status", &status); err != nil {
		return models.ConnectionStatus{}, fmt.Errorf("status request: %w", err)
	}
	return status, nil
}

// Countries implements [DaemonAdapter]. GET /api/countries.
func (h *httpDaemonAdapter) Countries(ctx context.Context) ([]string, error) {
	var list models.ListResponse
	if err := h.get(ctx, "/api/countries", &list); err != nil {
		return nil, fmt.Errorf("countries request: %w", err)
	}
	return nonNil(list.Items), nil
}

// Cities implements [DaemonAdapter]. GET /api/countries/{country}/cities;
// country is path-escaped.
func (h *httpDaemonAdapter) Cities(ctx context.Context, country string) ([]string, error) {
	var list models.ListResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("country", country).
		SetResult(&list).
		Get("/api/countries/{country}/cities")
	if err != nil {
		return nil, fmt.Errorf("cities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("cities request: %w", err)
	}

	return nonNil(list.Items), nil
}

// Login implements [DaemonAdapter]. POST /api/login.
func (h *httpDaemonAdapter) Login(ctx context.Context) (string, error) {
	return h.postOutput(ctx, "/api/login", nil)
}

// Logout implements [DaemonAdapter]. POST /api/logout.
func (h *httpDaemonAdapter) Logout(ctx context.Context) (string, error) {
	return h.postOutput(ctx, "/api/logout", nil)
}

// Connect implements [DaemonAdapter]. POST /api/connect with the location
// in the JSON body.
func (h *httpDaemonAdapter) Connect(ctx context.Context, location string) (string, error) {
	return h.postOutput(ctx, "/api/connect", models.ConnectRequest{Location: location})
}

// Disconnect implements [DaemonAdapter]. POST /api/disconnect.
func (h *httpDaemonAdapter) Disconnect(ctx context.Context) (string, error) {
	return h.postOutput(ctx, "/api/disconnect", nil)
}

// History implements [DaemonAdapter]. GET /api/history with optional
// operation and limit query parameters.
func (h *httpDaemonAdapter) History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	var page models.HistoryResponse

	req := h.authedRequest(ctx).SetResult(&page)
	if filter.Operation != "" {
		req.SetQueryParam("operation", filter.Operation)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := req.Get("/api/history")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}

	return page.Items, nil
}

func (h *httpDaemonAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpDaemonAdapter) postOutput(ctx context.Context, path string, body any) (string, error) {
	var out models.OutputResponse

	req := h.authedRequest(ctx).SetResult(&out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpDaemonAdapter.postOutput").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("daemon returned error")
		return "", err
	}

	return out.Output, nil
}

func (h *httpDaemonAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
