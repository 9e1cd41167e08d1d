// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
	"github.com/MKhiriev/go-vpn-pilot/models"
	"github.com/go-chi/chi/v5"
)

// maxRequestBody bounds POST bodies; the only payload is a location name.
const maxRequestBody = 4 << 10

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	loggedIn := h.services.VPNService.IsLoggedIn(r.Context())
	h.writeJSON(w, r, "*Handler.getSession", models.LoggedInResponse{LoggedIn: loggedIn})
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	info, err := h.services.VPNService.CheckAccount(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAccount", err)
		return
	}
	h.writeJSON(w, r, "*Handler.getAccount", info)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.VPNService.GetStatus(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getStatus", err)
		return
	}
	h.writeJSON(w, r, "*Handler.getStatus", status)
}

func (h *Handler) getCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.services.VPNService.GetCountries(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getCountries", err)
		return
	}
	h.writeJSON(w, r, "*Handler.getCountries", models.ListResponse{Items: countries})
}

func (h *Handler) getCities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	country := chi.URLParam(r, "country")
	if err := h.validator.Validate(ctx, country); err != nil {
		writeError(w, r, "*Handler.getCities", err)
		return
	}

	cities, err := h.services.VPNService.GetCities(ctx, country)
	if err != nil {
		writeError(w, r, "*Handler.getCities", err)
		return
	}
	h.writeJSON(w, r, "*Handler.getCities", models.ListResponse{Items: cities})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	output, err := h.services.VPNService.Login(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}
	h.writeJSON(w, r, "*Handler.login", models.OutputResponse{Output: output})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	output, err := h.services.VPNService.Logout(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.logout", err)
		return
	}
	h.writeJSON(w, r, "*Handler.logout", models.OutputResponse{Output: output})
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ConnectRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.connect", err)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "*Handler.connect", err)
		return
	}

	output, err := h.services.VPNService.Connect(ctx, req.Location)
	if err != nil {
		writeError(w, r, "*Handler.connect", err)
		return
	}
	h.writeJSON(w, r, "*Handler.connect", models.OutputResponse{Output: output})
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	output, err := h.services.VPNService.Disconnect(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.disconnect", err)
		return
	}
	h.writeJSON(w, r, "*Handler.disconnect", models.OutputResponse{Output: output})
}

// decodeOptionalJSON decodes the request body into dst. An empty body leaves
// dst at its zero value.
func decodeOptionalJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, fn string, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error writing response")
	}
}
