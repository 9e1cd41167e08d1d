// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request with the caller's X-Trace-ID, or a fresh
// one, and echoes it back. Every later log line of the request carries it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(traceIDHeader, traceID)

		requestLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)

		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(ctx)))
	})
}
