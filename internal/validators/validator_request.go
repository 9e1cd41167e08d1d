// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

const (
	FieldLocation  = "location"
	FieldOperation = "operation"
	FieldLimit     = "limit"
)

// MaxLocationLength bounds a location argument. The longest names the CLI
// reports are well under this.
const MaxLocationLength = 64

// MaxHistoryLimit matches the largest page the history repository serves.
const MaxHistoryLimit = 500

var allowedOperations = []string{
	models.OperationLogin,
	models.OperationLogout,
	models.OperationConnect,
	models.OperationDisconnect,
}

type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the value type. A bare string is treated as a
// location (a country or city name taken from a path segment).
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return validateLocation(value)

	case models.ConnectRequest:
		return v.validateConnectRequest(ctx, value, fields...)
	case *models.ConnectRequest:
		return v.validateConnectRequest(ctx, *value, fields...)

	case models.HistoryFilter:
		return v.validateHistoryFilter(ctx, value, fields...)
	case *models.HistoryFilter:
		return v.validateHistoryFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateConnectRequest(_ context.Context, req models.ConnectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldLocation:
			// empty means "let the CLI pick"
			if req.Location == "" {
				continue
			}
			if err := validateLocation(req.Location); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateHistoryFilter(_ context.Context, filter models.HistoryFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOperation, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldOperation:
			if filter.Operation != "" && !isAllowedOperation(filter.Operation) {
				return fmt.Errorf("%w: %q", ErrInvalidOperation, filter.Operation)
			}
		case FieldLimit:
			if filter.Limit > MaxHistoryLimit {
				return fmt.Errorf("%w: %d exceeds %d", ErrInvalidLimit, filter.Limit, MaxHistoryLimit)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateLocation rejects values the CLI would read as a flag or that
// carry control characters.
func validateLocation(location string) error {
	trimmed := strings.TrimSpace(location)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: empty", ErrInvalidLocation)
	case !utf8.ValidString(location):
		return fmt.Errorf("%w: not valid utf-8", ErrInvalidLocation)
	case len(location) > MaxLocationLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidLocation, MaxLocationLength)
	case strings.HasPrefix(trimmed, "-"):
		return fmt.Errorf("%w: must not start with '-'", ErrInvalidLocation)
	}

	for _, r := range location {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: contains control characters", ErrInvalidLocation)
		}
	}

	return nil
}

func isAllowedOperation(op string) bool {
	for _, allowed := range allowedOperations {
		if op == allowed {
			return true
		}
	}
	return false
}
