// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLocation  = errors.New("invalid location")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidLimit     = errors.New("invalid limit")
)
