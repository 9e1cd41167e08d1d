// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Normalize decodes raw command output and removes every carriage return.
//
// The wrapped CLI redraws a progress spinner with "\r", so raw output looks
// like "\r-\r  \r\r-\r\\\r|\rStatus: Connected". Searching that text directly
// would match spinner glyphs interleaved with content.
func Normalize(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: %w", ErrParseFailure, ErrInvalidEncoding)
	}

	return strings.ReplaceAll(string(raw), "\r", ""), nil
}
