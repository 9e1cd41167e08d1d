// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request values before they reach the session.
//
// A [Validator] accepts any supported value and, optionally, the names of the
// fields to check. With no field names every rule for that type runs.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
