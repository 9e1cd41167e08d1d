// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser turns the spinner-decorated terminal output of the nordvpn
// CLI into typed records.
//
// Every function here is pure: raw bytes go through [Normalize] first, and the
// resulting plain text is handed to one extractor per command type. Parsing
// is deliberately permissive for status output (unknown lines and fields are
// dropped) because the wrapped tool's output format is not a stable contract.
package parser
