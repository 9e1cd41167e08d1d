// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCtxKeyNames(t *testing.T) {
	if OperatorCtxKey.String() != "operator" {
		t.Errorf("expected 'operator', got '%s'", OperatorCtxKey.String())
	}
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetOperatorFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, "tui")

	operator, ok := GetOperatorFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if operator != "tui" {
		t.Errorf("expected operator=tui, got %s", operator)
	}
}

func TestGetOperatorFromContext_Missing(t *testing.T) {
	operator, ok := GetOperatorFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key, got true")
	}
	if operator != "" {
		t.Errorf("expected empty operator, got %s", operator)
	}
}

func TestGetOperatorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperatorCtxKey, 42)

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type, got true")
	}
}

func TestGetOperatorFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("operator2"), "tui")

	if _, ok := GetOperatorFromContext(ctx); ok {
		t.Error("expected ok=false for a different key, got true")
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "0190-trace")

	traceID, ok := GetTraceIDFromContext(ctx)
	if !ok || traceID != "0190-trace" {
		t.Errorf("expected trace id 0190-trace, got %q (ok=%v)", traceID, ok)
	}

	if _, ok = GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing trace id")
	}
}
