// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
)

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := NewAuthService("secret", "go-vpn-pilot", time.Hour, logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "tui")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "tui", parsed.Operator)
}

func TestAuthService_CreateToken_ZeroDuration(t *testing.T) {
	svc := NewAuthService("secret", "go-vpn-pilot", 0, logger.Nop())

	_, err := svc.CreateToken(context.Background(), "tui")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	issuer := NewAuthService("secret", "go-vpn-pilot", time.Hour, logger.Nop())
	token, err := issuer.CreateToken(context.Background(), "tui")
	require.NoError(t, err)

	tests := []struct {
		name   string
		verify AuthService
		token  string
	}{
		{"wrong key", NewAuthService("other", "go-vpn-pilot", 0, logger.Nop()), token.SignedString},
		{"wrong issuer", NewAuthService("secret", "someone-else", 0, logger.Nop()), token.SignedString},
		{"garbage", NewAuthService("secret", "go-vpn-pilot", 0, logger.Nop()), "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.verify.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
