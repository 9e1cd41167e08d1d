// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// authService signs and verifies HS256 bearer tokens for the daemon API.
// The daemon and its clients share the sign key and issuer through
// configuration; no user records are involved.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. tokenDuration only matters to
// callers of CreateToken; the daemon passes zero.
func NewAuthService(tokenSignKey, tokenIssuer string, tokenDuration time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  tokenSignKey,
		tokenIssuer:   tokenIssuer,
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed token whose subject is operator.
func (a *authService) CreateToken(ctx context.Context, operator string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, operator, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates signature, issuer and expiry of tokenString. Any
// failure is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
