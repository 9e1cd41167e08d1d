// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrLocationNotFound is returned by Catalog.ResolveCountry when no country
// lists the city.
var ErrLocationNotFound = errors.New("location not found")

// Catalog answers location questions from live CLI listings. It keeps
// nothing between calls.
type Catalog struct {
	session VPNService
}

func NewCatalog(session VPNService) *Catalog {
	return &Catalog{session: session}
}

// ResolveCountry returns the country whose city list contains city. A
// country name resolves to itself. Countries are scanned in CLI order, so
// the cost is one listing per country until the city is found.
func (c *Catalog) ResolveCountry(ctx context.Context, city string) (string, error) {
	countries, err := c.session.GetCountries(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve country: %w", err)
	}

	if slices.Contains(countries, city) {
		return city, nil
	}

	for _, country := range countries {
		cities, err := c.session.GetCities(ctx, country)
		if err != nil {
			return "", fmt.Errorf("resolve country: %w", err)
		}
		if slices.Contains(cities, city) {
			return country, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrLocationNotFound, city)
}
