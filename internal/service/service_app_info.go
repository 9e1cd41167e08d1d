// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
)

// appInfoService reports the version fixed when the daemon started.
type appInfoService struct {
	version string
}

// NewAppInfoService rejects a blank version; the daemon must always be able
// to answer GET /api/version.
func NewAppInfoService(version string) (AppInfoService, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return appInfoService{version: version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
