// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-journal-client/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService wraps the linker-injected build metadata.
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo}
}

func (s *appInfoService) GetBuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
