// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable is shown for build fields the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the version stamp of the client binary, set through
// -ldflags at release time.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns the stamp for the given linker values.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// String renders the stamp on one line for the splash screen and logs.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("pos-client %s (commit %s, built %s)",
		orNotAvailable(a.buildVersion), a.BuildCommit(), a.BuildDate())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
