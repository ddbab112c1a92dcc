// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/levelup-fitness/models"
)

// renderBuildInfoSection lists the client build metadata next to the
// version the server reported, for the about block on the settings page.
func renderBuildInfoSection(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application     Level-Up Fitness\n")
	b.WriteString("Client version  ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Build date      ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Build commit    ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("Server version  ")
	b.WriteString(valueOrNA(serverVersion))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
