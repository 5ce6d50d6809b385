// SPDX-License-Identifier: GPL-2.0-or-later
/*
 * Copyright (C) 2018-2025 SCANOSS.COM
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 2 of the License, or
 * (at your option) any later version.
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package spdx

import (
	"time"
)

// Default document constants.
const (
	DefaultSpecVersion        = "SPDX-2.0"
	DefaultLicenseListVersion = "1.19"
	DefaultDataLicense        = "CC0-1.0"
	DefaultDocumentID         = "SPDXRef-DOCUMENT"
	DefaultDocumentName       = "SPDX-Tools-v2.0"
	DefaultCreationComment    = "This SPDX report has been automatically generated"
	DefaultDocumentComment    = "This document was automatically generated with SCANOSS."
	DefaultPackageDescription = "Detected by SCANOSS Inventorying Engine."
	DefaultToolCreator        = "Tool: SCANOSS Inventory Engine"
	DefaultOrgCreator         = "Organization: http://scanoss.com"

	// DatestampLayout matches strftime's "%FT%T%z".
	DatestampLayout = "2006-01-02T15:04:05-0700"
)

// Config holds the fixed text emitted around the component entries.
type Config struct {
	SpecVersion        string
	Creators           []string
	CreationComment    string
	LicenseListVersion string
	SPDXVersion        string
	DataLicense        string
	DocumentID         string
	DocumentName       string
	DocumentComment    string
	PackageDescription string
}

// DefaultConfig returns the SCANOSS document defaults.
func DefaultConfig() Config {
	return Config{
		SpecVersion:        DefaultSpecVersion,
		Creators:           []string{DefaultToolCreator, DefaultOrgCreator},
		CreationComment:    DefaultCreationComment,
		LicenseListVersion: DefaultLicenseListVersion,
		SPDXVersion:        DefaultSpecVersion,
		DataLicense:        DefaultDataLicense,
		DocumentID:         DefaultDocumentID,
		DocumentName:       DefaultDocumentName,
		DocumentComment:    DefaultDocumentComment,
		PackageDescription: DefaultPackageDescription,
	}
}

// withDefaults fills any empty field from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SpecVersion == "" {
		c.SpecVersion = d.SpecVersion
	}
	if len(c.Creators) == 0 {
		c.Creators = d.Creators
	}
	if c.CreationComment == "" {
		c.CreationComment = d.CreationComment
	}
	if c.LicenseListVersion == "" {
		c.LicenseListVersion = d.LicenseListVersion
	}
	if c.SPDXVersion == "" {
		c.SPDXVersion = d.SPDXVersion
	}
	if c.DataLicense == "" {
		c.DataLicense = d.DataLicense
	}
	if c.DocumentID == "" {
		c.DocumentID = d.DocumentID
	}
	if c.DocumentName == "" {
		c.DocumentName = d.DocumentName
	}
	if c.DocumentComment == "" {
		c.DocumentComment = d.DocumentComment
	}
	if c.PackageDescription == "" {
		c.PackageDescription = d.PackageDescription
	}
	return c
}

// Timestamper supplies the document creation date.
type Timestamper func() string

// Datestamp returns the current local time in DatestampLayout.
func Datestamp() string {
	return time.Now().Format(DatestampLayout)
}
