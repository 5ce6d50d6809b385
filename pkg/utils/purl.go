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

package utils

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// PurlReq is a purl name with its version requirement, as queried from the knowledge base.
type PurlReq struct {
	Purl    string
	Version string
}

// ProjectPurl builds the download locator for a purl type, purl name and version.
func ProjectPurl(purlType, purlName, version string) string {
	namespace, name := "", purlName
	if i := strings.LastIndex(purlName, "/"); i >= 0 {
		namespace, name = purlName[:i], purlName[i+1:]
	}
	return packageurl.NewPackageURL(purlType, namespace, name, version, nil, "").ToString()
}
