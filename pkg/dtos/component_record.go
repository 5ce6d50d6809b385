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

package dtos

// ComponentRecord is one detected component as resolved by the inventory engine.
type ComponentRecord struct {
	Name          string `json:"component"`      // Component identifier
	Version       string `json:"version"`        // Detected version
	LatestVersion string `json:"latest_version"` // Newest known version
	Vendor        string `json:"vendor"`         // Supplier/organisation name
	PackageURL    string `json:"purl"`           // Package URL locator
	License       string `json:"license"`        // License identifier(s), may be empty
}
