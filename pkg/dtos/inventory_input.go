// SPDX-License-Identifier: GPL-2.0-or-later
/*
 * Copyright (C) 2018-2022 SCANOSS.COM
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

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// InventoryInput is the inventory handed over by the matching engine.
// Components are reported as supplied; Purls still need resolving against the knowledge base.
type InventoryInput struct {
	Components []ComponentRecord `json:"components,omitempty"`
	Purls      []InventoryPurl   `json:"purls,omitempty"`
}

type InventoryPurl struct {
	Purl        string `json:"purl"`
	Requirement string `json:"requirement,omitempty"`
}

// ParseInventoryInput converts the input byte array to an InventoryInput structure.
func ParseInventoryInput(s *zap.SugaredLogger, input []byte) (InventoryInput, error) {
	if len(strings.TrimSpace(string(input))) == 0 {
		return InventoryInput{}, errors.New("no inventory data supplied to parse")
	}
	var data InventoryInput
	err := json.Unmarshal(input, &data)
	if err != nil {
		s.Errorf("Parse failure: %v", err)
		return InventoryInput{}, fmt.Errorf("failed to parse inventory input data: %v", err)
	}
	s.Debugf("Parsed data: %v", data)
	return data, nil
}

// ParsePurlList builds an InventoryInput from a comma separated list of purls.
// A requirement may be attached to each purl with '@'.
func ParsePurlList(list string) InventoryInput {
	var data InventoryInput
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			data.Purls = append(data.Purls, InventoryPurl{Purl: p})
		}
	}
	return data
}
