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
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	purlhelper "github.com/scanoss/go-purl-helper/pkg"
	"go.uber.org/zap"
	"scanoss.com/inventory/pkg/dtos"
	zlog "scanoss.com/inventory/pkg/logger"
	"scanoss.com/inventory/pkg/models"
)

func normalize(str string) string {
	return strings.ReplaceAll(str, "'", "''")
}

// SupportTools converts a JSON inventory into SQL statements that seed a knowledge base.
func SupportTools(args []string, stdout io.Writer) error {
	var defJSONPath string
	var createTable string

	fs := flag.NewFlagSet("inventory-tools", flag.ContinueOnError)
	fs.StringVar(&defJSONPath, "json-definition", "", "Defines a json inventory file path")
	fs.StringVar(&createTable, "create-table", "", "Defines a table to be created (components)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if createTable == "" {
		return errors.New("please specify a table to create")
	}
	if createTable != "components" {
		return fmt.Errorf("unsupported table: %v", createTable)
	}
	if err := zlog.NewSugaredProdLogger(); err != nil {
		return err
	}
	defer zlog.SyncZap()
	s := zlog.S
	data, err := os.ReadFile(defJSONPath)
	if err != nil {
		return fmt.Errorf("failed to read inventory definition: %v", err)
	}
	inventory, err := dtos.ParseInventoryInput(s, data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, componentsSQL(s, inventory.Components))
	return err
}

// componentsSQL builds the knowledge base schema plus one row per component, sharing mine, version and license rows.
func componentsSQL(s *zap.SugaredLogger, components []dtos.ComponentRecord) string {
	var sb strings.Builder
	sb.WriteString(models.Schema)
	mines := map[string]int{}
	versions := map[string]int{}
	licenses := map[string]int{}
	idFor := func(m map[string]int, table, value string) int {
		if id, ok := m[value]; ok {
			return id
		}
		id := len(m) + 1
		m[value] = id
		switch table {
		case "mines":
			sb.WriteString(fmt.Sprintf("\nINSERT INTO mines VALUES(%d,'%s','%s');", id, normalize(value), normalize(value)))
		case "versions":
			sb.WriteString(fmt.Sprintf("\nINSERT INTO versions VALUES(%d,'%s','%s');", id, normalize(value), normalize(value)))
		case "licenses":
			sb.WriteString(fmt.Sprintf("\nINSERT INTO licenses VALUES(%d,'%s');", id, normalize(value)))
		}
		return id
	}
	for i, c := range components {
		purl, err := purlhelper.PurlFromString(c.PackageURL)
		if err != nil {
			s.Warnf("Skipping component %v: %v", c.Name, err)
			continue
		}
		purlName, err := purlhelper.PurlNameFromString(c.PackageURL)
		if err != nil || len(purlName) == 0 {
			s.Warnf("Skipping component %v without a purl name: %v", c.Name, err)
			continue
		}
		version := c.Version
		if version == "" {
			version = purl.Version
		}
		mineID := idFor(mines, "mines", purl.Type)
		versionID := "NULL"
		if version != "" {
			versionID = fmt.Sprintf("%d", idFor(versions, "versions", version))
		}
		licenseID := "NULL"
		if c.License != "" {
			licenseID = fmt.Sprintf("%d", idFor(licenses, "licenses", c.License))
		}
		sb.WriteString(fmt.Sprintf("\nINSERT INTO components VALUES(%d,'%s',%d,'%s','%s',%s,%s,NULL);",
			i+1, normalize(purlName), mineID, normalize(c.Name), normalize(c.Vendor), versionID, licenseID))
	}
	sb.WriteString("\n")
	return sb.String()
}
