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

package usecase

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	myconfig "scanoss.com/inventory/pkg/config"
	"scanoss.com/inventory/pkg/dtos"
	zlog "scanoss.com/inventory/pkg/logger"
	"scanoss.com/inventory/pkg/models"
)

func TestInventoryUseCase(t *testing.T) {
	err := zlog.NewSugaredDevLogger()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a sugared logger", err)
	}
	defer zlog.SyncZap()
	ctx := ctxzap.ToContext(context.Background(), zlog.L)
	s := ctxzap.Extract(ctx).Sugar()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer models.CloseDB(db)
	conn, err := db.Connx(ctx) // Get a connection from the pool
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer models.CloseConn(conn)
	err = models.LoadTestSQLData(db, ctx, conn)
	if err != nil {
		t.Fatalf("an error '%s' was not expected when loading test data", err)
	}
	myConfig, err := myconfig.NewServerConfig(nil)
	if err != nil {
		t.Fatalf("failed to load Config: %v", err)
	}
	myConfig.Database.Trace = true

	var inventoryRequest = `{
		"components": [
		  {"component": "supplied", "version": "0.1.0", "latest_version": "0.2.0", "vendor": "acme", "purl": "pkg:generic/acme/supplied@0.1.0", "license": "BSD-3-Clause"}
		],
		"purls": [
		  {"purl": "pkg:github/scanoss/engine@5.2.4"},
		  {"purl": "pkg:github/scanoss/minr", "requirement": "<2.1.0"},
		  {"purl": "pkg:npm/left-pad"},
		  {"purl": "pkg:npm/left-pad", "requirement": "file:../left-pad"},
		  {"purl": "pkg:npm/no-info"},
		  {"purl": "pkg:npm/unknown"},
		  {"purl": "not-a-purl"},
		  {"purl": "pkg:github/scanoss/engine", "requirement": "=9.9.9"},
		  {"purl": "pkg:github/scanoss/engine", "requirement": "5.3.0"},
		  {"purl": "pkg:maven/left-pad@1.0.0"}
		]
	}`
	requestDto, err := dtos.ParseInventoryInput(s, []byte(inventoryRequest))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when parsing input json", err)
	}
	inventoryUc := NewInventory(ctx, s, conn, myConfig)
	records, summary, err := inventoryUc.GetComponents(requestDto)
	if err != nil {
		t.Fatalf("an error '%s' was not expected when getting components", err)
	}
	expected := []dtos.ComponentRecord{
		{Name: "supplied", Version: "0.1.0", LatestVersion: "0.2.0", Vendor: "acme", PackageURL: "pkg:generic/acme/supplied@0.1.0", License: "BSD-3-Clause"},
		{Name: "engine", Version: "5.2.4", LatestVersion: "5.4.1", Vendor: "scanoss", PackageURL: "pkg:github/scanoss/engine@5.2.4", License: "GPL-2.0-only"},
		{Name: "minr", Version: "2.0.0", LatestVersion: "2.1.0", Vendor: "scanoss", PackageURL: "pkg:github/scanoss/minr@2.0.0", License: "GPL-2.0-only"},
		{Name: "left-pad", Version: "1.3.0", LatestVersion: "1.3.0", Vendor: "azer", PackageURL: "pkg:npm/left-pad@1.3.0", License: "MIT"},
		{Name: "left-pad", Version: "1.3.0", LatestVersion: "1.3.0", Vendor: "azer", PackageURL: "pkg:npm/left-pad@1.3.0", License: "MIT"},
		{Name: "no-info", Version: "1.0.0", LatestVersion: "1.0.0", PackageURL: "pkg:npm/no-info@1.0.0"},
		{Name: "engine", Version: "5.3.0", LatestVersion: "5.4.1", Vendor: "scanoss", PackageURL: "pkg:github/scanoss/engine@5.3.0", License: "GPL-2.0-only"},
		{Name: "left-pad-java", Version: "1.0.0", LatestVersion: "1.0.0", Vendor: "someone", PackageURL: "pkg:maven/left-pad@1.0.0", License: "Apache-2.0"},
	}
	if diff := cmp.Diff(expected, records); diff != "" {
		t.Errorf("GetComponents() mismatch (-want +got):\n%s", diff)
	}
	expectedSummary := models.QuerySummary{
		TotalPurls:         10,
		PurlsFailedToParse: []string{"not-a-purl"},
		PurlsNotFound:      []string{"pkg:npm/unknown", "pkg:github/scanoss/engine"},
		PurlsWOInfo:        []string{"pkg:npm/no-info"},
	}
	if diff := cmp.Diff(expectedSummary, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	_ = models.RunTestSQL(db, ctx, conn, "DROP TABLE components;")
	_, _, err = inventoryUc.GetComponents(dtos.InventoryInput{Purls: []dtos.InventoryPurl{{Purl: "pkg:npm/left-pad"}}})
	if err == nil {
		t.Errorf("Expected to get an error when the knowledge base cannot be queried")
	}
}

func TestInventoryUseCaseWithoutDB(t *testing.T) {
	err := zlog.NewSugaredDevLogger()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a sugared logger", err)
	}
	defer zlog.SyncZap()
	ctx := ctxzap.ToContext(context.Background(), zlog.L)
	s := ctxzap.Extract(ctx).Sugar()
	myConfig, err := myconfig.NewServerConfig(nil)
	if err != nil {
		t.Fatalf("failed to load Config: %v", err)
	}
	inventoryUc := NewInventory(ctx, s, nil, myConfig)
	supplied := []dtos.ComponentRecord{{Name: "a"}, {Name: "b"}, {Name: "a"}}
	records, summary, err := inventoryUc.GetComponents(dtos.InventoryInput{Components: supplied})
	if err != nil {
		t.Fatalf("an error '%s' was not expected when getting components", err)
	}
	if diff := cmp.Diff(supplied, records); diff != "" {
		t.Errorf("supplied components should pass through untouched (-want +got):\n%s", diff)
	}
	if summary.TotalPurls != 0 {
		t.Errorf("unexpected summary: %#v", summary)
	}
	_, _, err = inventoryUc.GetComponents(dtos.ParsePurlList("pkg:npm/left-pad"))
	if err == nil {
		t.Errorf("Expected to get an error resolving purls without a connection")
	}
	records, summary, err = inventoryUc.GetComponents(dtos.InventoryInput{})
	if err != nil || len(records) != 0 {
		t.Errorf("Expected an empty inventory to produce no records: %v, %v", records, err)
	}
}
