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

package models

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
	zlog "scanoss.com/inventory/pkg/logger"
)

// Schema creates the knowledge base tables queried by ComponentModel.
//
//go:embed schema.sql
var Schema string

// TestDataPath is where LoadTestSQLData looks for its *.sql fixtures, relative to a package directory.
var TestDataPath = "../../test-support/sqlite"

// CloseDB closes the specified DB and logs any errors.
func CloseDB(db *sqlx.DB) {
	if db != nil {
		zlog.S.Debugf("Closing DB...")
		err := db.Close()
		if err != nil {
			zlog.S.Warnf("Problem closing DB: %v", err)
		}
	}
}

// CloseConn closes the specified DB connection and logs any errors.
func CloseConn(conn *sqlx.Conn) {
	if conn != nil {
		zlog.S.Debugf("Closing Connection...")
		err := conn.Close()
		if err != nil {
			zlog.S.Warnf("Problem closing DB connection: %v", err)
		}
	}
}

// LoadTestSQLData creates the knowledge base Schema and loads every *.sql fixture under TestDataPath, in file name order.
func LoadTestSQLData(db *sqlx.DB, ctx context.Context, conn *sqlx.Conn) error {
	if err := RunTestSQL(db, ctx, conn, Schema); err != nil {
		return fmt.Errorf("failed to create the knowledge base schema: %v", err)
	}
	files, err := filepath.Glob(filepath.Join(TestDataPath, "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no SQL test data found in %v", TestDataPath)
	}
	sort.Strings(files)
	for _, file := range files {
		if err = loadSQLData(db, ctx, conn, file); err != nil {
			return err
		}
	}
	return nil
}

func loadSQLData(db *sqlx.DB, ctx context.Context, conn *sqlx.Conn, filename string) error {
	fileData, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read SQL file %v: %v", filename, err)
	}
	return RunTestSQL(db, ctx, conn, string(fileData))
}

// RunTestSQL executes the given statements on the connection (or the DB when conn is nil).
func RunTestSQL(db *sqlx.DB, ctx context.Context, conn *sqlx.Conn, sqlString string) error {
	var err error
	if conn != nil {
		_, err = conn.ExecContext(ctx, sqlString)
	} else {
		_, err = db.ExecContext(ctx, sqlString)
	}
	return err
}
