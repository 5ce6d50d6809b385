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
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golobby/config/v3"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	myconfig "scanoss.com/inventory/pkg/config"
	"scanoss.com/inventory/pkg/dtos"
	zlog "scanoss.com/inventory/pkg/logger"
	"scanoss.com/inventory/pkg/models"
	"scanoss.com/inventory/pkg/usecase"
)

// Exit codes returned by RunReport.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type reportArgs struct {
	input      string
	purls      string
	output     string
	configFile string
	debug      bool
}

func parseReportArgs(args []string, stderr io.Writer) (reportArgs, error) {
	var ra reportArgs
	fs := flag.NewFlagSet("spdx-report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&ra.input, "input", "", "JSON inventory file produced by the matching engine")
	fs.StringVar(&ra.purls, "purls", "", "Comma separated list of purls to resolve against the knowledge base")
	fs.StringVar(&ra.output, "output", "", "Report file (default stdout)")
	fs.StringVar(&ra.configFile, "config", "", "Configuration file (.json or .env)")
	fs.BoolVar(&ra.debug, "debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return ra, err
	}
	if ra.input == "" && ra.purls == "" {
		fs.Usage()
		return ra, fmt.Errorf("please specify an -input file and/or a list of -purls")
	}
	return ra, nil
}

// RunReport writes an SPDX inventory report and returns the process exit code.
func RunReport(args []string, stdout, stderr io.Writer) int {
	ra, err := parseReportArgs(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return ExitUsage
	}
	if ra.debug {
		err = zlog.NewSugaredDevLogger()
	} else {
		err = zlog.NewSugaredProdLogger()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
		return ExitError
	}
	defer zlog.SyncZap()
	var feeders []config.Feeder
	if ra.configFile != "" {
		feeders = append(feeders, myconfig.FileFeeder(ra.configFile))
	}
	cfg, err := myconfig.NewServerConfig(feeders)
	if err != nil {
		zlog.S.Errorf("Failed to load config: %v", err)
		return ExitError
	}
	if ra.debug || cfg.App.Debug {
		if err = zlog.SetLevel("debug"); err != nil {
			zlog.S.Warnf("Failed to switch to debug logging: %v", err)
		}
	}
	ctx := ctxzap.ToContext(context.Background(), zlog.L)
	s := ctxzap.Extract(ctx).Sugar()
	s.Debugf("Starting %v", cfg.App.Name)

	inventory, err := loadInventory(ctx, ra)
	if err != nil {
		s.Errorf("Failed to load inventory: %v", err)
		return ExitError
	}
	var conn *sqlx.Conn
	if len(inventory.Purls) > 0 {
		db, err := openDB(cfg)
		if err != nil {
			s.Errorf("Failed to open knowledge base: %v", err)
			return ExitError
		}
		defer models.CloseDB(db)
		conn, err = db.Connx(ctx) // Get a connection from the pool
		if err != nil {
			s.Errorf("Failed to get a database connection from the pool: %v", err)
			return ExitError
		}
		defer models.CloseConn(conn)
	}
	records, summary, err := usecase.NewInventory(ctx, s, conn, cfg).GetComponents(inventory)
	if err != nil {
		s.Errorf("Failed to resolve inventory: %v", err)
		return ExitError
	}
	for _, m := range summary.Messages() {
		s.Warn(m)
	}

	out := stdout
	var reportFile *os.File
	if ra.output != "" {
		reportFile, err = os.Create(ra.output)
		if err != nil {
			s.Errorf("Failed to create report file: %v", err)
			return ExitError
		}
		out = reportFile
	}
	err = usecase.NewReport(ctx, cfg).WriteReport(bufio.NewWriter(out), records)
	if reportFile != nil {
		cerr := closeReport(s, reportFile, ra.output)
		if err == nil {
			err = cerr
		}
	}
	if err != nil {
		return ExitError
	}
	if summary.TotalPurls > 0 && summary.Failed() == summary.TotalPurls {
		s.Errorf("None of the %d requested purls could be reported", summary.TotalPurls)
		return ExitError
	}
	return ExitOK
}

// closeReport closes the report output and logs any errors.
func closeReport(s *zap.SugaredLogger, c io.Closer, name string) error {
	err := c.Close()
	if err != nil {
		s.Errorf("Problem closing report file %v: %v", name, err)
	}
	return err
}

// loadInventory combines the input file and the purl list into one inventory.
func loadInventory(ctx context.Context, ra reportArgs) (dtos.InventoryInput, error) {
	s := ctxzap.Extract(ctx).Sugar()
	var inventory dtos.InventoryInput
	if ra.input != "" {
		data, err := os.ReadFile(ra.input)
		if err != nil {
			return inventory, fmt.Errorf("failed to read inventory file: %v", err)
		}
		if inventory, err = dtos.ParseInventoryInput(s, data); err != nil {
			return inventory, err
		}
	}
	if strings.TrimSpace(ra.purls) != "" {
		inventory.Purls = append(inventory.Purls, dtos.ParsePurlList(ra.purls).Purls...)
	}
	return inventory, nil
}

func openDB(cfg *myconfig.ServerConfig) (*sqlx.DB, error) {
	driver, dsn, err := cfg.DataSource()
	if err != nil {
		return nil, err
	}
	zlog.S.Debugf("Connecting to %v knowledge base", driver)
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %v database: %v", driver, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
