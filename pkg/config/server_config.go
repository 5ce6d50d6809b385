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

package config

import (
	"fmt"
	"strings"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"
	"scanoss.com/inventory/pkg/spdx"
)

const (
	defaultDBDriver = "sqlite3"
)

// ServerConfig is the configuration for the inventory report tools.
type ServerConfig struct {
	App struct {
		Name  string `env:"APP_NAME"`
		Debug bool   `env:"APP_DEBUG"` // true/false
	}
	Database struct {
		Driver  string `env:"DB_DRIVER"` // sqlite3 or postgres
		Host    string `env:"DB_HOST"`
		User    string `env:"DB_USER"`
		Passwd  string `env:"DB_PASSWD"`
		Schema  string `env:"DB_SCHEMA"`
		SslMode string `env:"DB_SSL_MODE"` // enable/disable
		Dsn     string `env:"DB_DSN"`
		Trace   bool   `env:"DB_TRACE"` // true/false
	}
	Report struct {
		SpecVersion        string `env:"REPORT_SPEC_VERSION"`
		Creators           string `env:"REPORT_CREATORS"` // '|' separated list
		CreationComment    string `env:"REPORT_CREATION_COMMENT"`
		LicenseListVersion string `env:"REPORT_LICENSE_LIST_VERSION"`
		DataLicense        string `env:"REPORT_DATA_LICENSE"`
		DocumentID         string `env:"REPORT_DOCUMENT_ID"`
		DocumentName       string `env:"REPORT_DOCUMENT_NAME"`
		DocumentComment    string `env:"REPORT_DOCUMENT_COMMENT"`
		PackageDescription string `env:"REPORT_PACKAGE_DESCRIPTION"`
	}
}

// NewServerConfig loads the configuration: defaults first, then the given feeders, then the environment.
func NewServerConfig(feeders []config.Feeder) (*ServerConfig, error) {
	cfg := ServerConfig{}
	setServerConfigDefaults(&cfg)
	c := config.New()
	for _, f := range feeders {
		c.AddFeeder(f)
	}
	c.AddFeeder(feeder.Env{})
	c.AddStruct(&cfg)
	err := c.Feed()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FileFeeder picks the feeder for a config file: .env style files use DotEnv, anything else JSON.
func FileFeeder(path string) config.Feeder {
	if strings.HasSuffix(path, ".env") {
		return feeder.DotEnv{Path: path}
	}
	return feeder.Json{Path: path}
}

// setServerConfigDefaults attempts to set reasonable defaults for the configuration.
func setServerConfigDefaults(cfg *ServerConfig) {
	cfg.App.Name = "SCANOSS SPDX Inventory Report"
	cfg.App.Debug = false
	cfg.Database.Driver = defaultDBDriver
	cfg.Database.Host = "localhost"
	cfg.Database.User = "scanoss"
	cfg.Database.Schema = "scanoss"
	cfg.Database.SslMode = "disable"
	cfg.Database.Dsn = ""
	cfg.Database.Trace = false
	d := spdx.DefaultConfig()
	cfg.Report.SpecVersion = d.SpecVersion
	cfg.Report.Creators = strings.Join(d.Creators, "|")
	cfg.Report.CreationComment = d.CreationComment
	cfg.Report.LicenseListVersion = d.LicenseListVersion
	cfg.Report.DataLicense = d.DataLicense
	cfg.Report.DocumentID = d.DocumentID
	cfg.Report.DocumentName = d.DocumentName
	cfg.Report.DocumentComment = d.DocumentComment
	cfg.Report.PackageDescription = d.PackageDescription
}

// SPDXConfig returns the report constants as a writer configuration.
func (cfg *ServerConfig) SPDXConfig() spdx.Config {
	var creators []string
	for _, c := range strings.Split(cfg.Report.Creators, "|") {
		if c = strings.TrimSpace(c); c != "" {
			creators = append(creators, c)
		}
	}
	return spdx.Config{
		SpecVersion:        cfg.Report.SpecVersion,
		Creators:           creators,
		CreationComment:    cfg.Report.CreationComment,
		LicenseListVersion: cfg.Report.LicenseListVersion,
		SPDXVersion:        cfg.Report.SpecVersion,
		DataLicense:        cfg.Report.DataLicense,
		DocumentID:         cfg.Report.DocumentID,
		DocumentName:       cfg.Report.DocumentName,
		DocumentComment:    cfg.Report.DocumentComment,
		PackageDescription: cfg.Report.PackageDescription,
	}
}

// DataSource returns the driver name and connection string for the knowledge base.
func (cfg *ServerConfig) DataSource() (string, string, error) {
	driver := cfg.Database.Driver
	if driver == "" {
		driver = defaultDBDriver
	}
	if cfg.Database.Dsn != "" {
		return driver, cfg.Database.Dsn, nil
	}
	switch driver {
	case "postgres":
		return driver, fmt.Sprintf("%s://%s:%s@%s/%s?sslmode=%s", driver,
			cfg.Database.User, cfg.Database.Passwd, cfg.Database.Host, cfg.Database.Schema, cfg.Database.SslMode), nil
	case "sqlite3":
		return driver, "", fmt.Errorf("a database dsn (file path) is required for driver %v", driver)
	}
	return driver, "", fmt.Errorf("unsupported database driver: %v", driver)
}
