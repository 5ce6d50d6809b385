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

// Package logger provides the zap logger shared by the inventory tools.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L           *zap.Logger        // Global zap logger
	S           *zap.SugaredLogger // Global sugared zap logger
	AtomicLevel = zap.NewAtomicLevel()
)

// NewDevLogger sets up a development (console) logger at debug level.
func NewDevLogger() error {
	cfg := zap.NewDevelopmentConfig()
	AtomicLevel.SetLevel(zapcore.DebugLevel)
	cfg.Level = AtomicLevel
	return setLogger(cfg)
}

// NewProdLogger sets up a production (JSON) logger at info level.
func NewProdLogger() error {
	cfg := zap.NewProductionConfig()
	AtomicLevel.SetLevel(zapcore.InfoLevel)
	cfg.Level = AtomicLevel
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Reports go to stdout, so logs must not.
	cfg.OutputPaths = []string{"stderr"}
	return setLogger(cfg)
}

// NewSugaredDevLogger sets up a development logger and its sugared form.
func NewSugaredDevLogger() error {
	if err := NewDevLogger(); err != nil {
		return err
	}
	S = L.Sugar()
	return nil
}

// NewSugaredProdLogger sets up a production logger and its sugared form.
func NewSugaredProdLogger() error {
	if err := NewProdLogger(); err != nil {
		return err
	}
	S = L.Sugar()
	return nil
}

// SetLevel changes the level of the running logger ("debug", "info", "warn", ...).
func SetLevel(level string) error {
	return AtomicLevel.UnmarshalText([]byte(level))
}

// SyncZap flushes any buffered log entries.
func SyncZap() {
	if L != nil {
		_ = L.Sync()
	}
}

func setLogger(cfg zap.Config) error {
	var err error
	L, err = cfg.Build()
	if err != nil {
		return err
	}
	S = L.Sugar()
	return nil
}
