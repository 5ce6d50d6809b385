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

package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	if err := NewSugaredProdLogger(); err != nil {
		t.Fatalf("an error '%s' was not expected when opening a sugared logger", err)
	}
	defer SyncZap()
	if AtomicLevel.Level() != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", AtomicLevel.Level())
	}
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("an error '%s' was not expected when setting the level", err)
	}
	if !L.Core().Enabled(zapcore.DebugLevel) {
		t.Errorf("expected debug logging to be enabled")
	}
	if err := SetLevel("chatty"); err == nil {
		t.Errorf("Expected an error setting an unknown level")
	}
	if AtomicLevel.Level() != zapcore.DebugLevel {
		t.Errorf("an unknown level should leave the level unchanged, got %v", AtomicLevel.Level())
	}
}
