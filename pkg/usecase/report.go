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
	"io"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	myconfig "scanoss.com/inventory/pkg/config"
	"scanoss.com/inventory/pkg/dtos"
	"scanoss.com/inventory/pkg/spdx"
)

type ReportUseCase struct {
	ctx context.Context
	s   *zap.SugaredLogger
	cfg spdx.Config
	now spdx.Timestamper
}

// NewReport creates a report use case. The logger is taken from the context.
func NewReport(ctx context.Context, config *myconfig.ServerConfig) *ReportUseCase {
	return &ReportUseCase{ctx: ctx, s: ctxzap.Extract(ctx).Sugar(), cfg: config.SPDXConfig(), now: spdx.Datestamp}
}

// WithTimestamper overrides the document creation date source.
func (r *ReportUseCase) WithTimestamper(ts spdx.Timestamper) *ReportUseCase {
	r.now = ts
	return r
}

// WriteReport runs a full SPDX session over the records, in the order given.
// A write failure aborts the session and leaves a truncated document behind.
func (r *ReportUseCase) WriteReport(w io.Writer, records []dtos.ComponentRecord) error {
	writer := spdx.NewReportWriter(w, spdx.WithConfig(r.cfg), spdx.WithTimestamper(r.now))
	if err := writer.Open(); err != nil {
		r.s.Errorf("Failed to open SPDX report: %v", err)
		return err
	}
	for _, record := range records {
		if err := writer.WriteComponent(record); err != nil {
			r.s.Errorf("Failed to write component %v to SPDX report: %v", record.Name, err)
			return err
		}
		r.s.Debugf("Reported component: %v (%v)", record.Name, record.PackageURL)
	}
	if err := writer.Close(); err != nil {
		r.s.Errorf("Failed to close SPDX report: %v", err)
		return err
	}
	r.s.Infof("SPDX report written with %d components", writer.Count())
	return nil
}
