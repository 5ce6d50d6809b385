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
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/scanoss/go-grpc-helper/pkg/grpc/database"
	purlhelper "github.com/scanoss/go-purl-helper/pkg"
	"go.uber.org/zap"
	myconfig "scanoss.com/inventory/pkg/config"
	"scanoss.com/inventory/pkg/dtos"
	"scanoss.com/inventory/pkg/models"
	"scanoss.com/inventory/pkg/utils"
)

type InventoryUseCase struct {
	ctx        context.Context
	s          *zap.SugaredLogger
	conn       *sqlx.Conn
	components *models.ComponentModel
}

// inventoryQuery tracks one requested purl while it is resolved.
type inventoryQuery struct {
	CompletePurl string
	PurlName     string
	PurlType     string
	Version      string // exact version, if one was requested
	Requirement  string // version range, if one was requested
}

// NewInventory creates a new inventory use case. conn may be nil when only pre-resolved components are reported.
func NewInventory(ctx context.Context, s *zap.SugaredLogger, conn *sqlx.Conn, config *myconfig.ServerConfig) *InventoryUseCase {
	uc := &InventoryUseCase{ctx: ctx, s: s, conn: conn}
	if conn != nil {
		uc.components = models.NewComponentModel(ctx, s, database.NewDBSelectContext(s, nil, conn, config.Database.Trace))
	}
	return uc
}

// GetComponents returns the component records to report for the given inventory, in request order.
// Supplied components come first, untouched; purls are resolved against the knowledge base.
func (d InventoryUseCase) GetComponents(request dtos.InventoryInput) ([]dtos.ComponentRecord, models.QuerySummary, error) {
	summary := models.QuerySummary{TotalPurls: len(request.Purls)}
	records := make([]dtos.ComponentRecord, 0, len(request.Components)+len(request.Purls))
	records = append(records, request.Components...)
	if len(request.Purls) == 0 {
		d.s.Debugf("No purls to resolve. Reporting %d supplied components", len(records))
		return records, summary, nil
	}
	if d.components == nil {
		d.s.Errorf("Cannot resolve %d purls without a knowledge base connection", len(request.Purls))
		return records, summary, errors.New("a knowledge base connection is required to resolve purls")
	}
	var queries []inventoryQuery
	var purlsToQuery []utils.PurlReq
	for _, p := range request.Purls {
		purl, err := purlhelper.PurlFromString(p.Purl)
		if err != nil {
			d.s.Warnf("Failed to parse purl '%s': %s", p.Purl, err)
			summary.PurlsFailedToParse = append(summary.PurlsFailedToParse, p.Purl)
			continue
		}
		purlName, err := purlhelper.PurlNameFromString(p.Purl) // Make sure we just have the bare minimum for a Purl Name
		if err != nil || len(purl.Type) == 0 || len(purlName) == 0 {
			d.s.Warnf("Failed to get a purl name from '%s': %v", p.Purl, err)
			summary.PurlsFailedToParse = append(summary.PurlsFailedToParse, p.Purl)
			continue
		}
		q := inventoryQuery{CompletePurl: p.Purl, PurlName: purlName, PurlType: purl.Type, Version: purl.Version}
		req := strings.TrimSpace(p.Requirement)
		if strings.HasPrefix(req, "file:") { // internal dependency requirement. Assume latest
			d.s.Debugf("Removing 'local' requirement for purl: %v (req: %v)", p.Purl, req)
			req = ""
		}
		if len(q.Version) == 0 && len(req) > 0 {
			if ver := utils.GetVersionFromReq(req); len(ver) > 0 {
				q.Version = ver // Switch to exact version search
			} else if utils.IsValidRequirement(req) {
				q.Requirement = req
			} else {
				d.s.Warnf("Ignoring invalid requirement '%v' for %v", req, p.Purl)
			}
		}
		queries = append(queries, q)
		purlsToQuery = append(purlsToQuery, utils.PurlReq{Purl: q.PurlName, Version: q.Requirement})
	}
	if len(queries) == 0 {
		d.s.Warnf("None of the %d purls could be parsed", len(request.Purls))
		return records, summary, nil
	}
	found, err := d.components.GetComponentsByPurlList(purlsToQuery)
	if err != nil {
		return records, summary, err
	}
	// Order components in a map for fast access by purl type and name
	componentMap := make(map[string][]models.Component)
	for _, c := range found {
		key := c.PurlType + "/" + c.PurlName
		componentMap[key] = append(componentMap[key], c)
	}
	for _, q := range queries {
		known := componentMap[q.PurlType+"/"+q.PurlName]
		record, ok, err := d.resolve(q, known)
		if err != nil {
			return records, summary, err
		}
		if !ok {
			summary.PurlsNotFound = append(summary.PurlsNotFound, q.CompletePurl)
			continue
		}
		if len(record.Vendor) == 0 && len(record.License) == 0 {
			summary.PurlsWOInfo = append(summary.PurlsWOInfo, q.CompletePurl)
		}
		records = append(records, record)
	}
	d.s.Debugf("Resolved %d of %d purls", len(request.Purls)-summary.Failed(), len(request.Purls))
	return records, summary, nil
}

// resolve picks the detected and latest versions of one purl from its known versions.
func (d InventoryUseCase) resolve(q inventoryQuery, known []models.Component) (dtos.ComponentRecord, bool, error) {
	if len(known) == 0 {
		d.s.Infof("No component match found for %v", q.CompletePurl)
		return dtos.ComponentRecord{}, false, nil
	}
	latest, err := models.LatestComponentVersion(d.s, known, q.PurlName, q.PurlType)
	if err != nil {
		return dtos.ComponentRecord{}, false, err
	}
	var selected models.Component
	if len(q.Version) > 0 {
		var ok bool
		if selected, ok = models.FindComponentVersion(known, q.Version); !ok {
			d.s.Infof("Version %v of %v not found", q.Version, q.CompletePurl)
			return dtos.ComponentRecord{}, false, nil
		}
	} else {
		selected, err = models.PickComponentVersion(d.s, known, q.PurlName, q.PurlType, q.Requirement)
		if err != nil {
			return dtos.ComponentRecord{}, false, err
		}
		if len(selected.PurlName) == 0 {
			return dtos.ComponentRecord{}, false, nil
		}
	}
	if len(latest.PurlName) == 0 {
		latest = selected
	}
	return dtos.ComponentRecord{
		Name:          selected.Component,
		Version:       selected.Version,
		LatestVersion: latest.Version,
		Vendor:        selected.Vendor,
		PackageURL:    utils.ProjectPurl(q.PurlType, q.PurlName, selected.Version),
		License:       selected.License,
	}, true, nil
}
