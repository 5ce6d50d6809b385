// SPDX-License-Identifier: GPL-2.0-or-later
/*
 * Copyright (C) 2025 SCANOSS.COM
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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jmoiron/sqlx"
	"github.com/scanoss/go-grpc-helper/pkg/grpc/database"
	"go.uber.org/zap"

	"scanoss.com/inventory/pkg/utils"
)

type ComponentModel struct {
	ctx context.Context
	s   *zap.SugaredLogger
	q   *database.DBQueryContext
}

// Component is one known version of a component in the knowledge base.
type Component struct {
	Component string `db:"component"`
	Vendor    string `db:"vendor"`
	Version   string `db:"version"`
	SemVer    string `db:"semver"`
	PurlName  string `db:"purl_name"`
	PurlType  string `db:"purl_type"`
	License   string `db:"license"`
}

const componentSelect = "SELECT c.component, c.vendor, COALESCE(v.version_name, '') AS version, COALESCE(v.semver, '') AS semver, " +
	"c.purl_name, COALESCE(m.purl_type, '') AS purl_type, COALESCE(l.license_name, '') AS license FROM components c " +
	"LEFT JOIN mines m ON c.mine_id = m.id " +
	"LEFT JOIN versions v ON c.version_id = v.id " +
	"LEFT JOIN licenses l ON c.license_id = l.id "

// NewComponentModel creates a new instance of the Component Model.
func NewComponentModel(ctx context.Context, s *zap.SugaredLogger, q *database.DBQueryContext) *ComponentModel {
	return &ComponentModel{ctx: ctx, s: s, q: q}
}

// GetComponentsByPurlList returns every known version of the requested purl names.
func (m *ComponentModel) GetComponentsByPurlList(list []utils.PurlReq) ([]Component, error) {
	if len(list) == 0 {
		m.s.Infof("Please specify a valid Purl list to query")
		return []Component{}, errors.New("please specify a valid Purl list to query")
	}
	var purlNames []string
	for p := range list {
		if list[p].Purl != "" {
			purlNames = append(purlNames, list[p].Purl)
		}
	}
	if len(purlNames) == 0 {
		m.s.Errorf("No purl names to query")
		return []Component{}, errors.New("no purl names to query")
	}
	stmt, args, err := sqlx.In(componentSelect+"WHERE c.purl_name IN (?) ORDER BY c.date DESC;", purlNames)
	if err != nil {
		m.s.Errorf("Failed to build component query: %v", err)
		return []Component{}, fmt.Errorf("failed to build component query: %v", err)
	}
	var components []Component
	// $N placeholders are understood by both postgres and sqlite
	err = m.q.SelectContext(m.ctx, &components, sqlx.Rebind(sqlx.DOLLAR, stmt), args...)
	if err != nil {
		m.s.Errorf("Failed to query a list of components: %v", err)
		return []Component{}, fmt.Errorf("failed to query the components table: %v", err)
	}
	m.s.Debugf("Found %v results for %v purl names.", len(components), len(purlNames))
	return components, nil
}

// GetComponentsByPurlNameType returns every known version of a single purl name/type.
func (m *ComponentModel) GetComponentsByPurlNameType(purlName, purlType string) ([]Component, error) {
	if len(purlName) == 0 {
		m.s.Errorf("Please specify a valid Purl Name to query")
		return []Component{}, errors.New("please specify a valid Purl Name to query")
	}
	if len(purlType) == 0 {
		m.s.Errorf("Please specify a valid Purl Type to query: %v", purlName)
		return []Component{}, errors.New("please specify a valid Purl Type to query")
	}
	var components []Component
	err := m.q.SelectContext(m.ctx, &components,
		componentSelect+"WHERE m.purl_type = $1 AND c.purl_name = $2 ORDER BY c.date DESC;",
		purlType, purlName)
	if err != nil {
		m.s.Errorf("Failed to query components table for %v - %v: %v", purlType, purlName, err)
		return []Component{}, fmt.Errorf("failed to query the components table: %v", err)
	}
	m.s.Debugf("Found %v results for %v, %v.", len(components), purlType, purlName)
	return components, nil
}

// componentVersion parses the version of a component, falling back to its semver column and then v0.0.0.
func componentVersion(s *zap.SugaredLogger, c Component) (*semver.Version, bool) {
	if len(c.SemVer) == 0 && len(c.Version) == 0 {
		s.Warnf("Skipping match as it doesn't have a version: %#v", c)
		return nil, false
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil && len(c.SemVer) > 0 {
		s.Debugf("Failed to parse Version: '%v'. Trying SemVer instead: %v (%v)", c.Version, c.SemVer, err)
		v, err = semver.NewVersion(c.SemVer)
	}
	if err != nil {
		s.Warnf("Encountered an issue parsing version string '%v' (%v) for %v: %v. Using v0.0.0", c.Version, c.SemVer, c.PurlName, err)
		v = semver.MustParse("v0.0.0")
	}
	return v, true
}

// PickComponentVersion selects the highest version of a component that satisfies purlReq.
// An empty requirement accepts every version. The zero Component is returned when nothing fits.
func PickComponentVersion(s *zap.SugaredLogger, components []Component, purlName, purlType, purlReq string) (Component, error) {
	if len(components) == 0 {
		s.Infof("No component match found for %v, %v", purlName, purlType)
		return Component{}, nil
	}
	var c *semver.Constraints
	if len(purlReq) > 0 {
		s.Debugf("Building version constraint for %v: %v", purlName, purlReq)
		var err error
		c, err = semver.NewConstraint(purlReq)
		if err != nil {
			s.Warnf("Encountered an issue parsing version constraint string '%v' (%v,%v): %v", purlReq, purlName, purlType, err)
		}
	}
	var versions []*semver.Version
	var versionMap = make(map[*semver.Version]Component)
	for _, component := range components {
		v, ok := componentVersion(s, component)
		if !ok || (c != nil && !c.Check(v)) {
			continue
		}
		found := false
		for _, k := range versions {
			if k.Equal(v) {
				found = true // rows are ordered newest first, keep the first one seen
				break
			}
		}
		if !found {
			versions = append(versions, v)
			versionMap[v] = component
		}
	}
	if len(versions) == 0 {
		s.Warnf("No component match found for %v, %v after filter %v", purlName, purlType, purlReq)
		return Component{}, nil
	}
	sort.Sort(semver.Collection(versions))
	version := versions[len(versions)-1] // Get the latest (acceptable) version
	component, ok := versionMap[version]
	if !ok {
		s.Errorf("Problem retrieving component data for %v (%v, %v)", version, purlName, purlType)
		return Component{}, fmt.Errorf("failed to retrieve specific component version: %v", version)
	}
	s.Debugf("Selected version: %#v", component)
	return component, nil
}

// LatestComponentVersion returns the highest known version of a component.
func LatestComponentVersion(s *zap.SugaredLogger, components []Component, purlName, purlType string) (Component, error) {
	return PickComponentVersion(s, components, purlName, purlType, "")
}

// FindComponentVersion returns the component row for an exact version string. A leading 'v' is ignored.
func FindComponentVersion(components []Component, version string) (Component, bool) {
	want := strings.TrimPrefix(version, "v")
	for _, c := range components {
		if c.Version == version || strings.TrimPrefix(c.Version, "v") == want {
			return c, true
		}
	}
	return Component{}, false
}
