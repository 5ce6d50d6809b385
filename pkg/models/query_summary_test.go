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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuerySummaryMessages(t *testing.T) {
	tests := []struct {
		name     string
		summary  QuerySummary
		failed   int
		expected []string
	}{
		{
			name:     "all good",
			summary:  QuerySummary{TotalPurls: 2},
			failed:   0,
			expected: nil,
		},
		{
			name: "mixed",
			summary: QuerySummary{
				TotalPurls:         4,
				PurlsFailedToParse: []string{"bad"},
				PurlsNotFound:      []string{"pkg:npm/a", "pkg:npm/b"},
				PurlsWOInfo:        []string{"pkg:npm/c"},
			},
			failed: 3,
			expected: []string{
				"Failed to parse 1 purl(s):bad",
				"Can't find 2 purl(s):pkg:npm/a,pkg:npm/b",
				"Can't find information for 1 purl(s):pkg:npm/c",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.summary.Failed() != tt.failed {
				t.Errorf("Failed() = %d, expected %d", tt.summary.Failed(), tt.failed)
			}
			if diff := cmp.Diff(tt.expected, tt.summary.Messages()); diff != "" {
				t.Errorf("Messages() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
