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
	"fmt"
	"strings"
)

// QuerySummary records what happened to each requested purl.
type QuerySummary struct {
	TotalPurls         int
	PurlsFailedToParse []string
	PurlsNotFound      []string
	PurlsWOInfo        []string // found, but without vendor or license details
}

// Failed returns the number of purls that produced no component.
func (q QuerySummary) Failed() int {
	return len(q.PurlsFailedToParse) + len(q.PurlsNotFound)
}

// Messages describes each type of purl failure.
func (q QuerySummary) Messages() []string {
	var messages []string
	if len(q.PurlsFailedToParse) > 0 {
		messages = append(messages, fmt.Sprintf("Failed to parse %d purl(s):%s",
			len(q.PurlsFailedToParse), strings.Join(q.PurlsFailedToParse, ",")))
	}
	if len(q.PurlsNotFound) > 0 {
		messages = append(messages, fmt.Sprintf("Can't find %d purl(s):%s",
			len(q.PurlsNotFound), strings.Join(q.PurlsNotFound, ",")))
	}
	if len(q.PurlsWOInfo) > 0 {
		messages = append(messages, fmt.Sprintf("Can't find information for %d purl(s):%s",
			len(q.PurlsWOInfo), strings.Join(q.PurlsWOInfo, ",")))
	}
	return messages
}
