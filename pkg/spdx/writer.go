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

// Package spdx streams an SPDX 2.0 flavoured JSON inventory report.
//
// A report session is Open, zero or more WriteComponent calls, then Close.
// Entries are written to the sink as they arrive; nothing is buffered between calls.
package spdx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"scanoss.com/inventory/pkg/dtos"
)

// State is the position of a ReportWriter in its session.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrProtocol is wrapped by every out of order call error.
var ErrProtocol = errors.New("spdx report called out of order")

var (
	ErrNotOpen     = fmt.Errorf("%w: report has not been opened", ErrProtocol)
	ErrAlreadyOpen = fmt.Errorf("%w: report has already been opened", ErrProtocol)
	ErrClosed      = fmt.Errorf("%w: report has already been closed", ErrProtocol)
)

// WriteError reports a failure writing to the sink. The session cannot continue after one.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write spdx report (%s): %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// ReportWriter writes a single report session to one sink.
type ReportWriter struct {
	sink  io.Writer
	cfg   Config
	now   Timestamper
	state State
	count int
	err   error
}

// Option customises a ReportWriter.
type Option func(*ReportWriter)

// WithConfig replaces the document constants. Empty fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(r *ReportWriter) {
		r.cfg = cfg.withDefaults()
	}
}

// WithTimestamper replaces the creation date source.
func WithTimestamper(ts Timestamper) Option {
	return func(r *ReportWriter) {
		if ts != nil {
			r.now = ts
		}
	}
}

// NewReportWriter creates a writer bound to sink. The caller owns the sink and must not
// write to it until the session is closed.
func NewReportWriter(sink io.Writer, opts ...Option) *ReportWriter {
	r := &ReportWriter{sink: sink, cfg: DefaultConfig(), now: Datestamp}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current session state.
func (r *ReportWriter) State() State {
	return r.state
}

// Count returns the number of package entries written so far.
func (r *ReportWriter) Count() int {
	return r.count
}

// Open writes the document preamble and leaves the Packages array open.
func (r *ReportWriter) Open() error {
	if err := r.expect("open", StateUnopened); err != nil {
		return err
	}
	c := r.cfg
	var b bytes.Buffer
	b.WriteString("{\n")
	b.WriteString("  \"Document\": {\n")
	member(&b, 4, "specVersion", quote(c.SpecVersion), true)
	b.WriteString("    \"creationInfo\": {\n")
	b.WriteString("      \"creators\": [\n")
	for i, creator := range c.Creators {
		b.WriteString(strings.Repeat(" ", 8))
		b.WriteString(quote(creator))
		if i < len(c.Creators)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("      ],\n")
	member(&b, 6, "comment", quote(c.CreationComment), true)
	member(&b, 6, "licenseListVersion", quote(c.LicenseListVersion), true)
	member(&b, 6, "created", quote(r.now()), false)
	b.WriteString("    },\n")
	member(&b, 4, "spdxVersion", quote(c.SPDXVersion), true)
	member(&b, 4, "dataLicense", quote(c.DataLicense), true)
	member(&b, 4, "id", quote(c.DocumentID), true)
	member(&b, 4, "name", quote(c.DocumentName), true)
	member(&b, 4, "comment", quote(c.DocumentComment), true)
	member(&b, 4, "externalDocumentRefs", "[]", true)
	b.WriteString("    \"Packages\": [")
	if err := r.emit("open", b.Bytes()); err != nil {
		return err
	}
	r.state = StateOpen
	return nil
}

// WriteComponent appends one package entry for the given record and flushes the sink.
// Records are never merged; writing the same record twice yields two entries.
func (r *ReportWriter) WriteComponent(record dtos.ComponentRecord) error {
	if err := r.expect("write component", StateOpen); err != nil {
		return err
	}
	var b bytes.Buffer
	if r.count > 0 {
		b.WriteByte(',')
	}
	b.WriteString("\n      {\n")
	member(&b, 8, "name", quote(record.Name), true)
	member(&b, 8, "versionInfo", quote(versionInfo(record.Version, record.LatestVersion)), true)
	member(&b, 8, "supplier", quote(record.Vendor), true)
	member(&b, 8, "downloadLocation", quote(record.PackageURL), true)
	member(&b, 8, "description", quote(r.cfg.PackageDescription), true)
	member(&b, 8, "licenseConcluded", `""`, true)
	member(&b, 8, "licenseInfoFromFiles", quote(record.License), false)
	b.WriteString("      }")
	if err := r.emit("write component", b.Bytes()); err != nil {
		return err
	}
	r.count++
	return nil
}

// Close terminates the Packages array, the Document object and the root object.
func (r *ReportWriter) Close() error {
	if err := r.expect("close", StateOpen); err != nil {
		return err
	}
	if err := r.emit("close", []byte("\n    ]\n  }\n}\n")); err != nil {
		return err
	}
	r.state = StateClosed
	return nil
}

// expect checks the session is in the wanted state before op runs.
func (r *ReportWriter) expect(op string, want State) error {
	if r.state == StateFailed {
		return r.err
	}
	if r.state == want {
		return nil
	}
	switch r.state {
	case StateUnopened:
		return fmt.Errorf("%s: %w", op, ErrNotOpen)
	case StateOpen:
		return fmt.Errorf("%s: %w", op, ErrAlreadyOpen)
	default:
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}
}

// emit writes p to the sink and flushes it. Any failure moves the writer to StateFailed.
func (r *ReportWriter) emit(op string, p []byte) error {
	_, err := r.sink.Write(p)
	if err == nil {
		if f, ok := r.sink.(flusher); ok {
			err = f.Flush()
		}
	}
	if err != nil {
		r.err = &WriteError{Op: op, Err: err}
		r.state = StateFailed
		return r.err
	}
	return nil
}

// versionInfo joins version and latest with a hyphen when they differ as plain strings.
func versionInfo(version, latest string) string {
	if version != latest {
		return version + "-" + latest
	}
	return version
}

func member(b *bytes.Buffer, indent int, key, value string, more bool) {
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(quote(key))
	b.WriteString(": ")
	b.WriteString(value)
	if more {
		b.WriteByte(',')
	}
	b.WriteByte('\n')
}

// quote returns s as a JSON string literal. HTML characters are left unescaped.
// Invalid UTF-8 bytes are replaced with U+FFFD, so such fields are not emitted verbatim.
func quote(s string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(b.String(), "\n")
}
