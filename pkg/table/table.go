// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package table reads the copy operations and homepages tables.
package table

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📋 CopyRow is one raw row of the copy operations table (columns from, to, prefix)
type CopyRow struct {
	Line   int
	From   string
	To     string
	Prefix string
}

// 🏠 Homepage is one row of the homepages table (columns homepage_id, protected)
type Homepage struct {
	ID        string
	Protected bool
}

// ReadCopyRows reads the copy operations table from a file
func ReadCopyRows(path string) ([]CopyRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening copy operations: %w", err)
	}
	defer f.Close()

	return ParseCopyRows(f)
}

// ParseCopyRows parses a copy operations table. Rows are returned as they are; validation belongs to the loader.
func ParseCopyRows(r io.Reader) ([]CopyRow, error) {
	header, records, err := readAll(r)
	if err != nil {
		return nil, errors.Errorf("reading copy operations: %w", err)
	}
	if header == nil {
		return nil, nil
	}

	from, err := header.require("from")
	if err != nil {
		return nil, err
	}
	to, err := header.require("to")
	if err != nil {
		return nil, err
	}
	prefix := header.index("prefix")

	rows := make([]CopyRow, 0, len(records))
	for i, rec := range records {
		rows = append(rows, CopyRow{
			Line:   i + 2,
			From:   field(rec, from),
			To:     field(rec, to),
			Prefix: field(rec, prefix),
		})
	}
	return rows, nil
}

// ReadHomepages reads the homepages table from a file
func ReadHomepages(path string) ([]Homepage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening homepages: %w", err)
	}
	defer f.Close()

	return ParseHomepages(f)
}

// ParseHomepages parses a homepages table. An unparseable protected cell fails the whole table.
func ParseHomepages(r io.Reader) ([]Homepage, error) {
	header, records, err := readAll(r)
	if err != nil {
		return nil, errors.Errorf("reading homepages: %w", err)
	}
	if header == nil {
		return nil, nil
	}

	id, err := header.require("homepage_id")
	if err != nil {
		return nil, err
	}
	protected := header.index("protected")

	var homepages []Homepage
	for i, rec := range records {
		hid := field(rec, id)
		if hid == "" {
			continue
		}
		p, err := ParseProtected(field(rec, protected))
		if err != nil {
			return nil, errors.Errorf("homepages line %d: %w", i+2, err)
		}
		homepages = append(homepages, Homepage{ID: hid, Protected: p})
	}
	return homepages, nil
}

// ParseProtected is the single interpretation of the protected column: empty is false,
// otherwise the value must be a boolean strconv.ParseBool accepts.
func ParseProtected(v string) (bool, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false, errors.Errorf("invalid protected value %q", v)
	}
	return b, nil
}

type header map[string]int

func (h header) index(name string) int {
	if i, ok := h[name]; ok {
		return i
	}
	return -1
}

func (h header) require(name string) (int, error) {
	i := h.index(name)
	if i < 0 {
		return 0, errors.Errorf("missing column %q", name)
	}
	return i, nil
}

func readAll(r io.Reader) (header, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	h := header{}
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h, records[1:], nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
