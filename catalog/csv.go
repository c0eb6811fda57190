// Copyright 2020-2021 Dolthub, Inc.
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

package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
)

// parseSchemaHeader parses "name:type[,name:type]*" with type in
// {float, char}, matching the header line format a Table dumps.
func parseSchemaHeader(header string) (*sql.Schema, error) {
	fields := strings.Split(header, ",")
	columns := make([]sql.Column, 0, len(fields))
	for _, f := range fields {
		parts := strings.SplitN(strings.TrimSpace(f), ":", 2)
		if len(parts) != 2 {
			return nil, errs.ErrIO.New("malformed schema header field " + f)
		}
		name := parts[0]
		var tag sql.Tag
		switch parts[1] {
		case "float":
			tag = sql.Float
		case "char":
			tag = sql.String
		default:
			return nil, errs.ErrIO.New("unknown column type " + parts[1] + " for column " + name)
		}
		columns = append(columns, sql.Column{Name: name, Type: tag})
	}
	return sql.NewSchema(columns...), nil
}

// formatSchemaHeader renders a Schema back into the header line format.
func formatSchemaHeader(schema *sql.Schema) string {
	parts := make([]string, 0, schema.Len())
	for _, c := range schema.Columns() {
		typeName := "char"
		if c.Type == sql.Float {
			typeName = "float"
		}
		parts = append(parts, c.Name+":"+typeName)
	}
	return strings.Join(parts, ",")
}

// LoadCSV reads <name>.csv (header + rows, no quoting or escaping) and
// returns a Table with a clear dirty flag.
func LoadCSV(name, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.ErrIO.New(errors.Wrapf(err, "opening %s", path).Error())
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, errs.ErrIO.New("cannot read schema header from " + path)
	}
	schema, err := parseSchemaHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	table := NewTable(name, schema)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != schema.Len() {
			return nil, errs.ErrIO.New(fmt.Sprintf("row %q has %d fields, schema wants %d", line, len(fields), schema.Len()))
		}
		values := make([]sql.Value, schema.Len())
		for i, col := range schema.Columns() {
			switch col.Type {
			case sql.Float:
				v, err := cast.ToFloat64E(fields[i])
				if err != nil {
					return nil, errs.ErrIO.New(errors.Wrapf(err, "parsing column %s", col.Name).Error())
				}
				values[i] = sql.NewFloat(v)
			default:
				values[i] = sql.NewString(fields[i])
			}
		}
		table.rows = append(table.rows, sql.NewRow(schema, values))
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.ErrIO.New(errors.Wrapf(err, "reading %s", path).Error())
	}

	return table, nil
}

// DumpCSV writes the table's live (non-tombstoned) rows to path. Bool
// columns never appear in a persisted schema, since aggregation output
// is never written back to a table.
func DumpCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.ErrIO.New(errors.Wrapf(err, "creating %s", path).Error())
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(w, formatSchemaHeader(t.Schema())); err != nil {
		return errs.ErrIO.New(err.Error())
	}
	for _, row := range t.Rows() {
		if row.Tombstoned() {
			continue
		}
		fields := make([]string, len(row.Values()))
		for i, v := range row.Values() {
			fields[i] = v.String()
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return errs.ErrIO.New(err.Error())
		}
	}
	if err := w.Flush(); err != nil {
		return errs.ErrIO.New(errors.Wrapf(err, "flushing %s", path).Error())
	}
	return nil
}
