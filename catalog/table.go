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

// Package catalog holds the in-memory table store, the variable store,
// and CSV load/dump plumbing.
package catalog

import (
	"github.com/cqlkit/cql/sql"
)

// Table is a Schema plus an ordered slice of Rows plus a dirty flag. Row
// ordering is insertion order; deletes tombstone rather than splice, so
// row indices are stable across a statement's lifetime.
type Table struct {
	name   string
	schema *sql.Schema
	rows   []*sql.Row
	dirty  bool
}

// NewTable returns an empty table bound to schema.
func NewTable(name string, schema *sql.Schema) *Table {
	return &Table{name: name, schema: schema}
}

func (t *Table) Name() string       { return t.name }
func (t *Table) Schema() *sql.Schema { return t.schema }
func (t *Table) Dirty() bool        { return t.dirty }

// MarkClean clears the dirty flag; called by the driver right after a
// successful CSV dump.
func (t *Table) MarkClean() { t.dirty = false }

// Rows returns the live backing slice, including tombstoned rows. Scan
// executors must skip tombstoned rows themselves.
func (t *Table) Rows() []*sql.Row {
	return t.rows
}

// Insert appends a new row built from values (already coerced to the
// schema's column types by the caller) and marks the table dirty.
func (t *Table) Insert(values []sql.Value) *sql.Row {
	row := sql.NewRow(t.schema, values)
	t.rows = append(t.rows, row)
	t.dirty = true
	return row
}

// Delete tombstones row in place; it stays in Rows() for the table's
// lifetime, and scans and dumps skip it.
func (t *Table) Delete(row *sql.Row) {
	row.Delete()
	t.dirty = true
}

// MarkDirty is used by update paths that mutate a row's columns through
// sql.Row.Set directly; the table itself has no knowledge of which
// columns changed.
func (t *Table) MarkDirty() {
	t.dirty = true
}

// NumRows counts live (non-tombstoned) rows.
func (t *Table) NumRows() int {
	n := 0
	for _, r := range t.rows {
		if !r.Tombstoned() {
			n++
		}
	}
	return n
}
