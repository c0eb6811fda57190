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

package sql

import "github.com/cqlkit/cql/errs"

// Row is a fixed-width ordered sequence of Values bound to a Schema, plus
// a tombstone flag. Row borrows its Schema; it does not own it.
type Row struct {
	schema    *Schema
	values    []Value
	tombstone bool
}

// NewRow builds a row against schema. len(values) must equal
// schema.Len(); this is a programmer invariant enforced by every
// constructor in catalog and rowexec, not a user-facing error.
func NewRow(schema *Schema, values []Value) *Row {
	if schema != nil && len(values) != schema.Len() {
		panic("sql.NewRow: value count does not match schema column count")
	}
	return &Row{schema: schema, values: values}
}

// Schema returns the row's (borrowed) schema.
func (r *Row) Schema() *Schema { return r.schema }

// Values returns the row's values in schema order. Callers must not
// mutate the returned slice directly; use Set.
func (r *Row) Values() []Value { return r.values }

// Tombstoned reports whether the row has been logically deleted.
func (r *Row) Tombstoned() bool { return r.tombstone }

// Delete sets the tombstone flag. Idempotent.
func (r *Row) Delete() { r.tombstone = true }

// Get returns the value of the named column.
func (r *Row) Get(name string) (Value, error) {
	idx := r.schema.IndexOf(name)
	if idx < 0 {
		return Value{}, errs.ErrEval.New("unknown column " + name)
	}
	return r.values[idx], nil
}

// Set overwrites the value of the named column in place. Returns false
// on a tombstoned row.
func (r *Row) Set(name string, v Value) (bool, error) {
	if r.tombstone {
		return false, nil
	}
	idx := r.schema.IndexOf(name)
	if idx < 0 {
		return false, errs.ErrEval.New("unknown column " + name)
	}
	r.values[idx] = v
	return true, nil
}

// Clone copies a row's values under the same (shared) schema, so the
// copy can be modified without affecting the original.
func (r *Row) Clone() *Row {
	cp := make([]Value, len(r.values))
	copy(cp, r.values)
	return &Row{schema: r.schema, values: cp, tombstone: r.tombstone}
}
