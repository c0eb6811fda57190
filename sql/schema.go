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

import "fmt"

// Column is a (type, name) pair. Type is advisory for CSV-backed columns;
// it is Invalid for any column whose values may carry different tags at
// runtime, such as aggregate output.
type Column struct {
	Name string
	Type Tag
}

// Schema is an ordered, immutable sequence of columns. Names are unique
// within a schema; lookup is by name, ordinal position is incidental.
type Schema struct {
	columns []Column
	index   map[string]int
}

// NewSchema builds an immutable Schema from an ordered column list.
// Duplicate names are not rejected; IndexOf then resolves such a name to
// the last column that carries it.
func NewSchema(columns ...Column) *Schema {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c.Name] = i
	}
	cp := make([]Column, len(columns))
	copy(cp, columns)
	return &Schema{columns: cp, index: idx}
}

// Columns returns the ordered column list. Callers must not mutate it.
func (s *Schema) Columns() []Column { return s.columns }

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// IndexOf returns the ordinal of a column by name, or -1 if absent.
func (s *Schema) IndexOf(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Names returns the column names in order; the session uses them as the
// column names of result rows.
func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.Name
	}
	return names
}

func (s *Schema) String() string {
	out := ""
	for i, c := range s.columns {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%s:%s", c.Name, c.Type)
	}
	return out
}
