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

package rowexec

import "github.com/cqlkit/cql/sql"

// memIter replays a fixed slice of rows, for driving executors under
// test without a backing table.
type memIter struct {
	schema *sql.Schema
	rows   []*sql.Row
	pos    int
}

func newMemIter(schema *sql.Schema, rows []*sql.Row) *memIter {
	return &memIter{schema: schema, rows: rows}
}

func (m *memIter) Schema() *sql.Schema { return m.schema }

func (m *memIter) Init() error {
	m.pos = 0
	return nil
}

func (m *memIter) Next() (*sql.Row, bool, error) {
	if m.pos >= len(m.rows) {
		return nil, false, nil
	}
	row := m.rows[m.pos]
	m.pos++
	return row, true, nil
}

func drain(t interface {
	Fatalf(string, ...interface{})
}, it RowIter) []*sql.Row {
	var out []*sql.Row
	for {
		row, ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			return out
		}
		out = append(out, row)
	}
}
