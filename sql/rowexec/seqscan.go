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

import (
	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/sql"
)

// SeqScan emits a table's rows in insertion order, skipping tombstoned
// rows. It has no child.
type SeqScan struct {
	table *catalog.Table
	pos   int
}

// NewSeqScan returns a scan over table.
func NewSeqScan(table *catalog.Table) *SeqScan {
	return &SeqScan{table: table}
}

func (s *SeqScan) Schema() *sql.Schema { return s.table.Schema() }

func (s *SeqScan) Init() error {
	s.pos = 0
	return nil
}

func (s *SeqScan) Next() (*sql.Row, bool, error) {
	rows := s.table.Rows()
	for s.pos < len(rows) {
		row := rows[s.pos]
		s.pos++
		if !row.Tombstoned() {
			return row, true, nil
		}
	}
	return nil, false, nil
}
