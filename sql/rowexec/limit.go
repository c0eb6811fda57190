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

// Limit skips the first Offset rows pulled from its child, then emits up
// to Limit rows. Limit < 0 disables the ceiling; Offset == 0 disables
// skipping.
type Limit struct {
	child  RowIter
	limit  int
	offset int

	skipped int
	emitted int
}

// NewLimit wraps child. limit < 0 means unbounded.
func NewLimit(child RowIter, limit, offset int) *Limit {
	return &Limit{child: child, limit: limit, offset: offset}
}

func (l *Limit) Schema() *sql.Schema { return l.child.Schema() }

func (l *Limit) Init() error {
	l.skipped = 0
	l.emitted = 0
	return l.child.Init()
}

func (l *Limit) Next() (*sql.Row, bool, error) {
	for l.skipped < l.offset {
		_, ok, err := l.child.Next()
		if err != nil || !ok {
			return nil, ok, err
		}
		l.skipped++
	}

	if l.limit >= 0 && l.emitted >= l.limit {
		return nil, false, nil
	}

	row, ok, err := l.child.Next()
	if err != nil || !ok {
		return nil, ok, err
	}
	l.emitted++
	return row, true, nil
}
