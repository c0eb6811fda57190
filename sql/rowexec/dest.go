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

// Dest passes child rows through unchanged, appending each emitted row's
// i-th column value to variable names[i]. An empty name discards that
// slot. Destinations beyond the row's column count receive Invalid.
type Dest struct {
	child RowIter
	names []string
	vars  *catalog.VariableStore
}

// NewDest wraps child, recording every emitted row's columns into vars
// under names.
func NewDest(child RowIter, names []string, vars *catalog.VariableStore) *Dest {
	return &Dest{child: child, names: names, vars: vars}
}

func (d *Dest) Schema() *sql.Schema { return d.child.Schema() }

func (d *Dest) Init() error { return d.child.Init() }

func (d *Dest) Next() (*sql.Row, bool, error) {
	row, ok, err := d.child.Next()
	if err != nil || !ok {
		return nil, ok, err
	}

	values := row.Values()
	for i, name := range d.names {
		if name == "" {
			continue
		}
		if i < len(values) {
			d.vars.Append(name, values[i])
		} else {
			d.vars.Append(name, sql.NewInvalid())
		}
	}
	return row, true, nil
}
