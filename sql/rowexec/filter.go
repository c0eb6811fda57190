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
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/expression"
)

// Filter pulls from its child and drops rows whose predicate does not
// evaluate to Bool(true).
type Filter struct {
	child     RowIter
	predicate expression.Expression
	vars      *catalog.VariableStore
}

// NewFilter wraps child, dropping rows that fail predicate.
func NewFilter(child RowIter, predicate expression.Expression, vars *catalog.VariableStore) *Filter {
	return &Filter{child: child, predicate: predicate, vars: vars}
}

func (f *Filter) Schema() *sql.Schema { return f.child.Schema() }

func (f *Filter) Init() error { return f.child.Init() }

func (f *Filter) Next() (*sql.Row, bool, error) {
	for {
		row, ok, err := f.child.Next()
		if err != nil || !ok {
			return nil, ok, err
		}
		v, err := f.predicate.Eval(row, f.vars, 0)
		if err != nil {
			return nil, false, err
		}
		if v.Tag() != sql.Bool {
			return nil, false, errs.ErrEval.New("filter predicate did not evaluate to bool")
		}
		if v.Bool() {
			return row, true, nil
		}
	}
}
