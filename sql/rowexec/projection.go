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
	"github.com/cqlkit/cql/sql/expression"
)

// Projection evaluates a list of expressions, in one of three modes
// chosen in Next: pulled from a child row, a single constant row with no
// child, or an increasing index against variables with no child. Output
// columns are named after each expression's textual form; their type is
// left as sql.Invalid since a projected expression's value tag is
// dynamic per row.
type Projection struct {
	child  RowIter // nil for a tableless select
	exprs  []expression.Expression
	vars   *catalog.VariableStore
	schema *sql.Schema

	index     int
	exhausted bool
}

// NewProjection wraps child (nil for "select <const-exprs>;" with no
// from clause) and evaluates exprs for every emitted row.
func NewProjection(child RowIter, exprs []expression.Expression, vars *catalog.VariableStore) *Projection {
	columns := make([]sql.Column, len(exprs))
	for i, e := range exprs {
		columns[i] = sql.Column{Name: e.String(), Type: sql.Invalid}
	}
	return &Projection{child: child, exprs: exprs, vars: vars, schema: sql.NewSchema(columns...)}
}

func (p *Projection) Schema() *sql.Schema { return p.schema }

func (p *Projection) Init() error {
	p.index = 0
	p.exhausted = false
	if p.child != nil {
		return p.child.Init()
	}
	return nil
}

func (p *Projection) Next() (*sql.Row, bool, error) {
	if p.child != nil {
		childRow, ok, err := p.child.Next()
		if err != nil || !ok {
			return nil, ok, err
		}
		return p.eval(childRow, 0)
	}

	if allConst(p.exprs) {
		if p.exhausted {
			return nil, false, nil
		}
		p.exhausted = true
		return p.eval(nil, 0)
	}

	if p.exhausted {
		return nil, false, nil
	}
	row, err := p.eval(nil, p.index)
	if err != nil {
		return nil, false, err
	}
	if allInvalid(row) {
		p.exhausted = true
		return nil, false, nil
	}
	p.index++
	return row, true, nil
}

func (p *Projection) eval(row *sql.Row, index int) (*sql.Row, bool, error) {
	values := make([]sql.Value, len(p.exprs))
	for i, e := range p.exprs {
		v, err := e.Eval(row, p.vars, index)
		if err != nil {
			return nil, false, err
		}
		values[i] = v
	}
	return sql.NewRow(p.schema, values), true, nil
}

func allConst(exprs []expression.Expression) bool {
	for _, e := range exprs {
		if !expression.IsConst(e) {
			return false
		}
	}
	return true
}

func allInvalid(row *sql.Row) bool {
	for _, v := range row.Values() {
		if !v.IsInvalid() {
			return false
		}
	}
	return true
}
