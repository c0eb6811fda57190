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
	"github.com/cqlkit/cql/sql/planbuilder"
)

// Plan wraps executors around a Select BoundStatement in the fixed
// pipeline order: Scan -> Filter -> Aggregate -> (Having) -> Sort ->
// Limit -> Projection -> Dest. Any layer is skipped when its bound slot
// is empty.
func Plan(stmt *planbuilder.BoundStatement, cat *catalog.Catalog) (RowIter, error) {
	vars := cat.Variables()

	var child RowIter
	if stmt.Table != "" {
		table, err := cat.Table(stmt.Table)
		if err != nil {
			return nil, err
		}
		child = NewSeqScan(table)
	}

	if stmt.Where != nil && child != nil {
		child = NewFilter(child, stmt.Where, vars)
	}

	projections := stmt.Projections
	orderBy := stmt.OrderBy
	having := stmt.Having

	aggregates := expression.FindAggregates(allTrees(projections, orderBy, having)...)
	if len(aggregates) > 0 || len(stmt.GroupBy) > 0 {
		source := child
		if source == nil {
			source = &oneRowSource{}
		}
		agg, err := NewAggregate(source, stmt.GroupBy, aggregates, vars)
		if err != nil {
			return nil, err
		}
		child = agg

		projections = rewriteAll(projections)
		orderBy = rewriteOrderKeys(orderBy)
		if having != nil {
			having = expression.RewriteAggregates(having)
		}
	}

	if having != nil {
		if child == nil {
			child = &oneRowSource{}
		}
		child = NewFilter(child, having, vars)
	}

	if len(orderBy) > 0 {
		child = NewSort(child, orderBy, vars)
	}

	if stmt.Limit >= 0 || stmt.Offset > 0 {
		child = NewLimit(child, stmt.Limit, stmt.Offset)
	}

	result := NewProjection(child, projections, vars)

	var out RowIter = result
	if len(stmt.Dest) > 0 {
		out = NewDest(result, stmt.Dest, vars)
	}
	return out, nil
}

func allTrees(projections []expression.Expression, orderBy []planbuilder.OrderKey, having expression.Expression) []expression.Expression {
	trees := make([]expression.Expression, 0, len(projections)+len(orderBy)+1)
	trees = append(trees, projections...)
	for _, k := range orderBy {
		trees = append(trees, k.Expr)
	}
	if having != nil {
		trees = append(trees, having)
	}
	return trees
}

func rewriteAll(exprs []expression.Expression) []expression.Expression {
	out := make([]expression.Expression, len(exprs))
	for i, e := range exprs {
		out[i] = expression.RewriteAggregates(e)
	}
	return out
}

func rewriteOrderKeys(keys []planbuilder.OrderKey) []planbuilder.OrderKey {
	out := make([]planbuilder.OrderKey, len(keys))
	for i, k := range keys {
		out[i] = planbuilder.OrderKey{Expr: expression.RewriteAggregates(k.Expr), Desc: k.Desc}
	}
	return out
}

// oneRowSource emits exactly one zero-column row, letting an aggregate
// with no FROM clause (e.g. "select count(1);") still have a child to
// drain.
type oneRowSource struct {
	schema *sql.Schema
	done   bool
}

func (o *oneRowSource) Schema() *sql.Schema {
	if o.schema == nil {
		o.schema = sql.NewSchema()
	}
	return o.schema
}

func (o *oneRowSource) Init() error {
	o.done = false
	return nil
}

func (o *oneRowSource) Next() (*sql.Row, bool, error) {
	if o.done {
		return nil, false, nil
	}
	o.done = true
	return sql.NewRow(o.Schema(), nil), true, nil
}
