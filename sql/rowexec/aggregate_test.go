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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/expression"
)

func salesSchema() *sql.Schema {
	return sql.NewSchema(
		sql.Column{Name: "region", Type: sql.String},
		sql.Column{Name: "amount", Type: sql.Float},
	)
}

func TestAggregateGroupsByKeyAndSums(t *testing.T) {
	schema := salesSchema()
	rows := []*sql.Row{
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(10)}),
		sql.NewRow(schema, []sql.Value{sql.NewString("west"), sql.NewFloat(5)}),
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(20)}),
	}

	groupBy := []expression.Expression{&expression.Column{Name: "region"}}
	sumExpr := &expression.Aggregate{Op: expression.AggSum, Child: &expression.Column{Name: "amount"}}
	aggregates := map[string]*expression.Aggregate{sumExpr.String(): sumExpr}

	agg, err := NewAggregate(newMemIter(schema, rows), groupBy, aggregates, catalog.NewVariableStore())
	require.NoError(t, err)
	require.NoError(t, agg.Init())

	out := drain(t, agg)
	require.Len(t, out, 2)

	r0, _ := out[0].Get("#region")
	s0, _ := out[0].Get(sumExpr.String())
	r1, _ := out[1].Get("#region")
	s1, _ := out[1].Get(sumExpr.String())
	assert.Equal(t, sql.NewString("east"), r0)
	assert.Equal(t, sql.NewFloat(30), s0)
	assert.Equal(t, sql.NewString("west"), r1)
	assert.Equal(t, sql.NewFloat(5), s1)
}

func TestAggregateCountIgnoresInvalidValues(t *testing.T) {
	schema := salesSchema()
	rows := []*sql.Row{
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(10)}),
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewInvalid()}),
	}

	groupBy := []expression.Expression{&expression.Column{Name: "region"}}
	countExpr := &expression.Aggregate{Op: expression.AggCount, Child: &expression.Column{Name: "amount"}}
	aggregates := map[string]*expression.Aggregate{countExpr.String(): countExpr}

	agg, err := NewAggregate(newMemIter(schema, rows), groupBy, aggregates, catalog.NewVariableStore())
	require.NoError(t, err)
	require.NoError(t, agg.Init())

	out := drain(t, agg)
	require.Len(t, out, 1)
	c, _ := out[0].Get(countExpr.String())
	assert.Equal(t, sql.NewFloat(1), c)
}

func TestAggregateMinMax(t *testing.T) {
	schema := salesSchema()
	rows := []*sql.Row{
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(10)}),
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(20)}),
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(5)}),
	}

	groupBy := []expression.Expression{&expression.Column{Name: "region"}}
	minExpr := &expression.Aggregate{Op: expression.AggMin, Child: &expression.Column{Name: "amount"}}
	maxExpr := &expression.Aggregate{Op: expression.AggMax, Child: &expression.Column{Name: "amount"}}
	aggregates := map[string]*expression.Aggregate{
		minExpr.String(): minExpr,
		maxExpr.String(): maxExpr,
	}

	agg, err := NewAggregate(newMemIter(schema, rows), groupBy, aggregates, catalog.NewVariableStore())
	require.NoError(t, err)
	require.NoError(t, agg.Init())

	out := drain(t, agg)
	require.Len(t, out, 1)
	min, _ := out[0].Get(minExpr.String())
	max, _ := out[0].Get(maxExpr.String())
	assert.Equal(t, sql.NewFloat(5), min)
	assert.Equal(t, sql.NewFloat(20), max)
}

func TestAggregateNoGroupByProducesSingleGroup(t *testing.T) {
	schema := salesSchema()
	rows := []*sql.Row{
		sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(1)}),
		sql.NewRow(schema, []sql.Value{sql.NewString("west"), sql.NewFloat(2)}),
	}

	countExpr := &expression.Aggregate{Op: expression.AggCount, Child: &expression.Column{Name: "amount"}}
	aggregates := map[string]*expression.Aggregate{countExpr.String(): countExpr}

	agg, err := NewAggregate(newMemIter(schema, rows), nil, aggregates, catalog.NewVariableStore())
	require.NoError(t, err)
	require.NoError(t, agg.Init())

	out := drain(t, agg)
	require.Len(t, out, 1)
	c, _ := out[0].Get(countExpr.String())
	assert.Equal(t, sql.NewFloat(2), c)
}

func TestAggregateInitResetsReadPosition(t *testing.T) {
	schema := salesSchema()
	rows := []*sql.Row{sql.NewRow(schema, []sql.Value{sql.NewString("east"), sql.NewFloat(1)})}

	countExpr := &expression.Aggregate{Op: expression.AggCount, Child: &expression.Column{Name: "amount"}}
	aggregates := map[string]*expression.Aggregate{countExpr.String(): countExpr}

	agg, err := NewAggregate(newMemIter(schema, rows), nil, aggregates, catalog.NewVariableStore())
	require.NoError(t, err)
	require.NoError(t, agg.Init())
	drain(t, agg)

	require.NoError(t, agg.Init())
	out := drain(t, agg)
	assert.Len(t, out, 1)
}
