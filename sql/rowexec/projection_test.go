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

func TestProjectionWithChildEvaluatesPerRow(t *testing.T) {
	schema := agesSchema()
	rows := rowsOf(schema, 2, 3)
	exprs := []expression.Expression{&expression.Unary{Op: expression.OpSqr, Child: &expression.Column{Name: "age"}}}

	p := NewProjection(newMemIter(schema, rows), exprs, catalog.NewVariableStore())
	require.NoError(t, p.Init())

	out := drain(t, p)
	require.Len(t, out, 2)
	v0, _ := out[0].Get(exprs[0].String())
	v1, _ := out[1].Get(exprs[0].String())
	assert.Equal(t, sql.NewFloat(4), v0)
	assert.Equal(t, sql.NewFloat(9), v1)
}

func TestProjectionTablelessConstEmitsOnce(t *testing.T) {
	exprs := []expression.Expression{&expression.Const{Value: sql.NewFloat(7)}}
	p := NewProjection(nil, exprs, catalog.NewVariableStore())
	require.NoError(t, p.Init())

	out := drain(t, p)
	require.Len(t, out, 1)
	v0, _ := out[0].Get(exprs[0].String())
	assert.Equal(t, sql.NewFloat(7), v0)
}

func TestProjectionTablelessVariableSequenceStopsAtInvalid(t *testing.T) {
	vars := catalog.NewVariableStore()
	vars.Set("x", []sql.Value{sql.NewFloat(1), sql.NewFloat(2), sql.NewFloat(3)})
	exprs := []expression.Expression{&expression.Variable{Name: "x"}}

	p := NewProjection(nil, exprs, vars)
	require.NoError(t, p.Init())

	out := drain(t, p)
	require.Len(t, out, 3)
	v0, _ := out[0].Get(exprs[0].String())
	v2, _ := out[2].Get(exprs[0].String())
	assert.Equal(t, sql.NewFloat(1), v0)
	assert.Equal(t, sql.NewFloat(3), v2)
}

func TestProjectionColumnNamesAreExpressionText(t *testing.T) {
	exprs := []expression.Expression{&expression.Column{Name: "age"}}
	p := NewProjection(newMemIter(agesSchema(), nil), exprs, catalog.NewVariableStore())
	assert.Equal(t, "#age", p.Schema().Names()[0])
}
