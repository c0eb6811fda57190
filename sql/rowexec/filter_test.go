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

func agesSchema() *sql.Schema {
	return sql.NewSchema(sql.Column{Name: "age", Type: sql.Float})
}

func TestFilterKeepsOnlyTrueRows(t *testing.T) {
	schema := agesSchema()
	rows := []*sql.Row{
		sql.NewRow(schema, []sql.Value{sql.NewFloat(30)}),
		sql.NewRow(schema, []sql.Value{sql.NewFloat(10)}),
		sql.NewRow(schema, []sql.Value{sql.NewFloat(25)}),
	}
	predicate := &expression.Binary{
		Op:    expression.OpGt,
		Left:  &expression.Column{Name: "age"},
		Right: &expression.Const{Value: sql.NewFloat(18)},
	}
	f := NewFilter(newMemIter(schema, rows), predicate, catalog.NewVariableStore())
	require.NoError(t, f.Init())

	out := drain(t, f)
	require.Len(t, out, 2)
	v0, _ := out[0].Get("age")
	v1, _ := out[1].Get("age")
	assert.Equal(t, sql.NewFloat(30), v0)
	assert.Equal(t, sql.NewFloat(25), v1)
}

func TestFilterNonBoolPredicateIsEvalError(t *testing.T) {
	schema := agesSchema()
	rows := []*sql.Row{sql.NewRow(schema, []sql.Value{sql.NewFloat(30)})}
	predicate := &expression.Column{Name: "age"}
	f := NewFilter(newMemIter(schema, rows), predicate, catalog.NewVariableStore())
	require.NoError(t, f.Init())

	_, _, err := f.Next()
	assert.Error(t, err)
}

func TestFilterSchemaPassesThroughChild(t *testing.T) {
	schema := agesSchema()
	f := NewFilter(newMemIter(schema, nil), &expression.Const{Value: sql.NewBool(true)}, nil)
	assert.Same(t, schema, f.Schema())
}
