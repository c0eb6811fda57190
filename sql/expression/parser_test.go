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

package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/token"
)

// parseExpr tokenizes a bare expression by wrapping it in a throwaway
// select statement and dropping the leading keyword token.
func parseExpr(t *testing.T, text string) Expression {
	t.Helper()
	cmds, err := token.Canonicalize("select " + text + ";")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	expr, err := Parse(cmds[0].Tokens[1:])
	require.NoError(t, err)
	return expr
}

func evalExpr(t *testing.T, expr Expression, row *sql.Row, vars *catalog.VariableStore) sql.Value {
	t.Helper()
	v, err := expr.Eval(row, vars, 0)
	require.NoError(t, err)
	return v
}

func TestParsePrecedenceMultiplicationBeforeAddition(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	v := evalExpr(t, expr, nil, nil)
	assert.Equal(t, sql.NewFloat(7), v)
}

func TestParsePrecedenceParenthesesOverride(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")
	v := evalExpr(t, expr, nil, nil)
	assert.Equal(t, sql.NewFloat(9), v)
}

func TestParseUnaryMinusBindsTighterThanBinaryMinus(t *testing.T) {
	expr := parseExpr(t, "5 - ~2")
	v := evalExpr(t, expr, nil, nil)
	assert.Equal(t, sql.NewFloat(7), v)
}

func TestParseComparisonAndLogical(t *testing.T) {
	expr := parseExpr(t, "1 < 2 and 3 > 2")
	v := evalExpr(t, expr, nil, nil)
	assert.Equal(t, sql.NewBool(true), v)
}

func TestParseStringConcatenation(t *testing.T) {
	expr := parseExpr(t, "'foo' + 'bar'")
	v := evalExpr(t, expr, nil, nil)
	assert.Equal(t, sql.NewString("foobar"), v)
}

func TestParseFunctionCall(t *testing.T) {
	expr := parseExpr(t, "sqr(3)")
	v := evalExpr(t, expr, nil, nil)
	assert.Equal(t, sql.NewFloat(9), v)
}

func TestParseColumnAgainstRow(t *testing.T) {
	schema := sql.NewSchema(sql.Column{Name: "age", Type: sql.Float})
	row := sql.NewRow(schema, []sql.Value{sql.NewFloat(42)})

	expr := parseExpr(t, "#age * 2")
	v := evalExpr(t, expr, row, nil)
	assert.Equal(t, sql.NewFloat(84), v)
}

func TestParseVariableSequenceByIndex(t *testing.T) {
	vars := catalog.NewVariableStore()
	vars.Set("x", []sql.Value{sql.NewFloat(1), sql.NewFloat(2), sql.NewFloat(3)})

	expr := parseExpr(t, "@x * @x")
	v, err := expr.Eval(nil, vars, 1)
	require.NoError(t, err)
	assert.Equal(t, sql.NewFloat(4), v)
}

func TestParseInOperator(t *testing.T) {
	vars := catalog.NewVariableStore()
	vars.Set("set", []sql.Value{sql.NewFloat(1), sql.NewFloat(2), sql.NewFloat(3)})

	expr := parseExpr(t, "2 in @set")
	v := evalExpr(t, expr, nil, vars)
	assert.Equal(t, sql.NewBool(true), v)

	expr = parseExpr(t, "9 in @set")
	v = evalExpr(t, expr, nil, vars)
	assert.Equal(t, sql.NewBool(false), v)
}

func TestParseMissingOperandIsParseError(t *testing.T) {
	cmds, err := token.Canonicalize("select 1 + ;")
	require.NoError(t, err)
	_, err = Parse(cmds[0].Tokens[1:])
	assert.Error(t, err)
}

func TestEvalPropagatesInvalidThroughArithmetic(t *testing.T) {
	vars := catalog.NewVariableStore()
	vars.Set("x", []sql.Value{sql.NewFloat(1)})

	expr := parseExpr(t, "@x + 1")
	v, err := expr.Eval(nil, vars, 5)
	require.NoError(t, err)
	assert.True(t, v.IsInvalid())
}

func TestEvalMismatchedComparisonTagsIsEvalError(t *testing.T) {
	expr := parseExpr(t, "1 = 'x'")
	_, err := expr.Eval(nil, nil, 0)
	assert.Error(t, err)
}
