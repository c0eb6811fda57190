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

// Package expression implements the operator-precedence parser that
// turns a canonical token window into an expression tree, and the Eval
// walk that evaluates a tree against a (row, variable store, index)
// triple. Nodes are immutable after construction and shareable across
// plans.
package expression

import (
	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/sql"
)

// Expression is the common interface of every node kind. Eval never
// mutates row, vars, or the tree itself.
type Expression interface {
	// Eval resolves the node to a concrete Value. row may be nil for a
	// row-free projection (const-only or variable-driven select without a
	// FROM clause); vars may be nil if the tree contains no Variable node.
	Eval(row *sql.Row, vars *catalog.VariableStore, index int) (sql.Value, error)

	// String renders the node's textual form, used verbatim as the
	// Aggregate label and as the synthetic projection column name.
	String() string
}

// Const wraps a literal value baked in at parse time.
type Const struct {
	Value sql.Value
}

func (c *Const) Eval(*sql.Row, *catalog.VariableStore, int) (sql.Value, error) {
	return c.Value, nil
}

func (c *Const) String() string { return c.Value.String() }

// Column resolves to the named column of the row passed to Eval.
type Column struct {
	Name string // without the leading '#'
}

func (c *Column) Eval(row *sql.Row, _ *catalog.VariableStore, _ int) (sql.Value, error) {
	if row == nil {
		return sql.Value{}, errColumnNoRow(c.Name)
	}
	return row.Get(c.Name)
}

func (c *Column) String() string { return "#" + c.Name }

// Variable resolves to seq[index] of the named variable, or Invalid past
// the end of its sequence.
type Variable struct {
	Name string // without the leading '@'
}

func (v *Variable) Eval(_ *sql.Row, vars *catalog.VariableStore, index int) (sql.Value, error) {
	if vars == nil {
		return sql.NewInvalid(), nil
	}
	return vars.Get(v.Name, index), nil
}

func (v *Variable) String() string { return "@" + v.Name }

// UnaryOp enumerates the unary operator/function family: the built-in
// function calls plus the ~ unary-minus and `not`.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpExp
	OpLn
	OpSqrt
	OpSqr
	OpSgn
	OpAbs
	OpToStr
	OpToFloat
	OpToBool
)

var unaryNames = map[UnaryOp]string{
	OpNeg: "~", OpNot: "not", OpSin: "sin", OpCos: "cos", OpTan: "tan",
	OpAsin: "asin", OpAcos: "acos", OpAtan: "atan", OpExp: "exp", OpLn: "ln",
	OpSqrt: "sqrt", OpSqr: "sqr", OpSgn: "sgn", OpAbs: "abs",
	OpToStr: "tostr", OpToFloat: "tofloat", OpToBool: "tobool",
}

// Unary is a one-child node: unary minus, logical not, or a
// single-argument math/conversion function.
type Unary struct {
	Op    UnaryOp
	Child Expression
}

func (u *Unary) String() string { return unaryNames[u.Op] + "(" + u.Child.String() + ")" }

// BinaryOp enumerates arithmetic, comparison and logical binary
// operators, plus the `in` set-membership test.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
	OpXor
	OpIn
)

var binaryNames = map[BinaryOp]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpPow: "^", OpMod: "%",
	OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=", OpEq: "=", OpNe: "!=",
	OpAnd: "and", OpOr: "or", OpXor: "xor", OpIn: "in",
}

// Binary is a two-child node.
type Binary struct {
	Op          BinaryOp
	Left, Right Expression
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + binaryNames[b.Op] + " " + b.Right.String() + ")"
}

// AggregateOp enumerates the aggregate reducers.
type AggregateOp int

const (
	AggAgg AggregateOp = iota // last-value-wins, the default reducer
	AggCount
	AggSum
	AggMin
	AggMax
)

var aggregateNames = map[AggregateOp]string{
	AggAgg: "agg", AggCount: "count", AggSum: "sum", AggMin: "min", AggMax: "max",
}

// Aggregate is opaque to general evaluation: the binder and the Aggregate
// executor resolve it specially, but after the Aggregate executor has
// run, every reference to it downstream is rewritten to a Column by
// RewriteAggregates, so Aggregate.Eval treats row as a plain column
// lookup keyed by its own label (this only fires if a caller evaluates
// an Aggregate node directly against the post-aggregation row, which the
// planner never actually does — projections/having/order-by always see
// the rewritten Column).
type Aggregate struct {
	Op    AggregateOp
	Child Expression
}

func (a *Aggregate) Eval(row *sql.Row, vars *catalog.VariableStore, index int) (sql.Value, error) {
	col := &Column{Name: a.String()}
	return col.Eval(row, vars, index)
}

func (a *Aggregate) String() string {
	if a.Child == nil {
		return aggregateNames[a.Op] + "()"
	}
	return aggregateNames[a.Op] + "(" + a.Child.String() + ")"
}
