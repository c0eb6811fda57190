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

// Package planbuilder binds a canonical token command into a
// BoundStatement: a logical plan the rowexec planner composes into a
// pipeline of iterators. Binding does not consult the catalog; whether a
// referenced table exists is checked at planning/execution time.
package planbuilder

import "github.com/cqlkit/cql/sql/expression"

// Kind identifies which of the four query statement shapes was bound.
type Kind int

const (
	Select Kind = iota
	Insert
	Update
	Delete
)

// OrderKey pairs an order-by expression with its direction.
type OrderKey struct {
	Expr expression.Expression
	Desc bool
}

// BoundStatement is the binder's output: every slot the planner and
// executors need, with absent clauses left at their zero value (nil
// slice / nil expression / Limit == -1).
type BoundStatement struct {
	Kind Kind

	Table string // Select (from), Update, Delete, Insert (into)

	// Select
	Projections []expression.Expression
	GroupBy     []expression.Expression
	OrderBy     []OrderKey
	Having      expression.Expression
	Limit       int // -1 means unbounded
	Offset      int
	Dest        []string // variable names; "" means discard that slot

	// shared by Select, Update, Delete
	Where expression.Expression

	// Update
	UpdateColumn string
	UpdateValue  expression.Expression

	// Insert: flat list of tuples, each a fixed-size expression row
	InsertTuples [][]expression.Expression
}

// NewBoundStatement returns a statement with limit/offset defaulted to
// "unbounded" / "no skip".
func NewBoundStatement(kind Kind) *BoundStatement {
	return &BoundStatement{Kind: kind, Limit: -1, Offset: 0}
}
