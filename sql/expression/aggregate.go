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

// IsConst walks the tree: any Column or Variable subtree makes it
// non-const. An `in` expression is classified as const: it refers to a
// variable as a set-membership operand but does not iterate it per row.
func IsConst(e Expression) bool {
	switch n := e.(type) {
	case *Const:
		return true
	case *Column, *Variable:
		return false
	case *Unary:
		return IsConst(n.Child)
	case *Binary:
		if n.Op == OpIn {
			return true
		}
		return IsConst(n.Left) && IsConst(n.Right)
	case *Aggregate:
		if n.Child == nil {
			return true
		}
		return IsConst(n.Child)
	default:
		return false
	}
}

// FindAggregates collects every Aggregate node appearing anywhere in the
// given expression trees, keyed by its textual label. Trees may overlap
// (e.g. the same aggregate expression used in both the projection list
// and the having predicate); a single map entry is kept per label.
func FindAggregates(trees ...Expression) map[string]*Aggregate {
	found := make(map[string]*Aggregate)
	var walk func(Expression)
	walk = func(e Expression) {
		if e == nil {
			return
		}
		switch n := e.(type) {
		case *Aggregate:
			found[n.String()] = n
			walk(n.Child)
		case *Unary:
			walk(n.Child)
		case *Binary:
			walk(n.Left)
			walk(n.Right)
		}
	}
	for _, t := range trees {
		walk(t)
	}
	return found
}

// RewriteAggregates returns a copy of e with every Aggregate node
// replaced by a Column node named after the Aggregate's textual form, so
// that post-aggregation clauses (projections, order-by, having) can
// reference aggregate results as if they were plain schema columns
// produced by the Aggregate executor.
func RewriteAggregates(e Expression) Expression {
	switch n := e.(type) {
	case nil:
		return nil
	case *Aggregate:
		return &Column{Name: n.String()}
	case *Unary:
		return &Unary{Op: n.Op, Child: RewriteAggregates(n.Child)}
	case *Binary:
		return &Binary{Op: n.Op, Left: RewriteAggregates(n.Left), Right: RewriteAggregates(n.Right)}
	default:
		return e
	}
}
