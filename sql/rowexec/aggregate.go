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
	"sort"

	"github.com/mitchellh/hashstructure"

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/expression"
)

// keyPart is the hashstructure-friendly (all-exported) fingerprint of a
// single group-by value; sql.Value keeps its fields private, so group
// keys are hashed over this mirror instead.
type keyPart struct {
	Tag int
	F   float64
	S   string
	B   bool
}

func fingerprint(v sql.Value) keyPart {
	return keyPart{Tag: int(v.Tag()), F: v.Float(), S: v.Str(), B: v.Bool()}
}

type aggState struct {
	op       expression.AggregateOp
	count    int
	current  sql.Value
	hasValue bool
}

type group struct {
	keyValues []sql.Value
	states    map[string]*aggState
}

// Aggregate drains its child at construction time and materializes one
// output row per distinct group-by key. Group labels become leading
// output columns; aggregate labels (the Aggregate node's textual form)
// become the trailing columns. Output rows are emitted in first-seen
// group order.
type Aggregate struct {
	groupBy     []expression.Expression
	aggregates  map[string]*expression.Aggregate
	labels      []string
	schema      *sql.Schema
	groups      []*group
	byHash      map[uint64][]int
	pos         int
}

// NewAggregate drains child immediately, grouping by groupBy and
// computing every aggregate in aggregates (as discovered by
// expression.FindAggregates across the projection/order-by/having
// trees).
func NewAggregate(child RowIter, groupBy []expression.Expression, aggregates map[string]*expression.Aggregate, vars *catalog.VariableStore) (*Aggregate, error) {
	labels := make([]string, 0, len(aggregates))
	for label := range aggregates {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	a := &Aggregate{
		groupBy:    groupBy,
		aggregates: aggregates,
		labels:     labels,
		byHash:     make(map[uint64][]int),
	}

	columns := make([]sql.Column, 0, len(groupBy)+len(labels))
	for _, e := range groupBy {
		columns = append(columns, sql.Column{Name: e.String(), Type: sql.Invalid})
	}
	for _, label := range labels {
		columns = append(columns, sql.Column{Name: label, Type: sql.Invalid})
	}
	a.schema = sql.NewSchema(columns...)

	if err := child.Init(); err != nil {
		return nil, err
	}
	for {
		row, ok, err := child.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := a.absorb(row, vars); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *Aggregate) absorb(row *sql.Row, vars *catalog.VariableStore) error {
	keyValues := make([]sql.Value, len(a.groupBy))
	for i, e := range a.groupBy {
		v, err := e.Eval(row, vars, 0)
		if err != nil {
			return err
		}
		keyValues[i] = v
	}

	parts := make([]keyPart, len(keyValues))
	for i, v := range keyValues {
		parts[i] = fingerprint(v)
	}
	hash, err := hashstructure.Hash(parts, nil)
	if err != nil {
		return errs.ErrEval.New(err.Error())
	}

	g := a.findOrCreateGroup(hash, keyValues)

	for _, label := range a.labels {
		node := a.aggregates[label]
		x, err := node.Child.Eval(row, vars, 0)
		if err != nil {
			return err
		}
		if err := g.states[label].absorb(x); err != nil {
			return err
		}
	}
	return nil
}

func (a *Aggregate) findOrCreateGroup(hash uint64, keyValues []sql.Value) *group {
	for _, idx := range a.byHash[hash] {
		g := a.groups[idx]
		if sameKey(g.keyValues, keyValues) {
			return g
		}
	}

	states := make(map[string]*aggState, len(a.labels))
	for _, label := range a.labels {
		states[label] = &aggState{op: a.aggregates[label].Op}
	}
	g := &group{keyValues: keyValues, states: states}
	a.groups = append(a.groups, g)
	a.byHash[hash] = append(a.byHash[hash], len(a.groups)-1)
	return g
}

func sameKey(a, b []sql.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Tag() != b[i].Tag() || !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (s *aggState) absorb(x sql.Value) error {
	switch s.op {
	case expression.AggCount:
		if !x.IsInvalid() {
			s.count++
		}
	case expression.AggAgg:
		s.current = x
		s.hasValue = true
	case expression.AggSum:
		if x.IsInvalid() {
			return nil
		}
		if !s.hasValue {
			s.current = zeroLike(x)
			s.hasValue = true
		}
		summed, err := sumValues(s.current, x)
		if err != nil {
			return err
		}
		s.current = summed
	case expression.AggMin:
		if x.IsInvalid() {
			return nil
		}
		if s.hasValue {
			if err := sql.CheckTags(s.current, x); err != nil {
				return errs.ErrEval.New(err.Error())
			}
		}
		if !s.hasValue || x.Less(s.current) {
			s.current = x
			s.hasValue = true
		}
	case expression.AggMax:
		if x.IsInvalid() {
			return nil
		}
		if s.hasValue {
			if err := sql.CheckTags(s.current, x); err != nil {
				return errs.ErrEval.New(err.Error())
			}
		}
		if !s.hasValue || s.current.Less(x) {
			s.current = x
			s.hasValue = true
		}
	}
	return nil
}

func (s *aggState) value() sql.Value {
	if s.op == expression.AggCount {
		return sql.NewFloat(float64(s.count))
	}
	if !s.hasValue {
		return sql.NewInvalid()
	}
	return s.current
}

func zeroLike(v sql.Value) sql.Value {
	switch v.Tag() {
	case sql.Float:
		return sql.NewFloat(0)
	case sql.Bool:
		return sql.NewBool(false)
	case sql.String:
		return sql.NewString("")
	default:
		return sql.NewInvalid()
	}
}

func sumValues(acc, x sql.Value) (sql.Value, error) {
	if acc.Tag() != x.Tag() {
		return sql.Value{}, errs.ErrEval.New("sum over mismatched value types within one group")
	}
	switch acc.Tag() {
	case sql.Float:
		return sql.NewFloat(acc.Float() + x.Float()), nil
	case sql.Bool:
		return sql.NewBool(acc.Bool() || x.Bool()), nil
	case sql.String:
		return sql.NewString(acc.Str() + x.Str()), nil
	default:
		return sql.Value{}, errs.ErrEval.New("sum over an invalid value")
	}
}

func (a *Aggregate) Schema() *sql.Schema { return a.schema }

func (a *Aggregate) Init() error {
	a.pos = 0
	return nil
}

func (a *Aggregate) Next() (*sql.Row, bool, error) {
	if a.pos >= len(a.groups) {
		return nil, false, nil
	}
	g := a.groups[a.pos]
	a.pos++

	values := make([]sql.Value, 0, len(g.keyValues)+len(a.labels))
	values = append(values, g.keyValues...)
	for _, label := range a.labels {
		values = append(values, g.states[label].value())
	}
	return sql.NewRow(a.schema, values), true, nil
}
