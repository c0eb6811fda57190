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

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/planbuilder"
)

// Sort drains its child fully on Init and performs a stable sort keyed
// by an ordered list of (expression, direction) keys, then emits rows
// one at a time. Equal keys fall through to the next key; rows equal
// under every key preserve their relative (pre-sort) order.
type Sort struct {
	child RowIter
	keys  []planbuilder.OrderKey
	vars  *catalog.VariableStore

	rows []*sql.Row
	pos  int
	err  error
}

// NewSort wraps child, sorting by keys on Init.
func NewSort(child RowIter, keys []planbuilder.OrderKey, vars *catalog.VariableStore) *Sort {
	return &Sort{child: child, keys: keys, vars: vars}
}

func (s *Sort) Schema() *sql.Schema { return s.child.Schema() }

func (s *Sort) Init() error {
	if err := s.child.Init(); err != nil {
		return err
	}
	s.rows = nil
	s.pos = 0
	s.err = nil

	for {
		row, ok, err := s.child.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		s.rows = append(s.rows, row)
	}

	sort.SliceStable(s.rows, func(i, j int) bool {
		return s.less(s.rows[i], s.rows[j])
	})
	return s.err
}

func (s *Sort) less(a, b *sql.Row) bool {
	for _, key := range s.keys {
		av, err := key.Expr.Eval(a, s.vars, 0)
		if err != nil {
			s.err = err
			return false
		}
		bv, err := key.Expr.Eval(b, s.vars, 0)
		if err != nil {
			s.err = err
			return false
		}
		if av.Equal(bv) {
			continue
		}
		if err := sql.CheckTags(av, bv); err != nil {
			s.err = errs.ErrEval.New(err.Error())
			return false
		}
		if key.Desc {
			return bv.Less(av)
		}
		return av.Less(bv)
	}
	return false
}

func (s *Sort) Next() (*sql.Row, bool, error) {
	if s.pos >= len(s.rows) {
		return nil, false, nil
	}
	row := s.rows[s.pos]
	s.pos++
	return row, true, nil
}
