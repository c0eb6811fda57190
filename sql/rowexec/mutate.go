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
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/expression"
	"github.com/cqlkit/cql/sql/planbuilder"
)

// ExecInsert implements insert's row/index expansion: a tuple with no
// Variable reference becomes exactly one row; a tuple
// referencing a Variable is evaluated at increasing indices until every
// column that references a Variable comes back Invalid at the same index
// (constant columns are not counted), which stops expansion without
// inserting that row.
func ExecInsert(stmt *planbuilder.BoundStatement, cat *catalog.Catalog) (int, error) {
	table, err := cat.Table(stmt.Table)
	if err != nil {
		return 0, err
	}
	vars := cat.Variables()

	inserted := 0
	for _, tuple := range stmt.InsertTuples {
		if !tupleHasVariable(tuple) {
			values, err := evalRow(tuple, vars, 0)
			if err != nil {
				return inserted, err
			}
			table.Insert(values)
			inserted++
			continue
		}

		for index := 0; ; index++ {
			values, err := evalRow(tuple, vars, index)
			if err != nil {
				return inserted, err
			}
			if allInvalidValues(tuple, values) {
				break
			}
			table.Insert(values)
			inserted++
		}
	}
	return inserted, nil
}

func tupleHasVariable(tuple []expression.Expression) bool {
	for _, e := range tuple {
		if expression.ContainsVariable(e) {
			return true
		}
	}
	return false
}

func evalRow(exprs []expression.Expression, vars *catalog.VariableStore, index int) ([]sql.Value, error) {
	values := make([]sql.Value, len(exprs))
	for i, e := range exprs {
		v, err := e.Eval(nil, vars, index)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func allInvalidValues(tuple []expression.Expression, values []sql.Value) bool {
	for i, v := range values {
		if expression.ContainsVariable(tuple[i]) && !v.IsInvalid() {
			return false
		}
	}
	return true
}

// ExecUpdate applies stmt.UpdateValue to stmt.UpdateColumn on every
// non-tombstoned row matching stmt.Where (or every row, if Where is nil).
func ExecUpdate(stmt *planbuilder.BoundStatement, cat *catalog.Catalog) (int, error) {
	table, err := cat.Table(stmt.Table)
	if err != nil {
		return 0, err
	}
	if table.Schema().IndexOf(stmt.UpdateColumn) < 0 {
		return 0, errs.ErrBind.New("unknown column " + stmt.UpdateColumn + " in update")
	}
	vars := cat.Variables()

	updated := 0
	for _, row := range table.Rows() {
		if row.Tombstoned() {
			continue
		}
		if stmt.Where != nil {
			match, err := stmt.Where.Eval(row, vars, 0)
			if err != nil {
				return updated, err
			}
			if match.Tag() != sql.Bool || !match.Bool() {
				continue
			}
		}
		v, err := stmt.UpdateValue.Eval(row, vars, 0)
		if err != nil {
			return updated, err
		}
		if _, err := row.Set(stmt.UpdateColumn, v); err != nil {
			return updated, err
		}
		updated++
	}
	if updated > 0 {
		table.MarkDirty()
	}
	return updated, nil
}

// ExecDelete tombstones every non-tombstoned row matching stmt.Where (or
// every row, if Where is nil).
func ExecDelete(stmt *planbuilder.BoundStatement, cat *catalog.Catalog) (int, error) {
	table, err := cat.Table(stmt.Table)
	if err != nil {
		return 0, err
	}
	vars := cat.Variables()

	deleted := 0
	for _, row := range table.Rows() {
		if row.Tombstoned() {
			continue
		}
		if stmt.Where != nil {
			match, err := stmt.Where.Eval(row, vars, 0)
			if err != nil {
				return deleted, err
			}
			if match.Tag() != sql.Bool || !match.Bool() {
				continue
			}
		}
		table.Delete(row)
		deleted++
	}
	return deleted, nil
}
