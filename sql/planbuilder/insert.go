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

package planbuilder

import (
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql/expression"
	"github.com/cqlkit/cql/token"
)

// bindInsert implements: insert into <table> values {expr, ...}, {...}
// Each `{}` is one tuple of expressions; the flat list has length
// cols x tuples. The row/column split against the table's actual schema
// width is validated at execution, not at bind time.
func bindInsert(tokens []token.Token) (*BoundStatement, error) {
	if len(tokens) < 3 || !tokens[0].IsWord("into") || tokens[1].Kind != token.Word || !tokens[2].IsWord("values") {
		return nil, errs.ErrBind.New("insert requires 'into <table> values {...}'")
	}

	stmt := NewBoundStatement(Insert)
	stmt.Table = tokens[1].Text

	for _, tuple := range splitTopLevel(tokens[3:]) {
		if len(tuple) < 2 ||
			tuple[0].Kind != token.Symbol || tuple[0].Text != "{" ||
			tuple[len(tuple)-1].Kind != token.Symbol || tuple[len(tuple)-1].Text != "}" {
			return nil, errs.ErrBind.New("insert tuple must be wrapped in { }")
		}
		inner := tuple[1 : len(tuple)-1]
		var row []expression.Expression
		for _, w := range splitTopLevel(inner) {
			expr, err := expression.Parse(w)
			if err != nil {
				return nil, err
			}
			row = append(row, expr)
		}
		stmt.InsertTuples = append(stmt.InsertTuples, row)
	}

	if len(stmt.InsertTuples) == 0 {
		return nil, errs.ErrBind.New("insert requires at least one value tuple")
	}

	return stmt, nil
}
