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

// bindUpdate implements: update <table> set <col> = <expr> [where <expr>]
func bindUpdate(tokens []token.Token) (*BoundStatement, error) {
	if len(tokens) < 1 || tokens[0].Kind != token.Word {
		return nil, errs.ErrBind.New("update requires a table name")
	}

	head, clauses := windows(tokens[1:], []string{"set", "where"})
	if len(head) != 0 {
		return nil, errs.ErrBind.New("update expects 'set' immediately after the table name")
	}

	setTokens, ok := clauses["set"]
	if !ok {
		return nil, errs.ErrBind.New("update requires a set clause")
	}
	eq := findTopLevelEquals(setTokens)
	if eq < 0 {
		return nil, errs.ErrBind.New("update's set clause requires <col> = <expr>")
	}
	colTokens := setTokens[:eq]
	if len(colTokens) != 1 || colTokens[0].Kind != token.Column {
		return nil, errs.ErrBind.New("update's set clause requires a single #column on the left of =")
	}

	stmt := NewBoundStatement(Update)
	stmt.Table = tokens[0].Text
	stmt.UpdateColumn = colTokens[0].Text[1:]

	value, err := expression.Parse(setTokens[eq+1:])
	if err != nil {
		return nil, err
	}
	stmt.UpdateValue = value

	if where, ok := clauses["where"]; ok {
		pred, err := expression.Parse(where)
		if err != nil {
			return nil, err
		}
		stmt.Where = pred
	}

	return stmt, nil
}

// findTopLevelEquals finds the first depth-0 "=" Symbol token, used to
// split `set #col = expr` without mistaking an "=" used inside a nested
// parenthesized sub-expression on the right-hand side.
func findTopLevelEquals(tokens []token.Token) int {
	d := depthTracker{}
	for i, t := range tokens {
		depth := d.at(t)
		if depth == 0 && t.Kind == token.Symbol && t.Text == "=" {
			return i
		}
	}
	return -1
}
