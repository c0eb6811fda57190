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
	"strconv"

	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql/expression"
	"github.com/cqlkit/cql/token"
)

var selectKeywords = []string{
	"from", "where", "order by", "group by", "having", "limit", "offset", "dest",
}

// bindSelect implements the select grammar:
//
//	select <exprs> [from <table>] [where <expr>] [order by <exprs>]
//	       [group by <exprs>] [having <expr>] [limit N] [offset N]
//	       [dest @v1 @v2 ...]
func bindSelect(tokens []token.Token) (*BoundStatement, error) {
	head, clauses := windows(tokens, selectKeywords)

	projWindows := splitTopLevel(head)
	if len(projWindows) == 0 || len(projWindows[0]) == 0 {
		return nil, errs.ErrBind.New("select requires a projection list")
	}

	stmt := NewBoundStatement(Select)

	for _, w := range projWindows {
		expr, err := expression.Parse(w)
		if err != nil {
			return nil, err
		}
		stmt.Projections = append(stmt.Projections, expr)
	}

	if from, ok := clauses["from"]; ok {
		if len(from) != 1 || from[0].Kind != token.Word {
			return nil, errs.ErrBind.New("from must name exactly one table")
		}
		stmt.Table = from[0].Text
	}

	if where, ok := clauses["where"]; ok {
		expr, err := expression.Parse(where)
		if err != nil {
			return nil, err
		}
		stmt.Where = expr
	}

	if groupBy, ok := clauses["group by"]; ok {
		for _, w := range splitTopLevel(groupBy) {
			expr, err := expression.Parse(w)
			if err != nil {
				return nil, err
			}
			stmt.GroupBy = append(stmt.GroupBy, expr)
		}
	}

	if having, ok := clauses["having"]; ok {
		expr, err := expression.Parse(having)
		if err != nil {
			return nil, err
		}
		stmt.Having = expr
	}

	if orderBy, ok := clauses["order by"]; ok {
		for _, w := range splitTopLevel(orderBy) {
			key, err := bindOrderKey(w)
			if err != nil {
				return nil, err
			}
			stmt.OrderBy = append(stmt.OrderBy, key)
		}
	}

	if limit, ok := clauses["limit"]; ok {
		n, err := bindCount(limit, "limit")
		if err != nil {
			return nil, err
		}
		stmt.Limit = n
	}

	if offset, ok := clauses["offset"]; ok {
		n, err := bindCount(offset, "offset")
		if err != nil {
			return nil, err
		}
		stmt.Offset = n
	}

	if dest, ok := clauses["dest"]; ok {
		names, err := bindDestList(dest)
		if err != nil {
			return nil, err
		}
		stmt.Dest = names
	}

	return stmt, nil
}

// bindOrderKey strips a trailing asc/desc direction word (default
// ascending) and parses the remainder as an expression.
func bindOrderKey(tokens []token.Token) (OrderKey, error) {
	if len(tokens) == 0 {
		return OrderKey{}, errs.ErrBind.New("empty order by key")
	}
	desc := false
	last := tokens[len(tokens)-1]
	if last.IsWord("asc") {
		tokens = tokens[:len(tokens)-1]
	} else if last.IsWord("desc") {
		desc = true
		tokens = tokens[:len(tokens)-1]
	}
	expr, err := expression.Parse(tokens)
	if err != nil {
		return OrderKey{}, err
	}
	return OrderKey{Expr: expr, Desc: desc}, nil
}

func bindCount(tokens []token.Token, clause string) (int, error) {
	if len(tokens) != 1 || tokens[0].Kind != token.Number {
		return 0, errs.ErrBind.New(clause + " requires exactly one numeric literal")
	}
	f, err := strconv.ParseFloat(tokens[0].Text, 64)
	if err != nil {
		return 0, errs.ErrBind.New(clause + " has an invalid numeric literal")
	}
	return int(f), nil
}

// bindDestList parses the space-separated destination variable list; a
// bare "@" Symbol token (left un-fused by the tokenizer for exactly this
// purpose) means "discard this output slot".
func bindDestList(tokens []token.Token) ([]string, error) {
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch {
		case t.Kind == token.Variable:
			names = append(names, t.Text[1:])
		case t.Kind == token.Symbol && t.Text == "@":
			names = append(names, "")
		default:
			return nil, errs.ErrBind.New("dest expects a list of variables")
		}
	}
	return names, nil
}
