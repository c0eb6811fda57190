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

// bindDelete implements: delete from <table> [where <expr>]
func bindDelete(tokens []token.Token) (*BoundStatement, error) {
	if len(tokens) < 2 || !tokens[0].IsWord("from") || tokens[1].Kind != token.Word {
		return nil, errs.ErrBind.New("delete requires 'from <table>'")
	}

	stmt := NewBoundStatement(Delete)
	stmt.Table = tokens[1].Text

	if len(tokens) > 2 {
		if !tokens[2].IsWord("where") {
			return nil, errs.ErrBind.New("delete expects 'where' after the table name")
		}
		pred, err := expression.Parse(tokens[3:])
		if err != nil {
			return nil, err
		}
		stmt.Where = pred
	}

	return stmt, nil
}
