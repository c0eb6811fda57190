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
	"github.com/cqlkit/cql/token"
)

// Bind dispatches on the leading keyword of a canonical command and
// produces the corresponding BoundStatement. Meta statements (load,
// create table, read, schema, set/var, disp/watch) are not query
// statements and are never passed here; the driver executes them
// directly (see session.Execute).
func Bind(cmd token.Command) (*BoundStatement, error) {
	toks := cmd.Tokens
	if len(toks) == 0 {
		return nil, errs.ErrBind.New("empty statement")
	}

	switch {
	case toks[0].IsWord("select"):
		return bindSelect(toks[1:])
	case toks[0].IsWord("insert"):
		return bindInsert(toks[1:])
	case toks[0].IsWord("update"):
		return bindUpdate(toks[1:])
	case toks[0].IsWord("delete"):
		return bindDelete(toks[1:])
	default:
		return nil, errs.ErrBind.New("unrecognized statement keyword " + toks[0].Text)
	}
}
