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

package session

import (
	"fmt"
	"os"

	"github.com/k0kubun/pp"

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/expression"
	"github.com/cqlkit/cql/token"
)

type metaHandler func(args []token.Token) error

// metaHandler dispatches the meta statements, which bypass the binder
// entirely: load, create table, schema, read, set/var, disp/watch.
func (s *Session) metaHandler(first token.Token) (metaHandler, bool) {
	switch {
	case first.IsWord("load"):
		return s.metaLoad, true
	case first.IsWord("create"):
		return s.metaCreate, true
	case first.IsWord("schema"):
		return s.metaSchema, true
	case first.IsWord("read"):
		return s.metaRead, true
	case first.IsWord("set"), first.IsWord("var"):
		return s.metaSet, true
	case first.IsWord("disp"), first.IsWord("watch"):
		return s.metaDisp, true
	}
	return nil, false
}

// metaLoad implements `load <tbl> [<tbl> ...]`.
func (s *Session) metaLoad(args []token.Token) error {
	if len(args) == 0 {
		return errs.ErrBind.New("load requires at least one table name")
	}
	for _, t := range args {
		if t.Kind != token.Word {
			return errs.ErrBind.New("load expects a table name")
		}
		path := fmt.Sprintf("%s/%s.csv", s.DataDir, t.Text)
		table, err := catalog.LoadCSV(t.Text, path)
		if err != nil {
			return err
		}
		s.Catalog.Register(table)
		table.MarkClean()
		s.Log.WithField("table", t.Text).Info("loaded")
	}
	return nil
}

// metaCreate implements `create table [if not exists] <name>(header)`.
func (s *Session) metaCreate(args []token.Token) error {
	if len(args) == 0 || !args[0].IsWord("table") {
		return errs.ErrBind.New("create requires 'table'")
	}
	args = args[1:]

	ifNotExists := false
	if len(args) >= 2 && args[0].IsWord("if") {
		if !(args[1].IsWord("not") && len(args) >= 3 && args[2].IsWord("exists")) {
			return errs.ErrBind.New("create table if not exists: malformed")
		}
		ifNotExists = true
		args = args[3:]
	}

	if len(args) < 4 || args[0].Kind != token.Word ||
		args[1].Kind != token.Symbol || args[1].Text != "(" ||
		args[len(args)-1].Kind != token.Symbol || args[len(args)-1].Text != ")" {
		return errs.ErrBind.New("create table requires 'name(col:type, ...)'")
	}

	name := args[0].Text
	header := args[2 : len(args)-1]

	columns, err := parseColumnList(header)
	if err != nil {
		return err
	}

	_, err = s.Catalog.CreateTable(name, sql.NewSchema(columns...), ifNotExists)
	return err
}

func parseColumnList(tokens []token.Token) ([]sql.Column, error) {
	var columns []sql.Column
	var current []token.Token
	flush := func() error {
		if len(current) != 3 || current[1].Kind != token.Symbol || current[1].Text != ":" {
			return errs.ErrBind.New("malformed column definition")
		}
		name := current[0].Text
		var tag sql.Tag
		switch current[2].Text {
		case "float":
			tag = sql.Float
		case "char":
			tag = sql.String
		default:
			return errs.ErrBind.New("unknown column type " + current[2].Text)
		}
		columns = append(columns, sql.Column{Name: name, Type: tag})
		return nil
	}

	for _, t := range tokens {
		if t.Kind == token.Symbol && t.Text == "," {
			if err := flush(); err != nil {
				return nil, err
			}
			current = nil
			continue
		}
		current = append(current, t)
	}
	if len(current) > 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return columns, nil
}

// metaSchema implements `schema <tbl>`.
func (s *Session) metaSchema(args []token.Token) error {
	if len(args) != 1 || args[0].Kind != token.Word {
		return errs.ErrBind.New("schema requires exactly one table name")
	}
	table, err := s.Catalog.Table(args[0].Text)
	if err != nil {
		return err
	}
	pp.Println(table.Schema())
	return nil
}

// metaRead implements `read <file>`: execute every statement in file in
// order, aborting that command's remainder on the first error.
func (s *Session) metaRead(args []token.Token) error {
	if len(args) != 1 {
		return errs.ErrBind.New("read requires exactly one file name")
	}
	path := args[0].Text

	data, err := os.ReadFile(path)
	if err != nil {
		return errs.ErrIO.New(err.Error())
	}

	commands, err := token.Canonicalize(string(data))
	if err != nil {
		return err
	}
	for _, cmd := range commands {
		if _, err := s.Execute(cmd); err != nil {
			s.Log.WithError(err).WithField("file", path).Warn("read aborted")
			return err
		}
	}
	return nil
}

// metaSet implements `set @v = <expr>[, ...]` / `var @v = <expr>[, ...]`:
// one variable bound to the sequence of values its comma-separated
// expression list evaluates to (e.g. `set @x = 1, 2, 3` makes @x the
// three-element sequence [1, 2, 3]).
func (s *Session) metaSet(args []token.Token) error {
	if len(args) < 3 || args[0].Kind != token.Variable ||
		args[1].Kind != token.Symbol || args[1].Text != "=" {
		return errs.ErrBind.New("set/var expects '@v = expr[, ...]'")
	}
	name := args[0].Text[1:]

	values := make([]sql.Value, 0, 1)
	for _, w := range splitByComma(args[2:]) {
		expr, err := expression.Parse(w)
		if err != nil {
			return err
		}
		v, err := expr.Eval(nil, s.Catalog.Variables(), 0)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	s.Catalog.Variables().Set(name, values)
	return nil
}

// metaDisp implements `disp @v [@v ...]` / `watch @v [@v ...]`.
func (s *Session) metaDisp(args []token.Token) error {
	for _, t := range args {
		if t.Kind != token.Variable {
			return errs.ErrBind.New("disp/watch expects a list of variables")
		}
		name := t.Text[1:]
		seq, ok := s.Catalog.Variables().Sequence(name)
		if !ok {
			return errs.ErrCatalog.New("no such variable @" + name)
		}
		pp.Println(seq)
	}
	return nil
}

func splitByComma(tokens []token.Token) [][]token.Token {
	var parts [][]token.Token
	start := 0
	for i, t := range tokens {
		if t.Kind == token.Symbol && t.Text == "," {
			parts = append(parts, tokens[start:i])
			start = i + 1
		}
	}
	parts = append(parts, tokens[start:])
	return parts
}
