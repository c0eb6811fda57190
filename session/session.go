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

// Package session drives one interactive CQL session: tokenizing input,
// dispatching meta statements directly and query statements through the
// binder and planner, and writing dirty tables back to CSV on shutdown.
package session

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/sql/planbuilder"
	"github.com/cqlkit/cql/sql/rowexec"
	"github.com/cqlkit/cql/token"
)

// Row is a fully-materialized output row, ready for the driver to print.
type Row struct {
	Columns []string
	Values  []sql.Value
}

// Session holds the catalog for one REPL lifetime, identified by a UUID
// included in every structured log line.
type Session struct {
	DataDir string
	Catalog *catalog.Catalog
	Log     *logrus.Entry

	id uuid.UUID
}

// New returns a session with a fresh catalog rooted at dataDir.
func New(dataDir string, log *logrus.Logger) *Session {
	id, err := uuid.NewV4()
	if err != nil {
		id = uuid.UUID{}
	}
	return &Session{
		DataDir: dataDir,
		Catalog: catalog.New(),
		Log:     log.WithField("session", id.String()),
		id:      id,
	}
}

// Execute runs one canonical command: meta statements are dispatched
// directly, bypassing the binder; everything else is bound, planned,
// and pulled to completion.
func (s *Session) Execute(cmd token.Command) ([]Row, error) {
	if len(cmd.Tokens) == 0 {
		return nil, nil
	}

	if handler, ok := s.metaHandler(cmd.Tokens[0]); ok {
		return nil, handler(cmd.Tokens[1:])
	}

	stmt, err := planbuilder.Bind(cmd)
	if err != nil {
		return nil, err
	}

	switch stmt.Kind {
	case planbuilder.Select:
		return s.runSelect(stmt)
	case planbuilder.Insert:
		n, err := rowexec.ExecInsert(stmt, s.Catalog)
		s.Log.WithFields(logrus.Fields{"table": stmt.Table, "rows": n}).Debug("insert")
		return nil, err
	case planbuilder.Update:
		n, err := rowexec.ExecUpdate(stmt, s.Catalog)
		s.Log.WithFields(logrus.Fields{"table": stmt.Table, "rows": n}).Debug("update")
		return nil, err
	case planbuilder.Delete:
		n, err := rowexec.ExecDelete(stmt, s.Catalog)
		s.Log.WithFields(logrus.Fields{"table": stmt.Table, "rows": n}).Debug("delete")
		return nil, err
	default:
		return nil, errs.ErrBind.New("unrecognized bound statement kind")
	}
}

func (s *Session) runSelect(stmt *planbuilder.BoundStatement) ([]Row, error) {
	iter, err := rowexec.Plan(stmt, s.Catalog)
	if err != nil {
		return nil, err
	}
	if err := iter.Init(); err != nil {
		return nil, err
	}

	schema := iter.Schema()
	var rows []Row
	for {
		row, ok, err := iter.Next()
		if err != nil {
			return rows, err
		}
		if !ok {
			break
		}
		rows = append(rows, Row{Columns: schema.Names(), Values: row.Values()})
	}
	return rows, nil
}

// Shutdown writes every dirty table back to <name>.csv on a best-effort
// basis; failures are logged and otherwise ignored.
func (s *Session) Shutdown() {
	for _, t := range s.Catalog.DirtyTables() {
		path := fmt.Sprintf("%s/%s.csv", s.DataDir, t.Name())
		if err := catalog.DumpCSV(t, path); err != nil {
			s.Log.WithError(err).WithField("table", t.Name()).Warn("dump failed")
			continue
		}
		t.MarkClean()
	}
}
