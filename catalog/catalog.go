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

package catalog

import (
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/internal/similartext"
	"github.com/cqlkit/cql/sql"
)

// Catalog is a name-to-table map plus the single variable store for a
// driver session. It exclusively owns every Table; rows exclusively
// belong to their table.
type Catalog struct {
	tables    map[string]*Table
	variables *VariableStore
}

// New returns an empty catalog with a fresh variable store.
func New() *Catalog {
	return &Catalog{
		tables:    make(map[string]*Table),
		variables: NewVariableStore(),
	}
}

// Variables returns the catalog's variable store.
func (c *Catalog) Variables() *VariableStore {
	return c.variables
}

func (c *Catalog) names() []string {
	names := make([]string, 0, len(c.tables))
	for n := range c.tables {
		names = append(names, n)
	}
	return names
}

// Table looks up name, returning ErrCatalog (with a "did you mean"
// suggestion when one fits) if it is not registered.
func (c *Catalog) Table(name string) (*Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, errs.ErrCatalog.New("no such table " + name + similartext.Find(c.names(), name))
	}
	return t, nil
}

// CreateTable registers an empty table under name and schema. If
// ifNotExists is set and name is already registered, CreateTable is a
// no-op and returns the existing table rather than erroring.
func (c *Catalog) CreateTable(name string, schema *sql.Schema, ifNotExists bool) (*Table, error) {
	if existing, ok := c.tables[name]; ok {
		if ifNotExists {
			return existing, nil
		}
		return nil, errs.ErrCatalog.New("table " + name + " already exists")
	}
	t := NewTable(name, schema)
	t.dirty = true
	c.tables[name] = t
	return t, nil
}

// Register installs an already-built table (e.g. one loaded from CSV)
// into the catalog, overwriting any existing entry of the same name.
func (c *Catalog) Register(t *Table) {
	c.tables[t.Name()] = t
}

// Names returns every registered table name.
func (c *Catalog) Names() []string {
	return c.names()
}

// DirtyTables returns every table with a pending write-back, for the
// driver's shutdown dump.
func (c *Catalog) DirtyTables() []*Table {
	var dirty []*Table
	for _, t := range c.tables {
		if t.Dirty() {
			dirty = append(dirty, t)
		}
	}
	return dirty
}
