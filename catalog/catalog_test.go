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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cqlkit/cql/sql"
)

func testSchema() *sql.Schema {
	return sql.NewSchema(sql.Column{Name: "name", Type: sql.String})
}

func TestCreateTableThenLookup(t *testing.T) {
	cat := New()
	tbl, err := cat.CreateTable("people", testSchema(), false)
	require.NoError(t, err)
	assert.Equal(t, "people", tbl.Name())
	assert.True(t, tbl.Dirty())

	got, err := cat.Table("people")
	require.NoError(t, err)
	assert.Same(t, tbl, got)
}

func TestCreateTableDuplicateIsError(t *testing.T) {
	cat := New()
	_, err := cat.CreateTable("people", testSchema(), false)
	require.NoError(t, err)

	_, err = cat.CreateTable("people", testSchema(), false)
	assert.Error(t, err)
}

func TestCreateTableIfNotExistsReturnsExisting(t *testing.T) {
	cat := New()
	first, err := cat.CreateTable("people", testSchema(), false)
	require.NoError(t, err)

	second, err := cat.CreateTable("people", testSchema(), true)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestTableLookupMissingSuggestsSimilarName(t *testing.T) {
	cat := New()
	_, err := cat.CreateTable("people", testSchema(), false)
	require.NoError(t, err)

	_, err = cat.Table("peple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maybe you mean people")
}

func TestDirtyTablesTracksWriteback(t *testing.T) {
	cat := New()
	tbl, err := cat.CreateTable("people", testSchema(), false)
	require.NoError(t, err)
	tbl.MarkClean()

	assert.Empty(t, cat.DirtyTables())

	tbl.Insert([]sql.Value{sql.NewString("ada")})
	assert.Len(t, cat.DirtyTables(), 1)
}

func TestRegisterOverwritesExistingEntry(t *testing.T) {
	cat := New()
	original, err := cat.CreateTable("people", testSchema(), false)
	require.NoError(t, err)

	replacement := NewTable("people", testSchema())
	cat.Register(replacement)

	got, err := cat.Table("people")
	require.NoError(t, err)
	assert.Same(t, replacement, got)
	assert.NotSame(t, original, got)
}
