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

	"github.com/cqlkit/cql/sql"
)

func TestTableInsertMarksDirtyAndAppends(t *testing.T) {
	tbl := NewTable("t", testSchema())
	tbl.MarkClean()

	row := tbl.Insert([]sql.Value{sql.NewString("ada")})
	assert.True(t, tbl.Dirty())
	assert.Len(t, tbl.Rows(), 1)
	assert.Same(t, row, tbl.Rows()[0])
}

func TestTableDeleteTombstonesWithoutSplicing(t *testing.T) {
	tbl := NewTable("t", testSchema())
	row := tbl.Insert([]sql.Value{sql.NewString("ada")})
	tbl.MarkClean()

	tbl.Delete(row)
	assert.True(t, tbl.Dirty())
	assert.Len(t, tbl.Rows(), 1)
	assert.True(t, tbl.Rows()[0].Tombstoned())
}

func TestTableNumRowsExcludesTombstones(t *testing.T) {
	tbl := NewTable("t", testSchema())
	r1 := tbl.Insert([]sql.Value{sql.NewString("ada")})
	tbl.Insert([]sql.Value{sql.NewString("bob")})

	assert.Equal(t, 2, tbl.NumRows())
	tbl.Delete(r1)
	assert.Equal(t, 1, tbl.NumRows())
}
