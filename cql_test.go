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

package cql

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	e.Config.DataDir = t.TempDir()
	return e
}

func TestEngineQueryRunsStatementsAgainstSession(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewSession()

	_, err := e.Query(s, "create table people(name:char);")
	require.NoError(t, err)
	_, err = e.Query(s, "insert into people values {'ada'};")
	require.NoError(t, err)

	rows, err := e.Query(s, "select #name from people;")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ada", rows[0].Values[0].Str())
}

func TestEngineServeRunsTheReplToCompletion(t *testing.T) {
	e := newTestEngine(t)
	s := e.NewSession()

	in := strings.NewReader("select 1 + 1;\n")
	var out bytes.Buffer
	e.Serve(s, in, &out)

	assert.Contains(t, out.String(), "2")
	assert.Contains(t, out.String(), "Bye.")
}
