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

func TestVariableGetPastEndOfSequenceIsInvalid(t *testing.T) {
	vs := NewVariableStore()
	vs.Set("x", []sql.Value{sql.NewFloat(1), sql.NewFloat(2)})

	assert.Equal(t, sql.NewFloat(2), vs.Get("x", 1))
	assert.True(t, vs.Get("x", 5).IsInvalid())
	assert.True(t, vs.Get("unknown", 0).IsInvalid())
}

func TestVariableAppendGrowsSequence(t *testing.T) {
	vs := NewVariableStore()
	vs.Append("y", sql.NewFloat(1))
	vs.Append("y", sql.NewFloat(2))

	seq, ok := vs.Sequence("y")
	assert.True(t, ok)
	assert.Equal(t, []sql.Value{sql.NewFloat(1), sql.NewFloat(2)}, seq)
}

func TestVariableSetOverwritesSequence(t *testing.T) {
	vs := NewVariableStore()
	vs.Set("x", []sql.Value{sql.NewFloat(1)})
	vs.Set("x", []sql.Value{sql.NewFloat(9), sql.NewFloat(10)})

	seq, _ := vs.Sequence("x")
	assert.Equal(t, []sql.Value{sql.NewFloat(9), sql.NewFloat(10)}, seq)
}
