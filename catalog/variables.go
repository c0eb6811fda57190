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

import "github.com/cqlkit/cql/sql"

// VariableStore maps a variable name (prefixed '@') to an ordered
// sequence of Values. It is exclusively owned by the driver session and
// mutated only by set/var and the Dest executor.
type VariableStore struct {
	vars map[string][]sql.Value
}

// NewVariableStore returns an empty store.
func NewVariableStore() *VariableStore {
	return &VariableStore{vars: make(map[string][]sql.Value)}
}

// Set overwrites (or creates) the named variable's sequence.
func (vs *VariableStore) Set(name string, values []sql.Value) {
	vs.vars[name] = values
}

// Get returns the value at seq[index], or Invalid if the variable is
// unknown or index is past the end of its sequence.
func (vs *VariableStore) Get(name string, index int) sql.Value {
	seq, ok := vs.vars[name]
	if !ok || index < 0 || index >= len(seq) {
		return sql.NewInvalid()
	}
	return seq[index]
}

// Sequence returns the full backing sequence for a variable, or nil if
// unknown. Used by the `in` operator (membership test) and by `disp`.
func (vs *VariableStore) Sequence(name string) ([]sql.Value, bool) {
	seq, ok := vs.vars[name]
	return seq, ok
}

// Append appends a single value to the named variable's sequence,
// creating it if absent. Used by the Dest executor.
func (vs *VariableStore) Append(name string, v sql.Value) {
	vs.vars[name] = append(vs.vars[name], v)
}

// Names returns every known variable name, for `disp`/`watch` and "did
// you mean" suggestions.
func (vs *VariableStore) Names() []string {
	names := make([]string, 0, len(vs.vars))
	for n := range vs.vars {
		names = append(names, n)
	}
	return names
}
