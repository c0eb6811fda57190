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

// Package rowexec implements the pipelined, pull-based (volcano-style)
// executors, and the planner that wraps them around a bound statement.
package rowexec

import "github.com/cqlkit/cql/sql"

// RowIter is the volcano iterator protocol every executor implements.
// Init idempotently (re)positions the iterator at its start, recursing
// into any child; Next returns the next row and true, or (nil, false) at
// end of stream. An iterator is not restartable after false without a
// fresh Init call.
type RowIter interface {
	Init() error
	Next() (*sql.Row, bool, error)
	Schema() *sql.Schema
}
