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

// Package errs declares the error taxonomy shared by every stage of the
// query pipeline: lexing, parsing, binding, evaluation, catalog access and
// file I/O. Each kind is a gopkg.in/src-d/go-errors.v1 Kind.
package errs

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrLex is raised by the tokenizer: unterminated string literals, a
	// bare "order"/"group" not followed by "by", a dangling '#'. A bare '@'
	// is not an error: it stays a Symbol token (a discarded dest slot).
	ErrLex = errors.NewKind("lex error: %s")

	// ErrParse is raised by the expression engine: an unrecognized token,
	// a missing operand, unbalanced parentheses.
	ErrParse = errors.NewKind("parse error: %s")

	// ErrBind is raised by the statement binder: a malformed keyword
	// sequence, an unknown column referenced by an update statement.
	ErrBind = errors.NewKind("bind error: %s")

	// ErrEval is raised while evaluating an expression tree against a row:
	// unknown column, type mismatch in a binary operator, a logical
	// operator applied to a non-bool, unary arithmetic on a string.
	ErrEval = errors.NewKind("eval error: %s")

	// ErrCatalog is raised by table/variable lookups: load, select,
	// insert, update or delete against a table that does not exist.
	ErrCatalog = errors.NewKind("catalog error: %s")

	// ErrIO is raised when a CSV file or a `read` script cannot be opened
	// or read.
	ErrIO = errors.NewKind("io error: %s")
)
