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

// Package cql ties the catalog, binder/planner, and session packages
// together into one embeddable engine.
package cql

import (
	"io"

	"github.com/cqlkit/cql/session"
	"github.com/cqlkit/cql/token"
)

// Engine is the top-level embeddable entry point: one config, reusable
// across many sessions opened against the same data directory. Each
// session gets its own catalog and logger.
type Engine struct {
	Config *Config
}

// NewEngine loads cfgPath (or defaults, if absent) and returns a ready
// Engine.
func NewEngine(cfgPath string) (*Engine, error) {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	return &Engine{Config: cfg}, nil
}

// NewSession opens a fresh, empty catalog rooted at e.Config.DataDir.
func (e *Engine) NewSession() *session.Session {
	return session.New(e.Config.DataDir, e.Config.NewLogger())
}

// Query runs every statement in text against s, in order, and returns
// their materialized rows concatenated, for embedders that don't want
// the REPL loop. It stops at the first failing statement.
func (e *Engine) Query(s *session.Session, text string) ([]session.Row, error) {
	commands, err := token.Canonicalize(text)
	if err != nil {
		return nil, err
	}
	var rows []session.Row
	for _, cmd := range commands {
		out, err := s.Execute(cmd)
		if err != nil {
			return rows, err
		}
		rows = append(rows, out...)
	}
	return rows, nil
}

// Serve runs the interactive prompt loop against in/out until
// end-of-input.
func (e *Engine) Serve(s *session.Session, in io.Reader, out io.Writer) {
	repl := session.NewREPL(s, in, out, e.Config.Prompt, e.Config.ContinuationPrompt)
	repl.Run()
}
