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

package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cqlkit/cql/token"
)

// REPL drives the prompt loop: accumulate input lines until one ends
// with ';' (ignoring trailing whitespace), tokenize and execute the
// resulting commands, and print 'Bye.' at end-of-input.
type REPL struct {
	Session            *Session
	In                 *bufio.Scanner
	Out                io.Writer
	Prompt             string
	ContinuationPrompt string
}

// NewREPL wraps s for interactive use over in/out with the given prompts.
func NewREPL(s *Session, in io.Reader, out io.Writer, prompt, continuation string) *REPL {
	return &REPL{
		Session:            s,
		In:                 bufio.NewScanner(in),
		Out:                out,
		Prompt:             prompt,
		ContinuationPrompt: continuation,
	}
}

// Run loops until end-of-input, then prints "Bye." and dumps dirty
// tables. It never returns an error for a failed statement — those are
// printed as one-line diagnostics and the loop continues, aborting only
// the statement that failed.
func (r *REPL) Run() {
	defer r.Session.Shutdown()

	var buf strings.Builder
	prompt := r.Prompt

	for {
		fmt.Fprint(r.Out, prompt)
		if !r.In.Scan() {
			break
		}
		line := r.In.Text()
		buf.WriteString(line)
		buf.WriteByte('\n')

		if !strings.HasSuffix(strings.TrimRight(line, " \t"), ";") {
			prompt = r.ContinuationPrompt
			continue
		}

		r.runBuffered(buf.String())
		buf.Reset()
		prompt = r.Prompt
	}

	fmt.Fprintln(r.Out, "Bye.")
}

func (r *REPL) runBuffered(text string) {
	commands, err := token.Canonicalize(text)
	if err != nil {
		fmt.Fprintln(r.Out, err.Error())
		return
	}
	for _, cmd := range commands {
		rows, err := r.Session.Execute(cmd)
		if err != nil {
			fmt.Fprintln(r.Out, err.Error())
			continue
		}
		for _, row := range rows {
			r.printRow(row)
		}
	}
}

func (r *REPL) printRow(row Row) {
	parts := make([]string, len(row.Values))
	for i, v := range row.Values {
		parts[i] = v.String()
	}
	fmt.Fprintln(r.Out, strings.Join(parts, ","))
}
