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

package planbuilder

import "github.com/cqlkit/cql/token"

// depthTracker reports paren/brace nesting so clause and list splitting
// never fires inside a `(...)` sub-expression or an insert `{...}` tuple.
type depthTracker struct {
	parens int
	braces int
}

func (d *depthTracker) at(tok token.Token) int {
	switch {
	case tok.Kind == token.Symbol && tok.Text == "(":
		d.parens++
	case tok.Kind == token.Symbol && tok.Text == ")":
		d.parens--
	case tok.Kind == token.Symbol && tok.Text == "{":
		d.braces++
	case tok.Kind == token.Symbol && tok.Text == "}":
		d.braces--
	}
	return d.parens + d.braces
}

// findKeyword returns the index of the first top-level occurrence of
// keyword in tokens, or -1 if absent.
func findKeyword(tokens []token.Token, keyword string) int {
	d := depthTracker{}
	for i, t := range tokens {
		depth := d.at(t)
		if depth == 0 && t.IsWord(keyword) {
			return i
		}
	}
	return -1
}

// clauseBounds locates the top-level position of every keyword present
// in tokens (in the order given), returning a slice of (keyword, index)
// pairs sorted by index so callers can slice consecutive windows.
type clauseBound struct {
	keyword string
	index   int
}

func clauseBounds(tokens []token.Token, keywords []string) []clauseBound {
	var bounds []clauseBound
	for _, kw := range keywords {
		if idx := findKeyword(tokens, kw); idx >= 0 {
			bounds = append(bounds, clauseBound{kw, idx})
		}
	}
	for i := 1; i < len(bounds); i++ {
		for j := i; j > 0 && bounds[j].index < bounds[j-1].index; j-- {
			bounds[j], bounds[j-1] = bounds[j-1], bounds[j]
		}
	}
	return bounds
}

// windows splits tokens into the head window (before the first keyword)
// and a map of keyword -> its clause window (tokens strictly between its
// keyword token and the next keyword token, or end of input).
func windows(tokens []token.Token, keywords []string) ([]token.Token, map[string][]token.Token) {
	bounds := clauseBounds(tokens, keywords)
	result := make(map[string][]token.Token, len(bounds))

	head := tokens
	if len(bounds) > 0 {
		head = tokens[:bounds[0].index]
	}

	for i, b := range bounds {
		start := b.index + 1
		end := len(tokens)
		if i+1 < len(bounds) {
			end = bounds[i+1].index
		}
		result[b.keyword] = tokens[start:end]
	}
	return head, result
}

// splitTopLevel splits tokens on Symbol "," occurring at bracket depth 0.
func splitTopLevel(tokens []token.Token) [][]token.Token {
	if len(tokens) == 0 {
		return nil
	}
	var parts [][]token.Token
	d := depthTracker{}
	start := 0
	for i, t := range tokens {
		depth := d.at(t)
		if depth == 0 && t.Kind == token.Symbol && t.Text == "," {
			parts = append(parts, tokens[start:i])
			start = i + 1
		}
	}
	parts = append(parts, tokens[start:])
	return parts
}
