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

package token

import "github.com/cqlkit/cql/errs"

// Fuse runs pass 2 (deep-partition) over a single raw Command, producing
// the canonical token stream: "order"/"by" and "group"/"by" merge into
// one Word token, "<"/"=" and ">"/"=" merge into one Symbol token,
// "#"/ident and "@"/ident merge into Column/Variable tokens, and a
// Quote/Symbol/Quote triple merges into one Lit token with the quotes
// preserved in-band. Fuse is idempotent: running it again on an already
// canonical command is a no-op (every fusion rule consumes tokens that
// cannot recur in its own output).
func Fuse(cmd Command) (Command, error) {
	toks := cmd.Tokens
	var out []Token
	n := len(toks)

	for i := 0; i < n; {
		t := toks[i]

		switch {
		case t.IsWord("order"):
			if i+1 < n && toks[i+1].IsWord("by") {
				out = append(out, Token{Kind: Word, Text: "order by"})
				i += 2
				continue
			}
			return Command{}, errs.ErrLex.New("order not followed by by")

		case t.IsWord("group"):
			if i+1 < n && toks[i+1].IsWord("by") {
				out = append(out, Token{Kind: Word, Text: "group by"})
				i += 2
				continue
			}
			return Command{}, errs.ErrLex.New("group not followed by by")

		case t.Kind == Symbol && t.Text == "<":
			if i+1 < n && toks[i+1].Kind == Symbol && toks[i+1].Text == "=" {
				out = append(out, Token{Kind: Symbol, Text: "<="})
				i += 2
				continue
			}
			out = append(out, t)
			i++

		case t.Kind == Symbol && t.Text == ">":
			if i+1 < n && toks[i+1].Kind == Symbol && toks[i+1].Text == "=" {
				out = append(out, Token{Kind: Symbol, Text: ">="})
				i += 2
				continue
			}
			out = append(out, t)
			i++

		case t.Kind == Symbol && t.Text == "!":
			if i+1 < n && toks[i+1].Kind == Symbol && toks[i+1].Text == "=" {
				out = append(out, Token{Kind: Symbol, Text: "!="})
				i += 2
				continue
			}
			out = append(out, t)
			i++

		case t.Kind == Symbol && t.Text == "#":
			if i+1 < n && toks[i+1].Kind == Word {
				out = append(out, Token{Kind: Column, Text: "#" + toks[i+1].Text})
				i += 2
				continue
			}
			return Command{}, errs.ErrLex.New("dangling # with no column identifier")

		case t.Kind == Symbol && t.Text == "@":
			if i+1 < n && toks[i+1].Kind == Word {
				out = append(out, Token{Kind: Variable, Text: "@" + toks[i+1].Text})
				i += 2
				continue
			}
			// a bare "@" with nothing to fuse is not a lex error: the
			// dest clause uses a standalone "@" to mean "discard this
			// slot" (see planbuilder's dest-list handling). Any other
			// context that sees a lone "@" Symbol will fail later, in
			// the expression parser, as an unrecognized token.
			out = append(out, t)
			i++

		case t.Kind == Quote:
			// opening quote; body and closing quote must follow, per pass 1.
			if i+2 >= n || toks[i+2].Kind != Quote {
				return Command{}, errs.ErrLex.New("unmatched string literal quote")
			}
			body := toks[i+1].Text
			out = append(out, Token{Kind: Lit, Text: "'" + body + "'"})
			i += 3

		default:
			out = append(out, t)
			i++
		}
	}

	return Command{Tokens: out}, nil
}

// Canonicalize lexes text and fuses every resulting command, dropping
// empty commands along the way (Lex already drops commands with no
// tokens; a command can't become empty during Fuse since every rule is
// token-count non-increasing-to-zero).
func Canonicalize(text string) ([]Command, error) {
	raw, err := Lex(text)
	if err != nil {
		return nil, err
	}
	out := make([]Command, 0, len(raw))
	for _, cmd := range raw {
		fused, err := Fuse(cmd)
		if err != nil {
			return nil, err
		}
		out = append(out, fused)
	}
	return out, nil
}
