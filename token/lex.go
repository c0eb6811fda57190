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

import (
	"strings"

	"github.com/cqlkit/cql/errs"
)

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r'
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}

// Lex runs pass 1 over raw command text: it strips `--` line comments,
// skips whitespace, lowercases alphabetic runs, groups digit/'.' runs
// into one numeric token, opens/reads/closes single-quoted string
// literals as three tokens, and splits on ';' into a list of raw
// Commands. Empty commands (no tokens between two ';') are dropped.
func Lex(text string) ([]Command, error) {
	var commands []Command
	var cur Command

	n := len(text)
	i := 0
	for i < n {
		ch := text[i]

		switch {
		case ch == '-' && i+1 < n && text[i+1] == '-':
			// line comment: consume through the next '\n' (or EOF).
			for i < n && text[i] != '\n' {
				i++
			}
			if i < n {
				i++ // consume the newline itself
			}

		case isSpace(ch):
			i++

		case ch == ';':
			if len(cur.Tokens) > 0 {
				commands = append(commands, cur)
			}
			cur = Command{}
			i++

		case isAlpha(ch):
			var b strings.Builder
			for i < n && isAlpha(text[i]) {
				b.WriteByte(toLower(text[i]))
				i++
			}
			cur.Tokens = append(cur.Tokens, Token{Kind: Word, Text: b.String()})

		case isDigit(ch):
			var b strings.Builder
			for i < n && isDigit(text[i]) {
				b.WriteByte(text[i])
				i++
			}
			cur.Tokens = append(cur.Tokens, Token{Kind: Number, Text: b.String()})

		case ch == '\'':
			cur.Tokens = append(cur.Tokens, Token{Kind: Quote, Text: "'"})
			i++
			var b strings.Builder
			closed := false
			for i < n {
				if text[i] == '\'' {
					closed = true
					break
				}
				b.WriteByte(text[i])
				i++
			}
			if !closed {
				return nil, errs.ErrLex.New("unterminated string literal")
			}
			cur.Tokens = append(cur.Tokens, Token{Kind: Symbol, Text: b.String()})
			cur.Tokens = append(cur.Tokens, Token{Kind: Quote, Text: "'"})
			i++ // consume closing quote

		default:
			cur.Tokens = append(cur.Tokens, Token{Kind: Symbol, Text: string(ch)})
			i++
		}
	}

	if len(cur.Tokens) > 0 {
		commands = append(commands, cur)
	}
	return commands, nil
}
