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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeSplitsOnSemicolon(t *testing.T) {
	cmds, err := Canonicalize("select 1; select 2;")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"select", "1"}, cmds[0].Text())
	assert.Equal(t, []string{"select", "2"}, cmds[1].Text())
}

func TestCanonicalizeLowercasesWords(t *testing.T) {
	cmds, err := Canonicalize("SELECT #Foo FROM Bar;")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, Word, cmds[0].Tokens[0].Kind)
	assert.Equal(t, "select", cmds[0].Tokens[0].Text)
}

func TestCanonicalizeFusesColumnAndVariable(t *testing.T) {
	cmds, err := Canonicalize("select #name, @x;")
	require.NoError(t, err)
	toks := cmds[0].Tokens
	require.Len(t, toks, 4)
	assert.Equal(t, Column, toks[1].Kind)
	assert.Equal(t, "#name", toks[1].Text)
	assert.Equal(t, Variable, toks[3].Kind)
	assert.Equal(t, "@x", toks[3].Text)
}

func TestCanonicalizeFusesCompoundKeywordsAndOperators(t *testing.T) {
	cmds, err := Canonicalize("select 1 from t order by 1 where 1 <= 2 and 1 != 2;")
	require.NoError(t, err)
	toks := cmds[0].Tokens
	var found bool
	for _, tok := range toks {
		if tok.IsWord("order by") {
			found = true
		}
	}
	assert.True(t, found, "expected a fused 'order by' token")

	var sawLe, sawNe bool
	for _, tok := range toks {
		if tok.Kind == Symbol && tok.Text == "<=" {
			sawLe = true
		}
		if tok.Kind == Symbol && tok.Text == "!=" {
			sawNe = true
		}
	}
	assert.True(t, sawLe)
	assert.True(t, sawNe)
}

func TestCanonicalizeFusesStringLiteral(t *testing.T) {
	cmds, err := Canonicalize("select 'hello world';")
	require.NoError(t, err)
	toks := cmds[0].Tokens
	require.Len(t, toks, 2)
	assert.Equal(t, Lit, toks[1].Kind)
	assert.Equal(t, "'hello world'", toks[1].Text)
}

func TestCanonicalizeDanglingColumnIsLexError(t *testing.T) {
	_, err := Canonicalize("select # ;")
	assert.Error(t, err)
}

func TestCanonicalizeDanglingVariablePassesThroughForDestDiscard(t *testing.T) {
	cmds, err := Canonicalize("select 1 dest @, @x;")
	require.NoError(t, err)
	toks := cmds[0].Tokens
	assert.Equal(t, Symbol, toks[3].Kind)
	assert.Equal(t, "@", toks[3].Text)
}

func TestCanonicalizeUnterminatedStringIsLexError(t *testing.T) {
	_, err := Canonicalize("select 'unterminated;")
	assert.Error(t, err)
}

func TestCanonicalizeDropsEmptyCommands(t *testing.T) {
	cmds, err := Canonicalize(";;select 1;;")
	require.NoError(t, err)
	require.Len(t, cmds, 1)
}

func TestCanonicalizeStripsLineComments(t *testing.T) {
	cmds, err := Canonicalize("select 1; -- a comment\nselect 2;")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"select", "2"}, cmds[1].Text())
}
