// Copyright 2024-2026 The Typst Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type opEntry struct {
	Op            string `yaml:"op"`
	Precedence    int    `yaml:"precedence"`
	Associativity string `yaml:"associativity"`
}

type opTable struct {
	Unary  []opEntry `yaml:"unary"`
	Binary []opEntry `yaml:"binary"`
}

// TestOperatorGoldenTable pins the operator metadata against the golden
// table in testdata, so drive-by changes to spellings or precedence levels
// show up as a deliberate diff.
func TestOperatorGoldenTable(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("testdata/operators.yaml")
	require.NoError(t, err)

	var table opTable
	require.NoError(t, yaml.Unmarshal(data, &table))

	unops := UnOps()
	require.Len(t, table.Unary, len(unops))
	for i, op := range unops {
		assert.Equal(t, table.Unary[i].Op, op.String())
		assert.Equal(t, table.Unary[i].Precedence, op.Precedence())
	}

	binops := BinOps()
	require.Len(t, table.Binary, len(binops))
	for i, op := range binops {
		assert.Equal(t, table.Binary[i].Op, op.String())
		assert.Equal(t, table.Binary[i].Precedence, op.Precedence())
		assert.Equal(t, table.Binary[i].Associativity, op.Associativity().String())
	}
}

// TestTokenOperatorBijection checks that operator classification is a
// bijection between operator tokens and operators: every operator comes
// from exactly one token, and that token's spelling is the operator's.
func TestTokenOperatorBijection(t *testing.T) {
	t.Parallel()

	for _, op := range UnOps() {
		var sources []Token
		for tok := TokenInvalid; tok < tokenCount; tok++ {
			if got, ok := UnOpFromToken(tok); ok && got == op {
				sources = append(sources, tok)
			}
		}
		require.Len(t, sources, 1, "unary %q", op)
		assert.Equal(t, op.String(), sources[0].String())
	}

	for _, op := range BinOps() {
		var sources []Token
		for tok := TokenInvalid; tok < tokenCount; tok++ {
			if got, ok := BinOpFromToken(tok); ok && got == op {
				sources = append(sources, tok)
			}
		}
		require.Len(t, sources, 1, "binary %q", op)
		assert.Equal(t, op.String(), sources[0].String())
	}
}

// TestSharedPrecedenceSharesAssociativity checks the system invariant the
// parser's precedence climbing relies on: all operators on one precedence
// level associate the same way.
func TestSharedPrecedenceSharesAssociativity(t *testing.T) {
	t.Parallel()

	byLevel := make(map[int]Associativity)
	for _, op := range BinOps() {
		level := op.Precedence()
		if assoc, ok := byLevel[level]; ok {
			assert.Equal(t, assoc, op.Associativity(), "operator %q", op)
		} else {
			byLevel[level] = op.Associativity()
		}
	}
}

func TestNonOperatorTokens(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, tok := range []Token{
		TokenInvalid, TokenComma, TokenColon, TokenSemicolon, TokenPipe,
		TokenLeftParen, TokenIdent, TokenInt, TokenLet, TokenIn, TokenText,
	} {
		_, ok := UnOpFromToken(tok)
		assert.False(ok, "unary %q", tok)
		_, ok = BinOpFromToken(tok)
		assert.False(ok, "binary %q", tok)
	}

	// Star and underscore double as markup toggles; only star is an
	// operator, and only a binary one.
	_, ok := BinOpFromToken(TokenStar)
	assert.True(ok)
	_, ok = UnOpFromToken(TokenStar)
	assert.False(ok)
	_, ok = BinOpFromToken(TokenUnderscore)
	assert.False(ok)
}
