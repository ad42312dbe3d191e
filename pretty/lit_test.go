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

package pretty_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrArkwright/typst/pretty"
	"github.com/mrArkwright/typst/syntax"
)

func TestFloatFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{3.14, "3.14"},
		{10, "10.0"},
		{-0.5, "-0.5"},
		{0, "0.0"},
		{1e21, "1e+21"},
		{1.5e-10, "1.5e-10"},
		{0.1, "0.1"},
		{1.0 / 3.0, "0.3333333333333333"},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			t.Parallel()
			got := pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitFloat(test.value)})
			assert.Equal(t, test.want, got)

			// Shortest round-trip form: parsing the text recovers the bits.
			parsed, err := strconv.ParseFloat(got, 64)
			require.NoError(t, err)
			assert.Equal(t, test.value, parsed)
		})
	}
}

func TestNonFiniteFloats(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Parsers never produce these; printing stays total anyway.
	assert.Equal("nan", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitFloat(math.NaN())}))
	assert.Equal("inf", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitFloat(math.Inf(+1))}))
	assert.Equal("-inf", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitFloat(math.Inf(-1))}))
	assert.Equal("infpt", pretty.PrintExpr(&syntax.Lit{
		Kind: syntax.LitLength{Value: math.Inf(+1), Unit: syntax.UnitPt},
	}))
}

func TestUnits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// The unit attaches with no separator.
	assert.Equal("12.0pt", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitLength{Value: 12, Unit: syntax.UnitPt}}))
	assert.Equal("2.5cm", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitLength{Value: 2.5, Unit: syntax.UnitCm}}))
	assert.Equal("3.0mm", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitLength{Value: 3, Unit: syntax.UnitMm}}))
	assert.Equal("1.0in", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitLength{Value: 1, Unit: syntax.UnitIn}}))
	assert.Equal("90.0deg", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitAngle{Value: 90, Unit: syntax.UnitDeg}}))
	assert.Equal("1.5rad", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitAngle{Value: 1.5, Unit: syntax.UnitRad}}))
	assert.Equal("50.0%", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitPercent(50)}))
}

func TestColors(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("#abcdef", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitColor(syntax.RGB(0xab, 0xcd, 0xef))}))
	assert.Equal("#000000", pretty.PrintExpr(&syntax.Lit{Kind: syntax.LitColor(syntax.RGB(0, 0, 0))}))

	// A translucent color keeps its alpha pair so the text parses back to
	// the same value.
	assert.Equal("#f7914380", pretty.PrintExpr(&syntax.Lit{
		Kind: syntax.LitColor(syntax.RGBA{R: 0xf7, G: 0x91, B: 0x43, A: 0x80}),
	}))
}
