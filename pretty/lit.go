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

package pretty

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mrArkwright/typst/syntax"
)

func (p *Printer) lit(lit *syntax.Lit) {
	switch kind := lit.Kind.(type) {
	case syntax.LitNone:
		p.str("none")
	case syntax.LitBool:
		p.str(strconv.FormatBool(bool(kind)))
	case syntax.LitInt:
		p.str(strconv.FormatInt(int64(kind), 10))
	case syntax.LitFloat:
		p.str(formatFloat(float64(kind)))
	case syntax.LitLength:
		p.str(formatFloat(kind.Value))
		p.str(kind.Unit.String())
	case syntax.LitAngle:
		p.str(formatFloat(kind.Value))
		p.str(kind.Unit.String())
	case syntax.LitPercent:
		p.str(formatFloat(float64(kind)))
		p.push('%')
	case syntax.LitColor:
		p.color(syntax.RGBA(kind))
	case syntax.LitStr:
		p.quoted(string(kind))
	default:
		panic("pretty: invalid literal kind")
	}
}

// formatFloat renders the shortest decimal form that parses back to the
// same value, always keeping a decimal point or exponent so the result
// still reads as a float: `10.0`, not `10`.
//
// Parsers never produce non-finite values; should one reach the printer
// anyway it renders as `nan`, `inf` or `-inf` to keep printing total.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, +1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// color renders `#rrggbb`, appending the alpha pair only when the color is
// not fully opaque.
func (p *Printer) color(c syntax.RGBA) {
	p.str(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	if c.A != 0xff {
		p.str(fmt.Sprintf("%02x", c.A))
	}
}

// quoted renders a string literal, re-escaping exactly the characters that
// would terminate or corrupt it: the backslash and the double quote.
func (p *Printer) quoted(s string) {
	p.push('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '\\' || b == '"' {
			p.push('\\')
		}
		p.push(b)
	}
	p.push('"')
}
