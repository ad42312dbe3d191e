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

// Lit is a literal expression.
type Lit struct {
	Span Span
	Kind LitKind
}

// LitKind is the closed set of literal kinds.
//
// Implemented by [LitNone], [LitBool], [LitInt], [LitFloat], [LitLength],
// [LitAngle], [LitPercent], [LitColor] and [LitStr].
type LitKind interface {
	litKind()
}

// LitNone is the none literal: `none`.
type LitNone struct{}

// LitBool is a boolean literal: `true`, `false`.
type LitBool bool

// LitInt is an integer literal: `120`.
type LitInt int64

// LitFloat is a floating-point literal: `1.2`, `10e-4`.
type LitFloat float64

// LitLength is a length literal: `12pt`, `3cm`.
type LitLength struct {
	Value float64
	Unit  LengthUnit
}

// LitAngle is an angle literal: `1.5rad`, `90deg`.
type LitAngle struct {
	Value float64
	Unit  AngularUnit
}

// LitPercent is a percent literal: `50%`.
//
// The value is stored in percent units, so `50%` is stored as 50.0 here
// even though the corresponding runtime value is the relative 0.5.
type LitPercent float64

// LitColor is a color literal: `#ffccee`.
type LitColor RGBA

// LitStr is a string literal: `"hello!"`.
type LitStr string

func (LitNone) litKind()    {}
func (LitBool) litKind()    {}
func (LitInt) litKind()     {}
func (LitFloat) litKind()   {}
func (LitLength) litKind()  {}
func (LitAngle) litKind()   {}
func (LitPercent) litKind() {}
func (LitColor) litKind()   {}
func (LitStr) litKind()     {}

// LengthUnit is the unit a length literal is expressed in.
type LengthUnit uint8

const (
	// UnitPt is the typographic point unit: 1/72 inch.
	UnitPt LengthUnit = iota
	// UnitMm is the millimeter unit.
	UnitMm
	// UnitCm is the centimeter unit.
	UnitCm
	// UnitIn is the inch unit.
	UnitIn
)

// String returns the unit's suffix as it appears in source.
func (u LengthUnit) String() string {
	switch u {
	case UnitPt:
		return "pt"
	case UnitMm:
		return "mm"
	case UnitCm:
		return "cm"
	case UnitIn:
		return "in"
	default:
		panic("syntax: invalid length unit")
	}
}

// AngularUnit is the unit an angle literal is expressed in.
type AngularUnit uint8

const (
	// UnitRad is the radians unit.
	UnitRad AngularUnit = iota
	// UnitDeg is the degrees unit.
	UnitDeg
)

// String returns the unit's suffix as it appears in source.
func (u AngularUnit) String() string {
	switch u {
	case UnitRad:
		return "rad"
	case UnitDeg:
		return "deg"
	default:
		panic("syntax: invalid angular unit")
	}
}

// RGBA is a color with red, green, blue and alpha channels of one byte
// each, as denoted by a hex literal like `#f79143`.
type RGBA struct {
	R, G, B, A uint8
}

// RGB returns the opaque color with the given channels.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 0xff}
}
