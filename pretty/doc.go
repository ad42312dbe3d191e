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

// Package pretty turns syntax trees back into source text.
//
// The output is canonical: for every tree there is exactly one rendering,
// and re-parsing it produces a structurally identical tree. Canonical text
// is minimal except where the grammar is ambiguous, in which case the
// printer inserts the disambiguating marker: a trailing comma in
// one-element arrays, an explicit colon in empty dictionaries. Nested
// bracketed calls fold into pipe chains and attached bodies.
//
// Printing recurses over the tree; nesting depth is bounded by the parser,
// which refuses pathologically deep input before it gets here.
package pretty
