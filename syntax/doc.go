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

// Package syntax defines the syntax tree of the scripting sublanguage
// embedded in the markup language, along with the token and operator
// metadata the external parser consumes.
//
// The set of expression variants ([Expr]) and markup node kinds ([Node])
// are closed: each is a sealed interface dispatched with type switches, so
// a new variant surfaces as a missing case in every consumer.
//
// Trees are built once by the parser and are immutable afterwards. All
// types in this package are safe for concurrent readers.
package syntax
