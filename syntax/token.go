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

// Token classifies a lexeme produced by the external lexer.
//
// The lexer itself lives outside of this module; the token kinds are defined
// here because they are the shared vocabulary between the lexer, the parser
// and the operator tables in this package (see [UnOpFromToken] and
// [BinOpFromToken]).
type Token uint8

const (
	// TokenInvalid is the zero Token. The lexer never produces it for valid
	// input; it doubles as a "no token" sentinel.
	TokenInvalid Token = iota

	// Grouping.

	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenHashBracket  // #[

	// Punctuation.

	TokenComma     // ,
	TokenSemicolon // ;
	TokenColon     // :
	TokenPipe      // |

	// Operators and markup particles. Star and Underscore double as the
	// strong and emph toggles in markup mode.

	TokenStar       // *
	TokenUnderscore // _
	TokenBackslash  // \
	TokenPlus       // +
	TokenHyph       // -
	TokenSlash      // /
	TokenEq         // =
	TokenEqEq       // ==
	TokenBangEq     // !=
	TokenLt         // <
	TokenLtEq       // <=
	TokenGt         // >
	TokenGtEq       // >=
	TokenPlusEq     // +=
	TokenHyphEq     // -=
	TokenStarEq     // *=
	TokenSlashEq    // /=

	// Keywords.

	TokenNot  // not
	TokenAnd  // and
	TokenOr   // or
	TokenNone // none
	TokenLet  // #let
	TokenIf   // #if
	TokenElse // #else
	TokenFor  // #for
	TokenIn   // #in

	// Tokens with payloads. The payload itself stays with the lexer; only
	// the classification is shared.

	TokenSpace
	TokenText
	TokenLineComment
	TokenBlockComment
	TokenIdent
	TokenBool
	TokenInt
	TokenFloat
	TokenLength
	TokenAngle
	TokenPercent
	TokenHex
	TokenStr
	TokenRaw

	tokenCount
)

var tokenNames = [...]string{
	TokenInvalid:      "invalid",
	TokenLeftBracket:  "[",
	TokenRightBracket: "]",
	TokenLeftBrace:    "{",
	TokenRightBrace:   "}",
	TokenLeftParen:    "(",
	TokenRightParen:   ")",
	TokenHashBracket:  "#[",
	TokenComma:        ",",
	TokenSemicolon:    ";",
	TokenColon:        ":",
	TokenPipe:         "|",
	TokenStar:         "*",
	TokenUnderscore:   "_",
	TokenBackslash:    `\`,
	TokenPlus:         "+",
	TokenHyph:         "-",
	TokenSlash:        "/",
	TokenEq:           "=",
	TokenEqEq:         "==",
	TokenBangEq:       "!=",
	TokenLt:           "<",
	TokenLtEq:         "<=",
	TokenGt:           ">",
	TokenGtEq:         ">=",
	TokenPlusEq:       "+=",
	TokenHyphEq:       "-=",
	TokenStarEq:       "*=",
	TokenSlashEq:      "/=",
	TokenNot:          "not",
	TokenAnd:          "and",
	TokenOr:           "or",
	TokenNone:         "none",
	TokenLet:          "#let",
	TokenIf:           "#if",
	TokenElse:         "#else",
	TokenFor:          "#for",
	TokenIn:           "#in",
	TokenSpace:        "space",
	TokenText:         "text",
	TokenLineComment:  "line comment",
	TokenBlockComment: "block comment",
	TokenIdent:        "identifier",
	TokenBool:         "boolean",
	TokenInt:          "integer",
	TokenFloat:        "float",
	TokenLength:       "length",
	TokenAngle:        "angle",
	TokenPercent:      "percentage",
	TokenHex:          "color",
	TokenStr:          "string",
	TokenRaw:          "raw block",
}

// String returns the token's fixed spelling, or a short description for
// token kinds that carry a payload.
func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "unknown"
}
