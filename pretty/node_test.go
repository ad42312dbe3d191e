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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mrArkwright/typst/pretty"
	"github.com/mrArkwright/typst/syntax"
)

func TestPrintMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tree syntax.Tree
		want string
	}{
		{"strong", syntax.Tree{syntax.Strong{}}, "*"},
		{"emph", syntax.Tree{syntax.Emph{}}, "_"},
		{"space", syntax.Tree{syntax.Space{}}, " "},
		{"text", syntax.Tree{text("hi")}, "hi"},
		{"linebreak", syntax.Tree{syntax.Linebreak{}, syntax.Space{}}, "\\ "},
		{"parbreak", syntax.Tree{syntax.Parbreak{}}, "\n\n"},
		{
			"heading",
			syntax.Tree{&syntax.Heading{
				Level: 1,
				Body:  syntax.Tree{syntax.Space{}, syntax.Strong{}, text("Ok"), syntax.Strong{}},
			}},
			"= *Ok*",
		},
		{
			"heading-deep",
			syntax.Tree{&syntax.Heading{
				Level: 3,
				Body:  syntax.Tree{syntax.Space{}, text("Sub")},
			}},
			"=== Sub",
		},
		{
			"mixed",
			syntax.Tree{syntax.Strong{}, text("Hi"), syntax.Strong{}, syntax.Space{}, text("there!")},
			"*Hi* there!",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			requireEqualText(t, test.want, pretty.Print(test.tree))
		})
	}
}

func TestPrintRaw(t *testing.T) {
	t.Parallel()

	lang := &syntax.Ident{Name: "lang"}
	py := &syntax.Ident{Name: "py"}

	tests := []struct {
		name string
		raw  *syntax.Raw
		want string
	}{
		{"empty", &syntax.Raw{}, "``"},
		{"inline", &syntax.Raw{Lines: []string{"nolang 1"}}, "`nolang 1`"},
		{"lang", &syntax.Raw{Lang: lang, Lines: []string{"1"}}, "```lang 1```"},
		{"lang-empty", &syntax.Raw{Lang: lang}, "```lang ```"},

		// Backtick content pushes the fence out and pads both sides.
		{"backtick", &syntax.Raw{Lines: []string{"`"}}, "``` ` ```"},
		{
			"backtick-runs",
			&syntax.Raw{Lines: []string{"```"}, Block: true},
			"````\n```\n````",
		},
		{
			"backtick-lines",
			&syntax.Raw{Lines: []string{"```", "```"}, Block: true},
			"````\n```\n```\n````",
		},

		// Block raws keep the fences on their own lines.
		{"block", &syntax.Raw{Lang: py, Lines: []string{"def"}, Block: true}, "```py\ndef\n```"},
		{"block-padded", &syntax.Raw{Lines: []string{" line "}, Block: true}, "```\n line \n```"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			requireEqualText(t, test.want, pretty.PrintNode(test.raw))
		})
	}
}

// TestConcurrentPrinting prints a tree that shares one template sub-tree
// from many goroutines at once. Trees are immutable, so the prints must
// agree without any coordination.
func TestConcurrentPrinting(t *testing.T) {
	t.Parallel()

	shared := syntax.Tree{syntax.Strong{}, text("Hi"), syntax.Strong{}}
	tree := syntax.Tree{
		markup(call("v", pos(num(1)), pos(&syntax.ExprTemplate{Tree: shared}))),
		syntax.Parbreak{},
		markup(&syntax.ExprTemplate{Tree: shared}),
	}

	want := pretty.Print(tree)
	require.Equal(t, "#[v 1][*Hi*]\n\n[*Hi*]", want)

	var group errgroup.Group
	for range 16 {
		group.Go(func() error {
			for range 100 {
				if got := pretty.Print(tree); got != want {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, group.Wait())
}
