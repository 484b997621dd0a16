/*
Copyright 2026 The Unicore Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"unicore.io/unicore/go/cmd/unicore/cli"
	"unicore.io/unicore/go/unicode/norm"
)

// Decompose prints decomposition trees.
var Decompose = &cobra.Command{
	Use:   "decompose <code point | text> ...",
	Short: "Prints the decomposition tree of code points.",
	Long: "Prints how each code point decomposes, one mapping step per level. Compatibility mappings " +
		"are marked <compat>; Hangul syllables decompose algorithmically.",
	Example: "unicore decompose U+1E9B U+AC01\nunicore decompose -o yaml U+FB01",
	Args:    cobra.MinimumNArgs(1),
	RunE:    commandDecompose,
}

// decomposition is one node of a decomposition tree.
type decomposition struct {
	CodePoint      string          `json:"code_point"`
	CombiningClass uint8           `json:"canonical_combining_class,omitempty"`
	Compat         bool            `json:"compat,omitempty"`
	Parts          []decomposition `json:"parts,omitempty"`
}

func decompose(t *norm.Tables, r rune, compat bool) decomposition {
	d := decomposition{
		CodePoint:      codePointLabel(r),
		CombiningClass: t.CombiningClass(r),
		Compat:         compat,
	}
	m, isCompat, ok := t.Mapping(r)
	if !ok {
		return d
	}
	for _, c := range m {
		d.Parts = append(d.Parts, decompose(t, c, isCompat))
	}
	return d
}

func (d decomposition) label() string {
	s := d.CodePoint
	if d.CombiningClass != 0 {
		s += fmt.Sprintf(" ccc=%d", d.CombiningClass)
	}
	if d.Compat {
		s = "<compat> " + s
	}
	return s
}

func (d decomposition) addTo(branch treeprint.Tree) {
	for _, p := range d.Parts {
		if len(p.Parts) == 0 {
			branch.AddNode(p.label())
			continue
		}
		p.addTo(branch.AddBranch(p.label()))
	}
}

func printTrees(w io.Writer, trees []decomposition) error {
	for _, d := range trees {
		root := treeprint.NewWithRoot(d.label())
		d.addTo(root)
		if _, err := io.WriteString(w, root.String()); err != nil {
			return err
		}
	}
	return nil
}

func commandDecompose(cmd *cobra.Command, args []string) error {
	runes, err := parseCodePoints(args)
	if err != nil {
		return err
	}
	t, err := normTables(cmd.Context())
	if err != nil {
		return err
	}
	trees := make([]decomposition, 0, len(runes))
	for _, r := range runes {
		trees = append(trees, decompose(t, r, false))
	}
	if output == cli.FormatTable {
		return printTrees(cmd.OutOrStdout(), trees)
	}
	return cli.Print(cmd.OutOrStdout(), output, trees)
}

func init() {
	Root.AddCommand(Decompose)
}
