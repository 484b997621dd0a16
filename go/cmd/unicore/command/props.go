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
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"unicore.io/unicore/go/cmd/unicore/cli"
	"unicore.io/unicore/go/unicode/norm"
	"unicore.io/unicore/go/unicode/properties"
	"unicore.io/unicore/go/unicode/provider"
	"unicore.io/unicore/go/unicode/umap"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

// Props prints the properties of code points.
var Props = &cobra.Command{
	Use:   "props <code point | text> ...",
	Short: "Prints the properties of code points.",
	Long: "Prints General_Category, Script, Canonical_Combining_Class, the quick-check value of each " +
		"normalization form, Script_Extensions and the binary properties of each code point. Tables " +
		"the data provider lacks are left out. Arguments are U+XXXX or " +
		"0xXXXX code points, or text whose characters are looked up one by one.",
	Example: "unicore props U+00E9 0x1100\nunicore props -o json 'A\\u0301'",
	Args:    cobra.MinimumNArgs(1),
	RunE:    commandProps,
}

type codePointProps struct {
	CodePoint       string            `json:"code_point"`
	GeneralCategory string            `json:"general_category"`
	Script          string            `json:"script"`
	CombiningClass  uint8             `json:"canonical_combining_class"`
	QuickCheck      map[string]string `json:"quick_check"`
	Binary          []string          `json:"binary_properties"`
	// ScriptExtensions is empty when the provider has no such table.
	ScriptExtensions []string `json:"script_extensions,omitempty"`
}

type propsReport []codePointProps

func (r propsReport) Header() []string {
	h := []string{"Code point", "gc", "sc", "ccc"}
	for _, f := range norm.Forms() {
		h = append(h, f.String()+"_QC")
	}
	return append(h, "Binary")
}

func (r propsReport) Rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, p := range r {
		row := []string{p.CodePoint, p.GeneralCategory, p.Script, strconv.Itoa(int(p.CombiningClass))}
		for _, f := range norm.Forms() {
			row = append(row, p.QuickCheck[f.String()])
		}
		rows = append(rows, append(row, strings.Join(p.Binary, " ")))
	}
	return rows
}

// propertyTables holds every table a props lookup needs.
type propertyTables struct {
	gc     *umap.MaskMap[uprops.GeneralCategory]
	script *umap.Map[uprops.Script]
	ccc    *umap.Map[uprops.CanonicalCombiningClass]
	binary map[uprops.BinaryProperty]*uset.Set
	scx    *properties.ScriptExtensions
	forms  []*norm.Normalizer
}

func loadPropertyTables(ctx context.Context) (*propertyTables, error) {
	p, err := dataProvider(ctx)
	if err != nil {
		return nil, err
	}
	pt := &propertyTables{binary: make(map[uprops.BinaryProperty]*uset.Set)}
	if pt.gc, err = properties.LoadGeneralCategory(ctx, p); err != nil {
		return nil, err
	}
	if pt.script, err = properties.LoadScript(ctx, p); err != nil {
		return nil, err
	}
	if pt.ccc, err = properties.LoadCanonicalCombiningClass(ctx, p); err != nil {
		return nil, err
	}
	for _, prop := range uprops.BinaryProperties() {
		s, err := properties.LoadBinary(ctx, p, prop)
		if errors.Is(err, provider.ErrNoTable) {
			continue
		}
		if err != nil {
			return nil, err
		}
		pt.binary[prop] = s
	}
	pt.scx, err = properties.LoadScriptExtensions(ctx, p)
	if err != nil && !errors.Is(err, provider.ErrNoTable) {
		return nil, err
	}
	t, err := normTables(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range norm.Forms() {
		pt.forms = append(pt.forms, norm.NewWithTables(t, f))
	}
	return pt, nil
}

func (pt *propertyTables) lookup(r rune) codePointProps {
	cp := codePointProps{
		CodePoint:       codePointLabel(r),
		GeneralCategory: pt.gc.Get(r).ShortName(),
		Script:          pt.script.Get(r).ShortName(),
		CombiningClass:  uint8(pt.ccc.Get(r)),
		QuickCheck:      make(map[string]string, len(pt.forms)),
	}
	for _, n := range pt.forms {
		cp.QuickCheck[n.Form().String()] = n.QuickCheck(r).String()
	}
	for _, prop := range uprops.BinaryProperties() {
		if s, ok := pt.binary[prop]; ok && s.Contains(r) {
			cp.Binary = append(cp.Binary, prop.ShortName())
		}
	}
	if pt.scx != nil {
		for _, sc := range pt.scx.Get(r) {
			cp.ScriptExtensions = append(cp.ScriptExtensions, sc.ShortName())
		}
	}
	return cp
}

func commandProps(cmd *cobra.Command, args []string) error {
	runes, err := parseCodePoints(args)
	if err != nil {
		return err
	}
	pt, err := loadPropertyTables(cmd.Context())
	if err != nil {
		return err
	}
	report := make(propsReport, 0, len(runes))
	for _, r := range runes {
		report = append(report, pt.lookup(r))
	}
	return cli.Print(cmd.OutOrStdout(), output, report)
}

func init() {
	Root.AddCommand(Props)
}
