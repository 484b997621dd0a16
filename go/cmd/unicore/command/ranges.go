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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"unicore.io/unicore/go/cmd/unicore/cli"
	"unicore.io/unicore/go/uerrors"
	"unicore.io/unicore/go/unicode/properties"
	"unicore.io/unicore/go/unicode/uprops"
	"unicore.io/unicore/go/unicode/uset"
)

var (
	rangesOptions = struct {
		GeneralCategory string
		Script          string
		CombiningClass  string
		Binary          string
		Complement      bool
	}{}

	// Ranges lists the code point ranges that have a property value.
	Ranges = &cobra.Command{
		Use:   "ranges (--gc <group> | --script <script> | --ccc <class> | --binary <property>)",
		Short: "Lists the code point ranges that have a property value.",
		Example: "unicore ranges --gc L\n" +
			"unicore ranges --script Hang -o json\n" +
			"unicore ranges --binary White_Space --complement",
		Args: cobra.NoArgs,
		RunE: commandRanges,
	}
)

type rangeRow struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Length int    `json:"length"`
}

type rangesReport struct {
	Property   string     `json:"property"`
	CodePoints int        `json:"code_points"`
	Pattern    string     `json:"pattern"`
	Ranges     []rangeRow `json:"ranges"`
}

func (r rangesReport) Header() []string { return []string{"Start", "End", "Length"} }

func (r rangesReport) Rows() [][]string {
	rows := make([][]string, 0, len(r.Ranges)+1)
	for _, rr := range r.Ranges {
		rows = append(rows, []string{rr.Start, rr.End, strconv.Itoa(rr.Length)})
	}
	return append(rows, []string{r.Property, "", strconv.Itoa(r.CodePoints)})
}

func newRangesReport(name string, s *uset.Set) rangesReport {
	report := rangesReport{Property: name, CodePoints: s.Len(), Pattern: s.String()}
	for r := range s.Ranges() {
		report.Ranges = append(report.Ranges, rangeRow{
			Start:  fmt.Sprintf("U+%04X", r.Start),
			End:    fmt.Sprintf("U+%04X", r.End),
			Length: r.Len(),
		})
	}
	return report
}

// selectSet resolves the single selector flag that was given.
func selectSet(ctx context.Context) (string, *uset.Set, error) {
	o := rangesOptions
	given := 0
	for _, v := range []string{o.GeneralCategory, o.Script, o.CombiningClass, o.Binary} {
		if v != "" {
			given++
		}
	}
	if given != 1 {
		return "", nil, uerrors.New(uerrors.InvalidArgument, "exactly one of --gc, --script, --ccc or --binary is required")
	}

	p, err := dataProvider(ctx)
	if err != nil {
		return "", nil, err
	}
	switch {
	case o.GeneralCategory != "":
		g, err := uprops.ParseGeneralCategoryGroup(o.GeneralCategory)
		if err != nil {
			return "", nil, err
		}
		s, err := properties.SetForGeneralCategoryGroup(ctx, p, g)
		return "gc=" + g.String(), s, err
	case o.Script != "":
		sc, err := uprops.ParseScript(o.Script)
		if err != nil {
			return "", nil, err
		}
		m, err := properties.LoadScript(ctx, p)
		if err != nil {
			return "", nil, err
		}
		return "sc=" + sc.ShortName(), m.SetForValue(sc), nil
	case o.CombiningClass != "":
		ccc, err := uprops.ParseCanonicalCombiningClass(o.CombiningClass)
		if err != nil {
			return "", nil, err
		}
		m, err := properties.LoadCanonicalCombiningClass(ctx, p)
		if err != nil {
			return "", nil, err
		}
		return "ccc=" + ccc.ShortName(), m.SetForValue(ccc), nil
	default:
		prop, err := uprops.ParseBinaryProperty(o.Binary)
		if err != nil {
			return "", nil, err
		}
		s, err := properties.LoadBinary(ctx, p, prop)
		return prop.String(), s, err
	}
}

func commandRanges(cmd *cobra.Command, args []string) error {
	name, s, err := selectSet(cmd.Context())
	if err != nil {
		return err
	}
	if rangesOptions.Complement {
		name, s = "!"+name, s.Complement()
	}
	return cli.Print(cmd.OutOrStdout(), output, newRangesReport(name, s))
}

func init() {
	fs := Ranges.Flags()
	fs.StringVar(&rangesOptions.GeneralCategory, "gc", "", "General_Category value or group, e.g. Lu or L")
	fs.StringVar(&rangesOptions.Script, "script", "", "Script code or name, e.g. Latn or Latin")
	fs.StringVar(&rangesOptions.CombiningClass, "ccc", "", "Canonical_Combining_Class number or alias, e.g. 230 or Above")
	fs.StringVar(&rangesOptions.Binary, "binary", "", "binary property, e.g. White_Space")
	fs.BoolVar(&rangesOptions.Complement, "complement", false, "list the code points that do not have the value")
	Root.AddCommand(Ranges)
}
