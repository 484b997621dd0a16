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
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"unicore.io/unicore/go/cmd/unicore/cli"
	"unicore.io/unicore/go/unicode/norm"
)

// Check reports, for every form, whether text is normalized.
var Check = &cobra.Command{
	Use:   "check [text ...]",
	Short: "Reports whether text is in each normalization form.",
	Long: "For each argument, or standard input when there are none, reports per normalization form " +
		"whether the text is normalized and the length in bytes of its longest normalized prefix.",
	RunE: commandCheck,
}

type formCheck struct {
	Form           string `json:"form"`
	Normalized     bool   `json:"normalized"`
	NormalizedUpTo int    `json:"normalized_up_to"`
	Length         int    `json:"length"`
}

type textCheck struct {
	Text  string      `json:"text"`
	Forms []formCheck `json:"forms"`
}

type checkReport []textCheck

func (r checkReport) Header() []string {
	return []string{"Text", "Form", "Normalized", "Prefix", "Length"}
}

func (r checkReport) Rows() [][]string {
	var rows [][]string
	for _, tc := range r {
		for _, fc := range tc.Forms {
			rows = append(rows, []string{
				strconv.QuoteToASCII(tc.Text),
				fc.Form,
				strconv.FormatBool(fc.Normalized),
				strconv.Itoa(fc.NormalizedUpTo),
				strconv.Itoa(fc.Length),
			})
		}
	}
	return rows
}

func checkText(t *norm.Tables, text string) textCheck {
	tc := textCheck{Text: text}
	for _, f := range norm.Forms() {
		n := norm.NewWithTables(t, f)
		k := n.IsNormalizedUpTo(text)
		tc.Forms = append(tc.Forms, formCheck{
			Form:           f.String(),
			Normalized:     k == len(text),
			NormalizedUpTo: k,
			Length:         len(text),
		})
	}
	return tc
}

func commandCheck(cmd *cobra.Command, args []string) error {
	t, err := normTables(cmd.Context())
	if err != nil {
		return err
	}
	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		args = []string{string(in)}
	}

	var report checkReport
	for _, arg := range args {
		report = append(report, checkText(t, arg))
	}
	return cli.Print(cmd.OutOrStdout(), output, report)
}

func init() {
	Root.AddCommand(Check)
}
