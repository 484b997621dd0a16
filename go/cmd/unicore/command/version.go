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
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"unicore.io/unicore/go/cmd/unicore/cli"
)

// VersionCmd prints the unicore and Unicode versions.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the unicore version and the Unicode version of the selected data.",
	Args:  cobra.NoArgs,
	RunE:  commandVersion,
}

type versionInfo struct {
	Unicore    string `json:"unicore"`
	Unicode    string `json:"unicode"`
	DataSource string `json:"data_source"`
	Go         string `json:"go"`
}

func (v versionInfo) Header() []string { return []string{"unicore", "Unicode", "Data source", "Go"} }

func (v versionInfo) Rows() [][]string {
	return [][]string{{v.Unicore, v.Unicode, v.DataSource, v.Go}}
}

func commandVersion(cmd *cobra.Command, args []string) error {
	t, err := normTables(cmd.Context())
	if err != nil {
		return err
	}
	return cli.Print(cmd.OutOrStdout(), output, versionInfo{
		Unicore:    Version,
		Unicode:    t.UnicodeVersion(),
		DataSource: strings.ToLower(dataSource.Get()),
		Go:         runtime.Version(),
	})
}

func init() {
	Root.AddCommand(VersionCmd)
}
