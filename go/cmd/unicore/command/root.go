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

// Package command contains the cobra commands of the unicore binary.
package command

import (
	"github.com/spf13/cobra"

	"unicore.io/unicore/go/cmd/unicore/cli"
	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/provider/blob"
	"unicore.io/unicore/go/utils"
	"unicore.io/unicore/go/viperutil"
)

// Version is the unicore release, set at link time.
var Version = "dev"

var (
	dataSource = viperutil.Configure("data.source", viperutil.Options[string]{
		Default:  "compiled",
		FlagName: "data-source",
		EnvVars:  []string{"UNICORE_DATA_SOURCE"},
	})
	dataLocation = viperutil.Configure("data.location", viperutil.Options[string]{
		FlagName: "data-location",
		EnvVars:  []string{"UNICORE_DATA_LOCATION"},
	})
	blobName = viperutil.Configure("data.blob-name", viperutil.Options[string]{
		Default:  blob.DefaultName,
		FlagName: "blob-name",
		EnvVars:  []string{"UNICORE_BLOB_NAME"},
	})
	minUnicodeVersion = viperutil.Configure("data.min-unicode-version", viperutil.Options[string]{
		FlagName: "min-unicode-version",
	})
	normForm = viperutil.Configure("normalize.form", viperutil.Options[string]{
		Default:  "nfc",
		FlagName: "form",
		EnvVars:  []string{"UNICORE_FORM"},
	})

	configFile   string
	outputFormat string
	output       cli.Format

	// Root is the unicore command.
	Root = &cobra.Command{
		Use:   "unicore",
		Short: "unicore inspects Unicode character properties and normalizes text.",
		Long: "`unicore` answers questions about Unicode data: which properties a code point has, " +
			"which code points share a property, and what a string looks like in each normalization form.\n\n" +
			"Data comes from the tables compiled into the binary, from UCD text files, or from a blob " +
			"written by `unicore compile`, read from a local directory, HTTP, S3 or GCS.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			if err := viperutil.LoadConfig(configFile); err != nil {
				return err
			}
			var err error
			output, err = cli.ParseFormat(outputFormat)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
		Version: Version,
	}
)

func init() {
	fs := Root.PersistentFlags()
	fs.String("data-source", dataSource.Default(), "where Unicode data comes from: compiled, ucd or blob")
	fs.String("data-location", dataLocation.Default(), "directory or URL (file://, http(s)://, s3://, gs://) holding UCD files or a blob")
	fs.String("blob-name", blobName.Default(), "file name of the blob within --data-location")
	fs.String("min-unicode-version", minUnicodeVersion.Default(), "reject blobs built for an older Unicode version")
	viperutil.BindFlags(fs, dataSource, dataLocation, blobName, minUnicodeVersion)

	utils.SetFlagStringVar(fs, &configFile, "config", "", "YAML or JSON file with data.* and normalize.* settings")
	fs.StringVarP(&outputFormat, "output", "o", string(cli.FormatTable), "output format: table, json or yaml")
	log.RegisterFlags(fs)
}
