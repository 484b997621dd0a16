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

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"unicore.io/unicore/go/log"
	"unicore.io/unicore/go/unicode/provider/blob"
)

var (
	compileOptions = struct {
		Out   string
		Codec string
	}{}

	// outputFs is where compile writes; tests swap it for a memory fs.
	outputFs = afero.NewOsFs()

	// Compile snapshots the selected data into a blob.
	Compile = &cobra.Command{
		Use:   "compile",
		Short: "Writes every table of the selected data source to a compressed blob.",
		Long: "Loads every normalization and property table from the selected data source and writes them " +
			"to a single blob file that `--data-source blob` can read back. This turns a directory of UCD " +
			"text files into one checksummed file that loads without parsing.",
		Example: "unicore compile --data-source ucd --data-location ./ucd-15.1 --out unicore.blob --codec zstd",
		Args:    cobra.NoArgs,
		RunE:    commandCompile,
	}
)

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func commandCompile(cmd *cobra.Command, args []string) error {
	codec, err := blob.ParseCodec(compileOptions.Codec)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	p, err := dataProvider(ctx)
	if err != nil {
		return err
	}
	tables, err := blob.Snapshot(ctx, p)
	if err != nil {
		return err
	}

	f, err := outputFs.Create(compileOptions.Out)
	if err != nil {
		return err
	}
	cw := &countingWriter{w: f}
	if err := blob.Write(cw, tables, blob.WithCodec(codec)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	version := tables.Normalization.UnicodeVersion
	log.InfoS("wrote blob", "path", compileOptions.Out, "bytes", cw.n, "codec", codec, "unicode", version)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %s, %s, Unicode %s\n",
		compileOptions.Out, humanize.Bytes(uint64(cw.n)), codec, version)
	return err
}

func init() {
	Compile.Flags().StringVar(&compileOptions.Out, "out", blob.DefaultName, "path of the blob to write")
	Compile.Flags().StringVar(&compileOptions.Codec, "codec", blob.CodecZstd.String(), "compression codec: zstd, s2, gzip, lz4 or snappy")
	Root.AddCommand(Compile)
}
