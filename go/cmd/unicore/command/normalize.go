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
	"strconv"

	"github.com/spf13/cobra"

	"unicore.io/unicore/go/viperutil"
)

var (
	normalizeOptions = struct {
		Escape bool
	}{}

	// Normalize normalizes arguments, or standard input as a stream.
	Normalize = &cobra.Command{
		Use:   "normalize [text ...]",
		Short: "Normalizes text given as arguments or read from standard input.",
		Long: "Normalizes each argument and prints it on its own line. Without arguments standard input " +
			"is normalized as a stream and written to standard output unchanged in framing.\n\n" +
			"Ill-formed UTF-8 is replaced with U+FFFD.",
		Example: "unicore normalize --form nfd 'cafe\\u0301'\n" +
			"unicore normalize --form nfkc < input.txt > output.txt",
		RunE: commandNormalize,
	}
)

func commandNormalize(cmd *cobra.Command, args []string) error {
	n, err := normalizer(cmd.Context(), normForm.Get())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		w := n.Writer(out)
		if _, err := io.Copy(w, cmd.InOrStdin()); err != nil {
			return err
		}
		return w.Close()
	}

	for _, arg := range args {
		s := n.String(arg)
		if normalizeOptions.Escape {
			s = strconv.QuoteToASCII(s)
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	Normalize.Flags().String("form", normForm.Default(), "normalization form: NFC, NFD, NFKC or NFKD")
	viperutil.BindFlags(Normalize.Flags(), normForm)
	Normalize.Flags().BoolVar(&normalizeOptions.Escape, "escape", false, "print results as quoted ASCII with \\u escapes")
	Root.AddCommand(Normalize)
}
