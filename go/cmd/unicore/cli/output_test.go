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

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unicore.io/unicore/go/uerrors"
)

type pairs struct {
	Items []pair `json:"items"`
}

type pair struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

func (p pairs) Header() []string { return []string{"Key", "Value"} }

func (p pairs) Rows() [][]string {
	var rows [][]string
	for _, it := range p.Items {
		rows = append(rows, []string{it.Key, string(rune('0' + it.Value))})
	}
	return rows
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "JSON": FormatJSON, " yaml ": FormatYAML, "table": FormatTable} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}

func TestPrint(t *testing.T) {
	v := pairs{Items: []pair{{"alpha", 1}, {"beta", 2}}}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatJSON, v))
	assert.JSONEq(t, `{"items":[{"key":"alpha","value":1},{"key":"beta","value":2}]}`, buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, FormatYAML, v))
	assert.YAMLEq(t, "items:\n- key: alpha\n  value: 1\n- key: beta\n  value: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, Print(&buf, FormatTable, v))
	out := buf.String()
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
	assert.Contains(t, strings.ToUpper(out), "KEY")

	err := Print(&buf, FormatTable, 42)
	assert.ErrorIs(t, err, uerrors.ErrInvalidArgument)
}
