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

// Package cli holds output helpers shared by the unicore commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"sigs.k8s.io/yaml"

	"unicore.io/unicore/go/uerrors"
)

const (
	jsonIndent = "  "
	jsonPrefix = ""
)

// Format is an output format selected with --output.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", uerrors.Errorf(uerrors.InvalidArgument, "unknown output format %q: expected table, json or yaml", s)
}

// MarshalJSON marshals obj as indented JSON.
func MarshalJSON(obj any) ([]byte, error) {
	data, err := json.MarshalIndent(obj, jsonPrefix, jsonIndent)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal = %v", err)
	}
	return data, nil
}

// MarshalYAML marshals obj as YAML, honouring its json tags.
func MarshalYAML(obj any) ([]byte, error) {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal = %v", err)
	}
	return data, nil
}

// Tabular is implemented by results that can be shown as a table.
type Tabular interface {
	Header() []string
	Rows() [][]string
}

// Print writes v to w in format f. Table output requires v to be Tabular.
func Print(w io.Writer, f Format, v any) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = MarshalJSON(v)
		data = append(data, '\n')
	case FormatYAML:
		data, err = MarshalYAML(v)
	default:
		t, ok := v.(Tabular)
		if !ok {
			return uerrors.Errorf(uerrors.InvalidArgument, "%T cannot be printed as a table", v)
		}
		return PrintTable(w, t)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// PrintTable renders t with tablewriter.
func PrintTable(w io.Writer, t Tabular) error {
	table := tablewriter.NewWriter(w)
	header := t.Header()
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	table.Header(cells...)
	for _, row := range t.Rows() {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
