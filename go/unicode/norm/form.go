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

package norm

import (
	"fmt"
	"strings"

	"unicore.io/unicore/go/uerrors"
)

// Form is a Unicode normalization form.
type Form uint8

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD

	formCount
)

var formNames = [formCount]string{"NFC", "NFD", "NFKC", "NFKD"}

// Forms lists the four normalization forms.
func Forms() []Form {
	return []Form{NFC, NFD, NFKC, NFKD}
}

func (f Form) String() string {
	if f < formCount {
		return formNames[f]
	}
	return fmt.Sprintf("Form(%d)", uint8(f))
}

// ParseForm accepts a form name in any case, e.g. "nfkc".
func ParseForm(name string) (Form, error) {
	for f, n := range formNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Form(f), nil
		}
	}
	return 0, uerrors.Errorf(uerrors.InvalidArgument, "unknown normalization form %q", name)
}

func (f Form) composing() bool { return f == NFC || f == NFKC }

func (f Form) compat() bool { return f == NFKC || f == NFKD }
