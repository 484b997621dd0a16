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
	"io"

	"unicore.io/unicore/go/uerrors"
)

// Writer returns a writer that normalizes the UTF-8 text written to it and
// passes the result to w. Text is held back until a segment boundary is
// seen, so Close must be called to flush the end of the stream. Close does
// not close w. A Write that fails downstream consumes none of its input.
func (n *Normalizer) Writer(w io.Writer) io.WriteCloser {
	return &normWriter{n: n, w: w}
}

type normWriter struct {
	n *Normalizer
	w io.Writer

	// pending holds text after the last boundary seen.
	pending []byte
	out     []byte
	closed  bool
}

func (nw *normWriter) Write(p []byte) (int, error) {
	if nw.closed {
		return 0, uerrors.New(uerrors.InvalidArgument, "norm: write after close")
	}
	held := len(nw.pending)
	nw.pending = append(nw.pending, p...)
	cut := nw.lastBoundary()
	if cut == 0 {
		return len(p), nil
	}
	if err := nw.emit(nw.pending[:cut]); err != nil {
		// Nothing of p was consumed, so a retry must not see it twice.
		nw.pending = nw.pending[:held]
		return 0, err
	}
	nw.pending = append(nw.pending[:0], nw.pending[cut:]...)
	return len(p), nil
}

// lastBoundary returns the offset of the last segment boundary in pending
// that is followed by a complete sequence, or 0.
func (nw *normWriter) lastBoundary() int {
	t, f := nw.n.t, nw.n.form
	cut := 0
	for i := 0; i < len(nw.pending); {
		if !fullRune(nw.pending[i:]) {
			break
		}
		r, size, _ := decodeRune(nw.pending[i:])
		if i > 0 && t.boundary(f, r) {
			cut = i
		}
		i += size
	}
	return cut
}

func (nw *normWriter) emit(text []byte) error {
	nw.out = nw.n.Append(nw.out[:0], text...)
	_, err := nw.w.Write(nw.out)
	return err
}

// Close normalizes and writes the remaining text.
func (nw *normWriter) Close() error {
	if nw.closed {
		return nil
	}
	nw.closed = true
	if len(nw.pending) == 0 {
		return nil
	}
	err := nw.emit(nw.pending)
	nw.pending = nil
	return err
}
