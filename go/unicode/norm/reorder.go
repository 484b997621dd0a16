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
	"cmp"
	"slices"
)

// maxNonStarters is the run length up to which marks are kept ordered on
// insertion. Longer runs are sorted once when the buffer is flushed.
const maxNonStarters = 30

type entry struct {
	r   rune
	ccc uint8
}

// reorderBuffer normalizes one segment at a time: a starter followed by
// the non-starters that attach to it. Characters inserted with insert are
// decomposed and ordered by combining class; compose recombines them for
// the composing forms. Finished segments are passed to emit.
type reorderBuffer struct {
	t    *Tables
	form Form
	emit func(rune)

	buf []entry
	// unsorted is set once the trailing non-starters are no longer in
	// combining class order.
	unsorted bool
	scratch  [3]rune
}

func newReorderBuffer(t *Tables, f Form, emit func(rune)) *reorderBuffer {
	return &reorderBuffer{t: t, form: f, emit: emit, buf: make([]entry, 0, maxNonStarters+2)}
}

// insert decomposes r and adds the result to the buffer, flushing on every
// starter that cannot combine with the buffered segment.
func (rb *reorderBuffer) insert(r rune) {
	d := rb.t.decomposition(r, rb.form.compat(), &rb.scratch)
	if d == nil {
		rb.insertOne(r)
		return
	}
	for _, c := range d {
		rb.insertOne(c)
	}
}

func (rb *reorderBuffer) insertOne(r rune) {
	cc := rb.t.CombiningClass(r)
	if cc == 0 {
		rb.insertStarter(r)
		return
	}
	rb.insertOrdered(entry{r: r, ccc: cc})
}

// insertStarter ends the current segment. Under the composing forms a
// starter directly following a lone starter may combine with it, as with
// Hangul jamo.
func (rb *reorderBuffer) insertStarter(r rune) {
	if rb.form.composing() {
		rb.compose()
		if len(rb.buf) == 1 && rb.buf[0].ccc == 0 {
			if c, ok := rb.t.compose(rb.buf[0].r, r); ok {
				rb.buf[0].r = c
				return
			}
		}
	}
	rb.flush()
	rb.buf = append(rb.buf, entry{r: r})
}

// insertOrdered inserts a non-starter, ordered by Canonical Combining
// Class. Marks of equal class keep their relative order.
func (rb *reorderBuffer) insertOrdered(e entry) {
	n := len(rb.buf)
	rb.buf = append(rb.buf, e)
	if rb.unsorted {
		return
	}
	if n >= maxNonStarters {
		rb.unsorted = rb.buf[n-1].ccc > e.ccc
		return
	}
	b := rb.buf
	for ; n > 0; n-- {
		if b[n-1].ccc <= e.ccc {
			break
		}
		b[n] = b[n-1]
	}
	b[n] = e
}

// sort restores combining class order after a long run of marks.
func (rb *reorderBuffer) sort() {
	if !rb.unsorted {
		return
	}
	rb.unsorted = false
	start := 0
	if len(rb.buf) > 0 && rb.buf[0].ccc == 0 {
		start = 1
	}
	slices.SortStableFunc(rb.buf[start:], func(a, b entry) int { return cmp.Compare(a.ccc, b.ccc) })
}

// compose applies canonical composition to the buffered segment. A mark
// is blocked from the starter if a character between them has combining
// class zero or at least its own; the buffer is ordered, so only the last
// retained character needs checking.
func (rb *reorderBuffer) compose() {
	rb.sort()
	b := rb.buf
	if len(b) < 2 || b[0].ccc != 0 {
		return
	}
	out := 1
	for i := 1; i < len(b); i++ {
		e := b[i]
		last := b[out-1]
		blocked := out > 1 && (last.ccc == 0 || last.ccc >= e.ccc)
		if !blocked {
			if c, ok := rb.t.compose(b[0].r, e.r); ok {
				b[0].r = c
				continue
			}
		}
		b[out] = e
		out++
	}
	rb.buf = b[:out]
}

// flush emits the buffered segment and empties the buffer.
func (rb *reorderBuffer) flush() {
	rb.sort()
	for _, e := range rb.buf {
		rb.emit(e.r)
	}
	rb.buf = rb.buf[:0]
}

// finish composes and flushes whatever is left.
func (rb *reorderBuffer) finish() {
	if rb.form.composing() {
		rb.compose()
	}
	rb.flush()
}
