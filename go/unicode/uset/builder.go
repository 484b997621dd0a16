/*
© 2016 and later: Unicode, Inc. and others.
Copyright (C) 2004-2015, International Business Machines Corporation and others.
Copyright 2026 The Unicore Authors.

This file contains code derived from the Unicode Project's ICU library.
License & terms of use for the original code: http://www.unicode.org/copyright.html

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

package uset

import (
	"slices"

	"unicore.io/unicore/go/uerrors"
)

// Builder accumulates code points and produces a Set. Every mutating call
// leaves the underlying inversion list sorted, disjoint and non-adjacent.
//
// A Builder is owned by a single goroutine. The zero value is not usable;
// call NewBuilder.
type Builder struct {
	list   []rune
	buffer []rune
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	list := make([]rune, 1, 25)
	list[0] = limit
	return &Builder{list: list}
}

func checkRune(op string, c rune) error {
	if c < MinRune || c > MaxRune {
		return uerrors.Errorf(uerrors.InvalidArgument, "%s: code point 0x%X out of range", op, c)
	}
	return nil
}

func checkRange(op string, start, end rune) error {
	if err := checkRune(op, start); err != nil {
		return err
	}
	if err := checkRune(op, end); err != nil {
		return err
	}
	if start > end {
		return uerrors.Errorf(uerrors.InvalidArgument, "%s: start U+%04X > end U+%04X", op, start, end)
	}
	return nil
}

// IsEmpty reports whether the builder currently holds no code points.
func (b *Builder) IsEmpty() bool {
	return len(b.list) == 1
}

// Build returns the accumulated set and resets the builder to empty.
func (b *Builder) Build() *Set {
	set := newSet(b.list)
	b.list = []rune{limit}
	b.buffer = nil
	return set
}

// AddRune adds c.
func (b *Builder) AddRune(c rune) error {
	if err := checkRune("AddRune", c); err != nil {
		return err
	}
	b.addRune(c)
	return nil
}

func (b *Builder) addRune(c rune) {
	i := findCodePoint(b.list, c, 0, len(b.list)-1)
	if i&1 != 0 {
		return
	}

	// [..., start_k-1, limit_k-1, start_k, limit_k, ..., limit]
	//                             ^ list[i]
	switch {
	case c == b.list[i]-1:
		// c extends the next range downwards.
		b.list[i] = c
		if c == MaxRune {
			b.list = append(b.list, limit)
		}
		if i > 0 && c == b.list[i-1] {
			// The previous range now touches this one; merge them.
			b.list = slices.Delete(b.list, i-1, i+1)
		}
	case i > 0 && c == b.list[i-1]:
		// c extends the previous range upwards.
		b.list[i-1]++
	default:
		b.list = slices.Insert(b.list, i, c, c+1)
	}
}

// AddRange adds every code point in [start, end].
func (b *Builder) AddRange(start, end rune) error {
	if err := checkRange("AddRange", start, end); err != nil {
		return err
	}
	b.addRange(start, end)
	return nil
}

func (b *Builder) addRange(start, end rune) {
	if start == end {
		b.addRune(start)
		return
	}
	lim := end + 1
	// Appending after the last range is the common case when building from
	// sorted data. An odd length means the list is [..., lastStart, lastLimit, limit].
	if n := len(b.list); n&1 != 0 {
		lastLimit := rune(-2)
		if n > 1 {
			lastLimit = b.list[n-2]
		}
		if lastLimit <= start {
			if lastLimit == start {
				b.list[n-2] = lim
				if lim == limit {
					b.list = b.list[:n-1]
				}
			} else {
				b.list[n-1] = start
				if lim < limit {
					b.list = append(b.list, lim, limit)
				} else {
					b.list = append(b.list, limit)
				}
			}
			return
		}
	}
	b.union([]rune{start, lim, limit})
}

// AddSet adds every code point of s.
func (b *Builder) AddSet(s *Set) {
	b.union(s.list)
}

// AddString adds every code point of str. Invalid UTF-8 adds U+FFFD.
func (b *Builder) AddString(str string) {
	for _, c := range str {
		b.addRune(c)
	}
}

// RemoveRune removes c.
func (b *Builder) RemoveRune(c rune) error {
	if err := checkRune("RemoveRune", c); err != nil {
		return err
	}
	b.retain([]rune{c, c + 1, limit}, 2)
	return nil
}

// RemoveRange removes every code point in [start, end].
func (b *Builder) RemoveRange(start, end rune) error {
	if err := checkRange("RemoveRange", start, end); err != nil {
		return err
	}
	b.retain([]rune{start, end + 1, limit}, 2)
	return nil
}

// RemoveSet removes every code point of s.
func (b *Builder) RemoveSet(s *Set) {
	b.retain(s.list, 2)
}

// RetainRune removes everything except c.
func (b *Builder) RetainRune(c rune) error {
	if err := checkRune("RetainRune", c); err != nil {
		return err
	}
	b.retain([]rune{c, c + 1, limit}, 0)
	return nil
}

// RetainRange removes everything outside [start, end].
func (b *Builder) RetainRange(start, end rune) error {
	if err := checkRange("RetainRange", start, end); err != nil {
		return err
	}
	b.retain([]rune{start, end + 1, limit}, 0)
	return nil
}

// RetainSet intersects the builder with s.
func (b *Builder) RetainSet(s *Set) {
	b.retain(s.list, 0)
}

// Complement replaces the contents with every code point not currently held.
func (b *Builder) Complement() {
	if b.list[0] == MinRune {
		b.list = slices.Delete(b.list, 0, 1)
	} else {
		b.list = slices.Insert(b.list, 0, MinRune)
	}
}

// ComplementRune flips the membership of c.
func (b *Builder) ComplementRune(c rune) error {
	if err := checkRune("ComplementRune", c); err != nil {
		return err
	}
	b.xor([]rune{c, c + 1, limit})
	return nil
}

// ComplementRange flips the membership of every code point in [start, end].
func (b *Builder) ComplementRange(start, end rune) error {
	if err := checkRange("ComplementRange", start, end); err != nil {
		return err
	}
	b.xor([]rune{start, end + 1, limit})
	return nil
}

// ComplementSet flips the membership of every code point of s.
func (b *Builder) ComplementSet(s *Set) {
	b.xor(s.list)
}

// xor is (b ∪ other) − (b ∩ other).
func (b *Builder) xor(other []rune) {
	common := &Builder{list: slices.Clone(b.list)}
	common.retain(other, 0)
	b.union(other)
	b.retain(common.list, 2)
}

func (b *Builder) growBuffer(n int) {
	if cap(b.buffer) < n {
		b.buffer = make([]rune, n)
		return
	}
	b.buffer = b.buffer[:cap(b.buffer)]
}

// union merges other into the list. The bits of polarity say whether the
// current boundary of list (1) or other (2) is a range limit.
func (b *Builder) union(other []rune) {
	b.growBuffer(len(b.list) + len(other))

	list, buf := b.list, b.buffer
	i, j, k := 1, 1, 0
	x, y := list[0], other[0]
	polarity := 0

loop:
	for {
		switch polarity {
		case 0: // both at a start: take the lower
			switch {
			case x < y:
				if k > 0 && x <= buf[k-1] {
					k--
					x = max(list[i], buf[k])
				} else {
					buf[k] = x
					k++
					x = list[i]
				}
				i++
				polarity ^= 1
			case y < x:
				if k > 0 && y <= buf[k-1] {
					k--
					y = max(other[j], buf[k])
				} else {
					buf[k] = y
					k++
					y = other[j]
				}
				j++
				polarity ^= 2
			default:
				if x == limit {
					break loop
				}
				if k > 0 && x <= buf[k-1] {
					k--
					x = max(list[i], buf[k])
				} else {
					buf[k] = x
					k++
					x = list[i]
				}
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		case 3: // both at a limit: take the higher
			if y <= x {
				if x == limit {
					break loop
				}
				buf[k] = x
			} else {
				if y == limit {
					break loop
				}
				buf[k] = y
			}
			k++
			x = list[i]
			i++
			y = other[j]
			j++
			polarity ^= 3
		case 1: // inside list only
			switch {
			case x < y:
				buf[k] = x
				k++
				x = list[i]
				i++
				polarity ^= 1
			case y < x:
				y = other[j]
				j++
				polarity ^= 2
			default:
				if x == limit {
					break loop
				}
				x = list[i]
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		case 2: // inside other only
			switch {
			case y < x:
				buf[k] = y
				k++
				y = other[j]
				j++
				polarity ^= 2
			case x < y:
				x = list[i]
				i++
				polarity ^= 1
			default:
				if x == limit {
					break loop
				}
				x = list[i]
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		}
	}

	buf[k] = limit
	k++
	b.list, b.buffer = buf[:k], list
}

// retain intersects the list with other (polarity 0) or subtracts other
// from it (polarity 2).
func (b *Builder) retain(other []rune, polarity int) {
	b.growBuffer(len(b.list) + len(other))

	list, buf := b.list, b.buffer
	i, j, k := 1, 1, 0
	x, y := list[0], other[0]

loop:
	for {
		switch polarity {
		case 0: // both at a start: drop the lower
			switch {
			case x < y:
				x = list[i]
				i++
				polarity ^= 1
			case y < x:
				y = other[j]
				j++
				polarity ^= 2
			default:
				if x == limit {
					break loop
				}
				buf[k] = x
				k++
				x = list[i]
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		case 3: // both at a limit: take the lower
			switch {
			case x < y:
				buf[k] = x
				k++
				x = list[i]
				i++
				polarity ^= 1
			case y < x:
				buf[k] = y
				k++
				y = other[j]
				j++
				polarity ^= 2
			default:
				if x == limit {
					break loop
				}
				buf[k] = x
				k++
				x = list[i]
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		case 1: // x is a limit, y a start
			switch {
			case x < y:
				x = list[i]
				i++
				polarity ^= 1
			case y < x:
				buf[k] = y
				k++
				y = other[j]
				j++
				polarity ^= 2
			default:
				if x == limit {
					break loop
				}
				x = list[i]
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		case 2: // x is a start, y a limit
			switch {
			case y < x:
				y = other[j]
				j++
				polarity ^= 2
			case x < y:
				buf[k] = x
				k++
				x = list[i]
				i++
				polarity ^= 1
			default:
				if x == limit {
					break loop
				}
				x = list[i]
				i++
				y = other[j]
				j++
				polarity ^= 3
			}
		}
	}

	buf[k] = limit
	k++
	b.list, b.buffer = buf[:k], list
}
