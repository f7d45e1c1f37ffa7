// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStyleValue is returned when an element of a style
	// argument fails its converter.
	ErrInvalidStyleValue = errors.New("invalid style value")

	// ErrCardinalityMismatch is returned when a per-dataset style
	// argument does not have one element per dataset.
	ErrCardinalityMismatch = errors.New("style argument does not match number of datasets")
)

// A Converter checks and converts one element of a style argument.
type Converter[T any] func(v any) (T, error)

// Broadcast expands arg to exactly n values.
//
// If arg is absent or an empty list, def is used in its place. A
// scalar is converted once and repeated n times. A list has every
// element converted and is then cycled, so that out[i] is the
// conversion of element i%len. If both arg and def are absent, the
// result is n zero values.
func Broadcast[T any](arg Arg, n int, def Arg, conv Converter[T]) ([]T, error) {
	if arg.IsAbsent() {
		arg = def
	}
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	switch arg.kind {
	case KindScalar:
		v, err := conv(arg.scalar)
		if err != nil {
			return nil, err
		}
		for i := range out {
			out[i] = v
		}

	case KindList:
		if len(arg.list) == 0 {
			break
		}
		vals := make([]T, len(arg.list))
		for i, e := range arg.list {
			v, err := conv(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = v
		}
		for i := range out {
			out[i] = vals[i%len(vals)]
		}

	case KindNested:
		return nil, fmt.Errorf("%w: got nested list %v where one value per trace is expected", ErrInvalidStyleValue, arg)
	}
	return out, nil
}

// Broadcast2D expands arg to one list per dataset, where dataset i has
// cards[i] entries.
//
// If arg is absent, def is used. A scalar applies to every dataset. A
// list or nested list must have exactly len(cards) elements, and
// element i is broadcast to cards[i] values. Absent elements take the
// dataset's default: element i of def if def is a nested list with one
// element per dataset, or def itself otherwise.
func Broadcast2D[T any](arg Arg, cards []int, def Arg, conv Converter[T]) ([][]T, error) {
	if arg.IsAbsent() {
		arg = def
	}
	defFor := func(i int) Arg {
		if def.kind == KindNested && len(def.nested) == len(cards) {
			return def.nested[i]
		}
		return def
	}

	out := make([][]T, len(cards))
	switch arg.kind {
	case KindList, KindNested:
		if arg.Len() != len(cards) {
			return nil, fmt.Errorf("%w: got %d values for %d datasets", ErrCardinalityMismatch, arg.Len(), len(cards))
		}
		for i, n := range cards {
			d := defFor(i)
			if d.kind == KindNested {
				d = None()
			}
			vs, err := Broadcast(arg.Index(i), n, d, conv)
			if err != nil {
				return nil, fmt.Errorf("dataset %d: %w", i, err)
			}
			out[i] = vs
		}

	default:
		// A scalar, or nothing at all.
		for i, n := range cards {
			vs, err := Broadcast(arg, n, None(), conv)
			if err != nil {
				return nil, fmt.Errorf("dataset %d: %w", i, err)
			}
			out[i] = vs
		}
	}
	return out, nil
}
