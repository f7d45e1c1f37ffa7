// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style expands user supplied style arguments (colours, line
// dashes, line widths, trace names) into one value per trace.
//
// A style argument is an Arg. It may be absent, a single value, a flat
// list of values, or a nested list holding one Arg per dataset.
// Broadcast expands an Arg to a fixed number of traces by cycling;
// Broadcast2D expands it to one list per dataset.
package style

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind is the shape of an Arg.
type Kind int

const (
	KindAbsent Kind = iota
	KindScalar
	KindList
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindNested:
		return "nested list"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arg is a style argument. The zero Arg is absent, which means "use
// the default". Arg values are immutable.
type Arg struct {
	kind   Kind
	scalar any
	list   []any
	nested []Arg
}

// None returns the absent Arg.
func None() Arg { return Arg{} }

// Of returns a scalar Arg holding v. If v is already an Arg, it is
// returned unchanged. Of(nil) is absent.
func Of(v any) Arg {
	switch v := v.(type) {
	case nil:
		return Arg{}
	case Arg:
		return v
	}
	return Arg{kind: KindScalar, scalar: v}
}

// List returns a flat list Arg.
func List(vs ...any) Arg {
	return Arg{kind: KindList, list: append([]any(nil), vs...)}
}

// PerDataset returns a nested Arg with one element per dataset. Each
// element may itself be absent, a scalar, or a list.
func PerDataset(args ...Arg) Arg {
	return Arg{kind: KindNested, nested: append([]Arg(nil), args...)}
}

// FromValue builds an Arg from an arbitrary Go value. Slices and
// arrays of scalars become lists; slices whose elements are themselves
// slices become nested lists. Strings and byte slices are scalars.
func FromValue(v any) Arg {
	if a, ok := v.(Arg); ok {
		return a
	}
	if v == nil {
		return None()
	}
	rv := reflect.ValueOf(v)
	if !isSeq(rv) {
		return Of(v)
	}
	n := rv.Len()
	vals := make([]any, n)
	nested := false
	for i := range vals {
		e := rv.Index(i)
		for e.Kind() == reflect.Interface && !e.IsNil() {
			e = e.Elem()
		}
		if isSeq(e) {
			nested = true
		}
		if e.IsValid() && e.CanInterface() {
			vals[i] = e.Interface()
		}
	}
	if !nested {
		return Arg{kind: KindList, list: vals}
	}
	args := make([]Arg, n)
	for i, e := range vals {
		args[i] = FromValue(e)
	}
	return Arg{kind: KindNested, nested: args}
}

func isSeq(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

// Kind returns the shape of a.
func (a Arg) Kind() Kind { return a.kind }

// IsAbsent reports whether a should be replaced by a default. This is
// true for the absent Arg and for empty lists.
func (a Arg) IsAbsent() bool {
	switch a.kind {
	case KindAbsent:
		return true
	case KindList:
		return len(a.list) == 0
	case KindNested:
		return len(a.nested) == 0
	}
	return false
}

// Len returns the number of elements of a list or nested Arg, 1 for a
// scalar and 0 for an absent Arg.
func (a Arg) Len() int {
	switch a.kind {
	case KindScalar:
		return 1
	case KindList:
		return len(a.list)
	case KindNested:
		return len(a.nested)
	}
	return 0
}

// Value returns the value of a scalar Arg, or nil.
func (a Arg) Value() any { return a.scalar }

// Values returns a copy of the elements of a list Arg.
func (a Arg) Values() []any { return append([]any(nil), a.list...) }

// Index returns element i of a list or nested Arg as an Arg.
func (a Arg) Index(i int) Arg {
	switch a.kind {
	case KindList:
		return Of(a.list[i])
	case KindNested:
		return a.nested[i]
	}
	panic(fmt.Sprintf("style: Index of %s Arg", a.kind))
}

func (a Arg) String() string {
	switch a.kind {
	case KindScalar:
		return fmt.Sprint(a.scalar)
	case KindList:
		return fmt.Sprint(a.list)
	case KindNested:
		parts := make([]string, len(a.nested))
		for i, e := range a.nested {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return "<none>"
}
