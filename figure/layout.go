// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import "strings"

// Layout is a tree of plotly layout attributes. Interior nodes are
// map[string]any.
type Layout map[string]any

func asMap(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case Layout:
		return map[string]any(v), true
	}
	return nil, false
}

// parent returns the map holding the last element of a dotted path
// and that element's key, creating intermediate maps as needed.
func (l Layout) parent(path string) (map[string]any, string) {
	keys := strings.Split(path, ".")
	m := map[string]any(l)
	for _, k := range keys[:len(keys)-1] {
		sub, ok := asMap(m[k])
		if !ok {
			sub = make(map[string]any)
			m[k] = sub
		}
		m = sub
	}
	return m, keys[len(keys)-1]
}

// Set sets the attribute at a dotted path such as "legend.title.text".
// Non-map values along the path are replaced.
func (l Layout) Set(path string, v any) {
	m, k := l.parent(path)
	m[k] = copyValue(v)
}

// Get returns the attribute at a dotted path.
func (l Layout) Get(path string) (any, bool) {
	var v any = map[string]any(l)
	for _, k := range strings.Split(path, ".") {
		m, ok := asMap(v)
		if !ok {
			return nil, false
		}
		if v, ok = m[k]; !ok {
			return nil, false
		}
	}
	return v, true
}

// GetString returns the string attribute at path, or "".
func (l Layout) GetString(path string) string {
	v, _ := l.Get(path)
	s, _ := v.(string)
	return s
}

// Update merges over into l. Keys may be dotted paths. Maps are
// merged recursively, so {"legend": {"x": 1}} changes only the legend
// x position; any other value replaces what was there.
func (l Layout) Update(over map[string]any) {
	for k, v := range over {
		m, last := l.parent(k)
		if vm, ok := asMap(v); ok {
			if dm, ok := asMap(m[last]); ok {
				Layout(dm).Update(vm)
				continue
			}
		}
		m[last] = copyValue(v)
	}
}

// copyValue deep-copies maps so that a Layout never aliases caller
// data.
func copyValue(v any) any {
	m, ok := asMap(v)
	if !ok {
		return v
	}
	out := make(map[string]any, len(m))
	for k, e := range m {
		out[k] = copyValue(e)
	}
	return out
}
