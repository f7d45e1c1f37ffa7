// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML null as absent, a scalar as a scalar
// Arg, a sequence of scalars as a list and a sequence containing
// sequences as a nested list.
func (a *Arg) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			*a = None()
			return nil
		}
		return a.UnmarshalYAML(node.Content[0])

	case yaml.AliasNode:
		return a.UnmarshalYAML(node.Alias)

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*a = None()
			return nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}
		*a = Of(v)
		return nil

	case yaml.SequenceNode:
		nested := false
		for _, c := range node.Content {
			if c.Kind == yaml.SequenceNode {
				nested = true
			}
		}
		if nested {
			args := make([]Arg, len(node.Content))
			for i, c := range node.Content {
				if err := args[i].UnmarshalYAML(c); err != nil {
					return err
				}
			}
			*a = PerDataset(args...)
			return nil
		}
		vals := make([]any, len(node.Content))
		for i, c := range node.Content {
			if err := c.Decode(&vals[i]); err != nil {
				return err
			}
		}
		*a = List(vals...)
		return nil
	}
	return fmt.Errorf("line %d: %w: style argument must be a value or a list, not a mapping", node.Line, ErrInvalidStyleValue)
}
