// Copyright 2026 The Installer Authors
// SPDX-License-Identifier: Apache-2.0

package branding

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDocument parses data into its root mapping node.
func parseDocument(data []byte) (*yaml.Node, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, structureError("document is empty")
	}
	root := resolve(document.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, structureError("top level must be a mapping, found %s", kindName(root))
	}
	if err := normalize(root, make(map[*yaml.Node]bool)); err != nil {
		return nil, err
	}
	return root, nil
}

// normalize rewrites every mapping reachable from node so that merge
// keys ("<<") are replaced by the pairs they bring in and each key
// appears once. Explicit keys win over merged ones, and earlier merge
// sources win over later ones. A key written twice in the same mapping
// is a structure error.
func normalize(node *yaml.Node, visited map[*yaml.Node]bool) error {
	node = resolve(node)
	if node == nil || visited[node] {
		return nil
	}
	visited[node] = true
	for _, item := range node.Content {
		if err := normalize(item, visited); err != nil {
			return err
		}
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	var explicit, sources []*yaml.Node
	seen := make(map[string]bool)
	for index := 0; index+1 < len(node.Content); index += 2 {
		key, value := node.Content[index], node.Content[index+1]
		if key.Kind == yaml.ScalarNode && key.Tag == "!!merge" {
			merged, err := mergeSources(value)
			if err != nil {
				return err
			}
			sources = append(sources, merged...)
			continue
		}
		if key.Kind == yaml.ScalarNode {
			if seen[key.Value] {
				return structureError("duplicate key %q (line %d)", key.Value, key.Line)
			}
			seen[key.Value] = true
		}
		explicit = append(explicit, key, value)
	}
	if len(sources) == 0 {
		node.Content = explicit
		return nil
	}
	for _, source := range sources {
		for index := 0; index+1 < len(source.Content); index += 2 {
			key := source.Content[index]
			if key.Kind != yaml.ScalarNode || seen[key.Value] {
				continue
			}
			seen[key.Value] = true
			explicit = append(explicit, key, source.Content[index+1])
		}
	}
	node.Content = explicit
	return nil
}

// mergeSources returns the mappings a merge key refers to: a single
// mapping or a sequence of them.
func mergeSources(value *yaml.Node) ([]*yaml.Node, error) {
	value = resolve(value)
	switch value.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{value}, nil
	case yaml.SequenceNode:
		sources := make([]*yaml.Node, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolve(item)
			if item.Kind != yaml.MappingNode {
				return nil, structureError("merge source must be a mapping, found %s (line %d)", kindName(item), item.Line)
			}
			sources = append(sources, item)
		}
		return sources, nil
	default:
		return nil, structureError("merge source must be a mapping, found %s (line %d)", kindName(value), value.Line)
	}
}

// resolve follows alias nodes to the node they refer to.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// child returns the value for key in mapping, or nil when the key is
// absent or explicitly null.
func child(mapping *yaml.Node, key string) *yaml.Node {
	for index := 0; index+1 < len(mapping.Content); index += 2 {
		if mapping.Content[index].Value != key {
			continue
		}
		value := resolve(mapping.Content[index+1])
		if isNull(value) {
			return nil
		}
		return value
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.Tag == "!!null")
}

// section returns the mapping stored under key, or nil when absent.
func section(root *yaml.Node, key string) (*yaml.Node, error) {
	node := child(root, key)
	if node == nil {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, structureError("%q must be a mapping, found %s (line %d)", key, kindName(node), node.Line)
	}
	return node, nil
}

// scalar returns the text of the scalar stored under key.
func scalar(mapping *yaml.Node, key string) (string, bool, error) {
	node := child(mapping, key)
	if node == nil {
		return "", false, nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", false, structureError("%q must be a scalar, found %s (line %d)", key, kindName(node), node.Line)
	}
	return node.Value, true, nil
}

// booleanSpellings are the scalar texts accepted as booleans, quoted or
// not, compared case-insensitively.
var booleanSpellings = map[string]bool{
	"true": true, "yes": true, "on": true,
	"false": false, "no": false, "off": false,
}

// boolean reads the boolean stored under key, returning fallback when
// the key is absent.
func boolean(mapping *yaml.Node, key string, fallback bool) (bool, error) {
	node := child(mapping, key)
	if node == nil {
		return fallback, nil
	}
	if node.Kind == yaml.ScalarNode {
		if value, ok := booleanSpellings[strings.ToLower(strings.TrimSpace(node.Value))]; ok {
			return value, nil
		}
	}
	return fallback, settingError("%q must be a boolean, found %q (line %d)", key, node.Value, node.Line)
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
