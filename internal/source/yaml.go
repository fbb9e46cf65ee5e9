package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads the first YAML document from r, keeping mapping keys in
// the order they appear. Aliases are resolved to their anchors.
func DecodeYAML(r io.Reader) (Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmptyDocument
		}
		return Value{}, fmt.Errorf("decode yaml: %w", err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Value{}, ErrEmptyDocument
		}
		node = node.Content[0]
	}
	return fromYAMLNode(node, 0), nil
}

// maxAliasDepth bounds alias chasing so self-referencing anchors terminate.
const maxAliasDepth = 64

func fromYAMLNode(n *yaml.Node, aliasDepth int) Value {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil || aliasDepth >= maxAliasDepth {
			return Other()
		}
		return fromYAMLNode(n.Alias, aliasDepth+1)
	case yaml.ScalarNode:
		if n.ShortTag() == "!!str" {
			return String(n.Value)
		}
		return Other()
	case yaml.MappingNode:
		obj := Map()
		// Merged entries go in first so the mapping's own keys override them.
		for i := 0; i+1 < len(n.Content); i += 2 {
			if isMergeKey(n.Content[i]) {
				mergeYAML(&obj, n.Content[i+1], aliasDepth)
			}
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode || isMergeKey(key) {
				continue
			}
			obj.set(key.Value, fromYAMLNode(n.Content[i+1], aliasDepth))
		}
		return obj
	default:
		return Other()
	}
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

// mergeYAML copies the entries of a "<<" value into obj. The value is a
// mapping, an alias of one, or a sequence of those; earlier sources win.
func mergeYAML(obj *Value, n *yaml.Node, aliasDepth int) {
	if n.Kind == yaml.SequenceNode {
		for _, item := range n.Content {
			mergeYAML(obj, item, aliasDepth)
		}
		return
	}
	src := fromYAMLNode(n, aliasDepth)
	if src.Kind != KindMap {
		return
	}
	for _, e := range src.Entries {
		if !obj.has(e.Key) {
			obj.set(e.Key, e.Value)
		}
	}
}
