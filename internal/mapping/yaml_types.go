package mapping

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// --- Query YAML methods ---

// UnmarshalYAML accepts a plain query string.
func (q *Query) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: expected query string, got %s", node.Line, kindName(node.Kind))
	}

	if node.Tag == nullTag {
		*q = ""
		return nil
	}

	*q = Query(node.Value)

	return nil
}

// rootQuery is a query wrapped as {root: "..."}.
type rootQuery struct {
	Root Query `yaml:"root"`
}

// UnmarshalYAML accepts only the wrapped form.
func (r *rootQuery) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Newf("line %d: expected {root: query}, got %s", node.Line, kindName(node.Kind))
	}

	var raw struct {
		Root Query `yaml:"root"`
	}

	if err := decodeNodeStrict(node, &raw); err != nil {
		return err
	}

	r.Root = raw.Root

	return nil
}

// --- Scalar YAML methods ---

// UnmarshalYAML keeps the literal text of any scalar.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("line %d: expected scalar, got %s", node.Line, kindName(node.Kind))
	}

	if node.Tag == nullTag {
		*s = ""
		return nil
	}

	*s = Scalar(node.Value)

	return nil
}

// --- Attributes YAML methods ---

// keyedAttributes decodes `key: {mapping}` objects preserving key order.
type keyedAttributes Attributes

// UnmarshalYAML walks the mapping node pairwise so declaration order survives.
func (a *keyedAttributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Newf("line %d: expected attribute object, got %s", node.Line, kindName(node.Kind))
	}

	out := make(keyedAttributes, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		attr := Attribute{Key: key.Value}

		if value.Tag != nullTag {
			var m AttributeMapping
			if err := decodeNodeStrict(value, &m); err != nil {
				return errors.Wrapf(err, "attribute %s", key.Value)
			}

			attr.Mapping = &m
		}

		out = append(out, attr)
	}

	*a = out

	return nil
}

// listedAttributes decodes `[{key: ..., ...mapping}]` lists.
type listedAttributes Attributes

type listedAttribute struct {
	Key              string `yaml:"key"`
	AttributeMapping `yaml:",inline"`
}

// UnmarshalYAML decodes each entry; an entry carrying only its key has no mapping.
func (a *listedAttributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return errors.Newf("line %d: expected attribute list, got %s", node.Line, kindName(node.Kind))
	}

	out := make(listedAttributes, 0, len(node.Content))

	for _, item := range node.Content {
		var entry listedAttribute
		if err := decodeNodeStrict(item, &entry); err != nil {
			return errors.Wrapf(err, "line %d", item.Line)
		}

		if entry.Key == "" {
			return errors.Newf("line %d: attribute entry without key", item.Line)
		}

		attr := Attribute{Key: entry.Key}
		if len(item.Content) > 2 {
			m := entry.AttributeMapping
			attr.Mapping = &m
		}

		out = append(out, attr)
	}

	*a = out

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
