package convert

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"

	"json2reqif/internal/mapping"
	"json2reqif/internal/query"
	"json2reqif/internal/reqif"
)

// Forest is the result of walking the requirement nodes of a document.
type Forest struct {
	// Roots are the top-level hierarchy nodes in traversal order.
	Roots []*reqif.SpecHierarchy
	// AllObjects holds every object in pre-order.
	AllObjects []*reqif.SpecObject
	// LeafObjects holds the objects whose node had no children.
	LeafObjects []*reqif.SpecObject
}

// Len returns the number of hierarchy nodes, which equals len(AllObjects).
func (f *Forest) Len() int {
	n := 0
	for _, r := range f.Roots {
		r.Walk(func(*reqif.SpecHierarchy) { n++ })
	}

	return n
}

// traversal is the state threaded through one walk.
type traversal struct {
	req     *mapping.RequirementsMapping
	eval    *query.Evaluator
	objects *Resolver
	values  *ValueBuilder
	stamp   stamper

	forest *Forest
}

func (t *traversal) run(doc any) (*Forest, error) {
	t.forest = &Forest{}

	err := t.eachVariantMatch(doc, "$", func(node any, path string, v *mapping.VariantMapping) error {
		h, err := t.visit(node, path, v, 1)
		if err != nil {
			return err
		}

		t.forest.Roots = append(t.forest.Roots, h)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t.forest, nil
}

// eachVariantMatch evaluates the container selector on parent, then every
// variant's match on every container, calling fn for every match.
func (t *traversal) eachVariantMatch(
	parent any,
	parentPath string,
	fn func(node any, path string, v *mapping.VariantMapping) error,
) error {
	containers, err := t.eval.Evaluate(t.req.Selector.String(), parent)
	if err != nil {
		return errors.Wrapf(err, "requirements selector at %s", parentPath)
	}

	for _, c := range containers {
		cpath := joinPath(parentPath, c.Path)

		for i := range t.req.Variants {
			v := &t.req.Variants[i]

			matches, err := t.eval.Evaluate(v.Match.String(), c.Value)
			if err != nil {
				return errors.Wrapf(err, "variant %s match at %s", v.Type, cpath)
			}

			for _, m := range matches {
				if err := fn(m.Value, joinPath(cpath, m.Path), v); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (t *traversal) visit(node any, path string, v *mapping.VariantMapping, level int) (*reqif.SpecHierarchy, error) {
	leaf := isLeaf(node, t.req.ChildrenField)

	st, err := t.objects.Type(v.Type)
	if err != nil {
		return nil, err
	}

	obj := &reqif.SpecObject{
		Identifier:  t.stamp.id("OBJ"),
		Description: caption(node, t.req.CaptionField),
		LastChange:  t.stamp.at,
		Type:        st.Identifier,
	}

	for _, attr := range v.Attributes {
		if attr.Mapping == nil {
			continue
		}

		def, err := t.objects.Resolve(v.Type, attr.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", path)
		}

		raw, err := rawValue(t.eval, attr.Mapping, node)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s attribute %s", path, attr.Key)
		}

		val, err := t.values.Build(def, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s attribute %s", path, attr.Key)
		}

		if val != nil {
			obj.Values = append(obj.Values, val)
		}
	}

	t.forest.AllObjects = append(t.forest.AllObjects, obj)
	if leaf {
		t.forest.LeafObjects = append(t.forest.LeafObjects, obj)
	}

	h := &reqif.SpecHierarchy{
		Identifier: t.stamp.id("HIER"),
		LongName:   obj.Description,
		LastChange: t.stamp.at,
		Object:     obj.Identifier,
		Level:      level,
	}

	err = t.eachVariantMatch(node, path, func(child any, cpath string, cv *mapping.VariantMapping) error {
		ch, err := t.visit(child, cpath, cv, level+1)
		if err != nil {
			return err
		}

		h.Children = append(h.Children, ch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return h, nil
}

// rawValue joins the selector matches evaluated on node, or returns the literal.
func rawValue(eval *query.Evaluator, m *mapping.AttributeMapping, node any) (string, error) {
	if !m.HasSelector() {
		return m.Literal, nil
	}

	matches, err := eval.Evaluate(m.Selector.String(), node)
	if err != nil {
		return "", err
	}

	return query.Join(matches), nil
}

// isLeaf reports whether node's children collection is missing or empty.
func isLeaf(node any, field string) bool {
	obj, ok := node.(map[string]any)
	if !ok {
		return true
	}

	switch c := obj[field].(type) {
	case []any:
		return len(c) == 0
	case map[string]any:
		return len(c) == 0
	default:
		return true
	}
}

func caption(node any, field string) string {
	if obj, ok := node.(map[string]any); ok {
		if v, ok := obj[field]; ok && v != nil {
			return cast.ToString(v)
		}
	}

	return mapping.DefaultCaption
}

// joinPath appends a path relative to "$" onto base.
func joinPath(base, rel string) string {
	return base + strings.TrimPrefix(rel, "$")
}
