package convert

import (
	"github.com/cockroachdb/errors"

	"json2reqif/internal/ident"
	"json2reqif/internal/mapping"
	"json2reqif/internal/query"
	"json2reqif/internal/reqif"
)

// specificationBuilder creates one Specification per selector match.
type specificationBuilder struct {
	spec   *mapping.SpecificationMapping
	eval   *query.Evaluator
	types  *Resolver
	values *ValueBuilder
	stamp  stamper
}

// build attaches the complete forest to every specification.
func (b *specificationBuilder) build(doc any, forest *Forest) ([]*reqif.Specification, error) {
	st, err := b.types.Type(b.spec.Type)
	if err != nil {
		return nil, err
	}

	matches, err := b.eval.Evaluate(b.spec.Selector.String(), doc)
	if err != nil {
		return nil, errors.Wrap(err, "specification selector")
	}

	specs := make([]*reqif.Specification, 0, len(matches))
	seen := make(map[string]string, len(matches))

	for _, m := range matches {
		s, err := b.one(m, st, forest)
		if err != nil {
			return nil, errors.Wrapf(err, "specification at %s", m.Path)
		}

		if prev, ok := seen[s.Identifier]; ok {
			return nil, errors.Wrapf(ErrDuplicateIdentifier,
				"specifications at %s and %s resolve to the same id", prev, m.Path)
		}

		seen[s.Identifier] = m.Path
		specs = append(specs, s)
	}

	return specs, nil
}

func (b *specificationBuilder) one(m query.Match, st *reqif.SpecType, forest *Forest) (*reqif.Specification, error) {
	externalID, err := b.first(b.spec.ID, m.Value)
	if err != nil {
		return nil, errors.Wrap(err, "id")
	}

	nameMapping, ok := b.spec.Attributes.Get(b.spec.NameAttribute)
	if !ok {
		return nil, errors.Wrapf(ErrAttributeNotRegistered, "name attribute %s", b.spec.NameAttribute)
	}

	name, err := b.first(nameMapping.Selector, m.Value)
	if err != nil {
		return nil, errors.Wrapf(err, "name attribute %s", b.spec.NameAttribute)
	}

	s := &reqif.Specification{
		Identifier: ident.Derive("SPEC", externalID),
		LongName:   name,
		LastChange: b.stamp.at,
		Type:       st.Identifier,
		Children:   forest.Roots,
	}

	for _, attr := range b.spec.Attributes {
		if attr.Mapping == nil {
			continue
		}

		def, err := b.types.Resolve(b.spec.Type, attr.Key)
		if err != nil {
			return nil, err
		}

		raw, err := rawValue(b.eval, attr.Mapping, m.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", attr.Key)
		}

		val, err := b.values.Build(def, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", attr.Key)
		}

		if val != nil {
			s.Values = append(s.Values, val)
		}
	}

	return s, nil
}

// first evaluates q on node and returns the first result.
func (b *specificationBuilder) first(q mapping.Query, node any) (string, error) {
	matches, err := b.eval.Evaluate(q.String(), node)
	if err != nil {
		return "", err
	}

	v, ok := query.First(matches)
	if !ok || v == "" {
		return "", errors.Wrapf(ErrMissingValue, "query %s matched nothing", q)
	}

	return v, nil
}
