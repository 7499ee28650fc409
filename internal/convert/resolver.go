package convert

import (
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"json2reqif/internal/common"
	"json2reqif/internal/mapping"
	"json2reqif/internal/reqif"
	"json2reqif/internal/suggest"
)

// Resolver holds the attribute definitions of a set of spec types. All
// definitions are created up front; Resolve never creates anything.
type Resolver struct {
	registry   *Registry
	category   reqif.TypeCategory
	typePrefix string
	attrPrefix string

	types map[string]*reqif.SpecType
	defs  map[string]map[string]*reqif.AttributeDefinition
	order []*reqif.SpecType
}

// NewSpecificationResolver resolves the attributes of the specification type.
func NewSpecificationResolver(registry *Registry, spec *mapping.SpecificationMapping) (*Resolver, error) {
	r := newResolver(registry, reqif.CategorySpecification, "ST", "SAD")

	if err := r.add(spec.Type, spec.Attributes); err != nil {
		return nil, errors.Wrap(err, "specification")
	}

	return r, nil
}

// NewObjectResolver resolves the attributes of every requirement variant.
// Variants never share attribute definitions, even for equal keys.
func NewObjectResolver(registry *Registry, req *mapping.RequirementsMapping) (*Resolver, error) {
	r := newResolver(registry, reqif.CategorySpecObject, "SOT", "AD")

	for i := range req.Variants {
		v := &req.Variants[i]
		if err := r.add(v.Type, v.Attributes); err != nil {
			return nil, errors.Wrapf(err, "variant %s", v.Type)
		}
	}

	return r, nil
}

func newResolver(registry *Registry, category reqif.TypeCategory, typePrefix, attrPrefix string) *Resolver {
	return &Resolver{
		registry:   registry,
		category:   category,
		typePrefix: typePrefix,
		attrPrefix: attrPrefix,
		types:      make(map[string]*reqif.SpecType),
		defs:       make(map[string]map[string]*reqif.AttributeDefinition),
	}
}

func (r *Resolver) add(typeName string, attrs mapping.Attributes) error {
	if _, ok := r.types[typeName]; ok {
		return errors.Newf("type %q declared twice", typeName)
	}

	defs := make(map[string]*reqif.AttributeDefinition, len(attrs))
	st := &reqif.SpecType{
		LongName:   typeName,
		LastChange: r.registry.stamp.at,
		Category:   r.category,
	}

	for _, attr := range attrs {
		if attr.Mapping == nil {
			continue
		}

		def, err := r.define(attr.Key, attr.Mapping)
		if err != nil {
			return errors.Wrapf(err, "attribute %s", attr.Key)
		}

		defs[attr.Key] = def
		st.Attributes = append(st.Attributes, def)
	}

	st.Identifier = r.registry.stamp.id(r.typePrefix)

	r.types[typeName] = st
	r.defs[typeName] = defs
	r.order = append(r.order, st)

	return nil
}

func (r *Resolver) define(key string, m *mapping.AttributeMapping) (*reqif.AttributeDefinition, error) {
	kind, ok := reqif.ParseKind(m.AttributeType)
	if !ok {
		names := common.Map(reqif.Kinds(), reqif.Kind.String)

		err := errors.WithHintf(
			errors.Wrapf(ErrUnknownKind, "%q", m.AttributeType),
			"attributeType must be one of %s", strings.Join(names, ", "),
		)

		if hint := suggest.Hint(m.AttributeType, names); hint != "" {
			err = errors.WithHint(err, hint)
		}

		return nil, err
	}

	dt, err := r.registry.Intern(kind, m.SubType, ConstraintsOf(m))
	if err != nil {
		return nil, err
	}

	def := &reqif.AttributeDefinition{
		Identifier: r.registry.stamp.id(r.attrPrefix),
		LongName:   common.FirstNonEmpty(m.LongName, key),
		LastChange: r.registry.stamp.at,
		Kind:       kind,
		DataType:   dt.Identifier,
	}

	if kind == reqif.KindEnumeration {
		single := false
		def.MultiValued = &single
	}

	return def, nil
}

// Resolve returns the definition of attribute key on type typeName.
func (r *Resolver) Resolve(typeName, key string) (*reqif.AttributeDefinition, error) {
	defs, ok := r.defs[typeName]
	if !ok {
		return nil, errors.Wrapf(ErrTypeNotRegistered, "type %q", typeName)
	}

	def, ok := defs[key]
	if !ok {
		err := errors.Wrapf(ErrAttributeNotRegistered, "type %q attribute %q", typeName, key)
		if hint := suggest.Hint(key, slices.Sorted(maps.Keys(defs))); hint != "" {
			err = errors.WithHint(err, hint)
		}

		return nil, err
	}

	return def, nil
}

// Type returns the spec type record of typeName.
func (r *Resolver) Type(typeName string) (*reqif.SpecType, error) {
	st, ok := r.types[typeName]
	if !ok {
		return nil, errors.Wrapf(ErrTypeNotRegistered, "type %q", typeName)
	}

	return st, nil
}

// Types returns the spec type records in declaration order.
func (r *Resolver) Types() []*reqif.SpecType {
	return r.order
}
