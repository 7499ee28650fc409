package convert

import (
	"github.com/cockroachdb/errors"

	"json2reqif/internal/common"
	"json2reqif/internal/ident"
	"json2reqif/internal/mapping"
	"json2reqif/internal/reqif"
)

// Data type bounds used when a mapping leaves them out.
const (
	DefaultMaxLength    = "255"
	DefaultIntegerMin   = "0"
	DefaultIntegerMax   = "65535"
	DefaultRealMin      = "-1000000000"
	DefaultRealMax      = "1000000000"
	DefaultRealAccuracy = "2"
)

// TypeKey identifies a data type by structure.
type TypeKey struct {
	Kind    reqif.Kind
	SubType string
}

// Constraints are the kind-specific bounds of a data type.
type Constraints struct {
	MaxLength string
	Min       string
	Max       string
	Accuracy  string
	Values    []mapping.EnumValueMapping
}

// ConstraintsOf extracts the data type constraints of an attribute mapping.
func ConstraintsOf(m *mapping.AttributeMapping) Constraints {
	return Constraints{
		MaxLength: m.MaxLength.String(),
		Min:       m.Min.String(),
		Max:       m.Max.String(),
		Accuracy:  m.Accuracy.String(),
		Values:    m.Values,
	}
}

// stamper hands out identifiers and the LAST-CHANGE value of one run.
type stamper struct {
	ids ident.Generator
	at  string
}

func (s stamper) id(prefix string) string {
	return s.ids.New(prefix)
}

// Registry interns data types. The first request for a TypeKey creates the
// data type; later requests return the same pointer and ignore their
// constraints.
type Registry struct {
	stamp stamper
	byKey map[TypeKey]*reqif.DataType
	byID  map[string]*reqif.DataType
	order []*reqif.DataType
}

// NewRegistry creates an empty registry. lastChange is stamped on every record.
func NewRegistry(ids ident.Generator, lastChange string) *Registry {
	return &Registry{
		stamp: stamper{ids: ids, at: lastChange},
		byKey: make(map[TypeKey]*reqif.DataType),
		byID:  make(map[string]*reqif.DataType),
	}
}

// Intern returns the data type for (kind, subType), creating it on first use.
func (r *Registry) Intern(kind reqif.Kind, subType string, c Constraints) (*reqif.DataType, error) {
	key := TypeKey{Kind: kind, SubType: subType}
	if dt, ok := r.byKey[key]; ok {
		return dt, nil
	}

	dt, err := r.create(key, c)
	if err != nil {
		return nil, err
	}

	r.byKey[key] = dt
	r.byID[dt.Identifier] = dt
	r.order = append(r.order, dt)

	return dt, nil
}

// ByID returns the data type with the given identifier.
func (r *Registry) ByID(id string) (*reqif.DataType, bool) {
	dt, ok := r.byID[id]
	return dt, ok
}

// All returns the data types in creation order.
func (r *Registry) All() []*reqif.DataType {
	return r.order
}

func (r *Registry) create(key TypeKey, c Constraints) (*reqif.DataType, error) {
	dt := &reqif.DataType{
		LongName:   longName(key),
		LastChange: r.stamp.at,
		Kind:       key.Kind,
	}

	switch key.Kind {
	case reqif.KindString:
		dt.MaxLength = common.FirstNonEmpty(c.MaxLength, DefaultMaxLength)
	case reqif.KindInteger:
		dt.Min = common.FirstNonEmpty(c.Min, DefaultIntegerMin)
		dt.Max = common.FirstNonEmpty(c.Max, DefaultIntegerMax)
	case reqif.KindReal:
		dt.Min = common.FirstNonEmpty(c.Min, DefaultRealMin)
		dt.Max = common.FirstNonEmpty(c.Max, DefaultRealMax)
		dt.Accuracy = common.FirstNonEmpty(c.Accuracy, DefaultRealAccuracy)
	case reqif.KindEnumeration:
		dt.Values = make([]*reqif.EnumValue, 0, len(c.Values))
		for _, v := range c.Values {
			dt.Values = append(dt.Values, &reqif.EnumValue{
				Identifier:   r.stamp.id("EV"),
				LastChange:   r.stamp.at,
				Key:          v.Key.String(),
				LongName:     v.Value,
				OtherContent: v.Content,
			})
		}
	case reqif.KindBoolean, reqif.KindDate, reqif.KindXHTML:
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%s", key.Kind)
	}

	dt.Identifier = r.stamp.id("DTD")

	return dt, nil
}

// longName names a data type after its kind and subtype, e.g. STRING_id,
// ENUM_status or the bare XHTML of the shared rich text type.
func longName(key TypeKey) string {
	name := key.Kind.String()
	if key.Kind == reqif.KindEnumeration {
		name = "ENUM"
	}

	if key.SubType == "" {
		return name
	}

	return name + "_" + key.SubType
}
