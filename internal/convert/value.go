package convert

import (
	"strings"

	"github.com/cockroachdb/errors"

	"json2reqif/internal/common"
	"json2reqif/internal/reqif"
	"json2reqif/internal/suggest"
	"json2reqif/internal/xhtml"
)

// ValueBuilder turns raw strings into typed attribute values.
type ValueBuilder struct {
	registry *Registry
}

// NewValueBuilder creates a builder that resolves enumerations through registry.
func NewValueBuilder(registry *Registry) *ValueBuilder {
	return &ValueBuilder{registry: registry}
}

// Build returns the value of def for raw. An empty raw value yields a nil
// value and no error; the attribute is then left out of the record.
func (b *ValueBuilder) Build(def *reqif.AttributeDefinition, raw string) (*reqif.AttributeValue, error) {
	if raw == "" {
		return nil, nil
	}

	v := &reqif.AttributeValue{Kind: def.Kind, Definition: def.Identifier}

	switch def.Kind {
	case reqif.KindXHTML:
		frag, err := xhtml.Convert(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %s", def.LongName)
		}

		v.Value = frag
	case reqif.KindEnumeration:
		id, err := b.enumValue(def, raw)
		if err != nil {
			return nil, err
		}

		v.EnumValues = []string{id}
	case reqif.KindString, reqif.KindInteger, reqif.KindReal, reqif.KindBoolean, reqif.KindDate:
		v.Value = raw
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "attribute %s has kind %s", def.LongName, def.Kind)
	}

	return v, nil
}

func (b *ValueBuilder) enumValue(def *reqif.AttributeDefinition, label string) (string, error) {
	dt, ok := b.registry.ByID(def.DataType)
	if !ok {
		return "", errors.Wrapf(ErrTypeNotRegistered, "data type %s of attribute %s", def.DataType, def.LongName)
	}

	ev, ok := dt.FindValue(label)
	if !ok {
		labels := common.Map(dt.Values, func(v *reqif.EnumValue) string { return v.LongName })

		err := errors.WithHintf(
			errors.Wrapf(ErrEnumValueNotFound, "%q for attribute %s (%s)", label, def.LongName, dt.LongName),
			"known labels: %s", strings.Join(labels, ", "),
		)

		if hint := suggest.Hint(label, labels); hint != "" {
			err = errors.WithHint(err, hint)
		}

		return "", err
	}

	return ev.Identifier, nil
}
