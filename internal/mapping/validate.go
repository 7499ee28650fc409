package mapping

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"json2reqif/internal/common"
	"json2reqif/internal/diagnostic"
	"json2reqif/internal/query"
	"json2reqif/internal/reqif"
	"json2reqif/internal/suggest"
)

const specificationSection = "specification"

// Validate checks a mapping configuration for structural problems. It does not
// look at any input document; queries are only compiled.
func Validate(cfg *MappingConfig) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("mapping_is_nil", "mapping configuration is nil", "", "")
		return res
	}

	validateSpecification(res, &cfg.Specification)
	validateRequirements(res, &cfg.Requirements)

	types := map[string]typeShape{}

	validateAttributes(res, specificationSection, cfg.Specification.Attributes, types)

	for i := range cfg.Requirements.Variants {
		v := &cfg.Requirements.Variants[i]
		validateAttributes(res, variantSection(v), v.Attributes, types)
	}

	return res
}

func variantSection(v *VariantMapping) string {
	return "variant " + v.Type
}

func validateSpecification(res *diagnostic.Diagnostics, spec *SpecificationMapping) {
	if spec.Type == "" {
		res.AddError("missing_specification_type", "specification type is required", specificationSection, "")
	}

	validateQuery(res, specificationSection, "selector", spec.Selector, true)
	validateQuery(res, specificationSection, "id", spec.ID, true)

	name, ok := spec.Attributes.Get(spec.NameAttribute)

	switch {
	case !ok:
		res.AddError("missing_name_attribute",
			fmt.Sprintf("specification attributes must declare the name attribute %q", spec.NameAttribute),
			specificationSection, spec.NameAttribute)
	case !name.HasSelector():
		res.AddError("name_attribute_without_selector",
			"the name attribute must be derived by selector", specificationSection, spec.NameAttribute)
	}
}

func validateRequirements(res *diagnostic.Diagnostics, req *RequirementsMapping) {
	const section = "requirements"

	validateQuery(res, section, "selector", req.Selector, true)

	if len(req.Variants) == 0 {
		res.AddError("no_variants", "at least one requirement variant is required", section, "")
	}

	seen := map[string]struct{}{}

	for i := range req.Variants {
		v := &req.Variants[i]

		if v.Type == "" {
			res.AddError("missing_variant_type", fmt.Sprintf("variant #%d has no type", i+1), section, "")
			continue
		}

		if _, ok := seen[v.Type]; ok {
			res.AddError("duplicate_variant_type", fmt.Sprintf("duplicate variant type %q", v.Type), section, v.Type)
			continue
		}

		seen[v.Type] = struct{}{}

		validateQuery(res, variantSection(v), "match", v.Match, true)
	}
}

func validateQuery(res *diagnostic.Diagnostics, section, attribute string, q Query, required bool) {
	if q == "" {
		if required {
			res.AddError("missing_query", fmt.Sprintf("%s query is required", attribute), section, attribute)
		}

		return
	}

	if _, err := query.Compile(q.String()); err != nil {
		res.AddError("invalid_query", err.Error(), section, attribute)
	}
}

// typeShape records the first declaration of a data type so later,
// different declarations of the same (kind, subtype) can be reported.
type typeShape struct {
	section     string
	constraints string
}

func validateAttributes(res *diagnostic.Diagnostics, section string, attrs Attributes, types map[string]typeShape) {
	seen := map[string]struct{}{}

	for _, attr := range attrs {
		if _, ok := seen[attr.Key]; ok {
			res.AddError("duplicate_attribute", fmt.Sprintf("attribute %q declared twice", attr.Key), section, attr.Key)
			continue
		}

		seen[attr.Key] = struct{}{}

		if attr.Mapping == nil {
			continue
		}

		validateAttribute(res, section, attr.Key, attr.Mapping, types)
	}
}

func validateAttribute(
	res *diagnostic.Diagnostics,
	section, key string,
	m *AttributeMapping,
	types map[string]typeShape,
) {
	kind, ok := reqif.ParseKind(m.AttributeType)
	if !ok {
		names := common.Map(reqif.Kinds(), reqif.Kind.String)
		msg := fmt.Sprintf("unknown attribute type %q (expected one of %s)", m.AttributeType, strings.Join(names, ", "))

		if hint := suggest.Hint(m.AttributeType, names); hint != "" {
			msg += "; " + hint
		}

		res.AddError("unknown_attribute_type", msg, section, key)

		return
	}

	// An attribute with neither source is legal; it never produces a value.
	if m.HasSelector() {
		validateQuery(res, section, key, m.Selector, false)

		if m.Literal != "" {
			res.AddWarning("literal_ignored", "both selector and literal set; the selector wins", section, key)
		}
	}

	switch kind {
	case reqif.KindString:
		validateInteger(res, section, key, "maxLength", m.MaxLength)
	case reqif.KindInteger:
		validateInteger(res, section, key, "min", m.Min)
		validateInteger(res, section, key, "max", m.Max)
	case reqif.KindReal:
		validateReal(res, section, key, "min", m.Min)
		validateReal(res, section, key, "max", m.Max)
		validateInteger(res, section, key, "accuracy", m.Accuracy)
	case reqif.KindEnumeration:
		validateEnumValues(res, section, key, m.Values)
	case reqif.KindBoolean, reqif.KindDate, reqif.KindXHTML:
	}

	typeKey := kind.String() + "_" + m.SubType
	shape := typeShape{section: section, constraints: constraintsOf(m)}

	if prev, ok := types[typeKey]; !ok {
		types[typeKey] = shape
	} else if prev.constraints != shape.constraints {
		res.AddWarning("conflicting_data_type",
			fmt.Sprintf("data type %s was first declared in %s with other constraints; that declaration wins", typeKey, prev.section),
			section, key)
	}
}

func validateInteger(res *diagnostic.Diagnostics, section, key, field string, v Scalar) {
	if v == "" {
		return
	}

	if _, err := cast.ToInt64E(v.String()); err != nil {
		res.AddError("invalid_bound", fmt.Sprintf("%s %q is not an integer", field, v), section, key)
	}
}

func validateReal(res *diagnostic.Diagnostics, section, key, field string, v Scalar) {
	if v == "" {
		return
	}

	if _, err := cast.ToFloat64E(v.String()); err != nil {
		res.AddError("invalid_bound", fmt.Sprintf("%s %q is not a number", field, v), section, key)
	}
}

func validateEnumValues(res *diagnostic.Diagnostics, section, key string, values []EnumValueMapping) {
	if len(values) == 0 {
		res.AddError("enumeration_without_values", "enumeration needs at least one value", section, key)
		return
	}

	labels := map[string]struct{}{}

	for _, v := range values {
		if v.Value == "" {
			res.AddError("enumeration_value_without_label", "enumeration value has no label", section, key)
			continue
		}

		if _, ok := labels[v.Value]; ok {
			res.AddError("duplicate_enum_label", fmt.Sprintf("enumeration label %q declared twice", v.Value), section, key)
			continue
		}

		labels[v.Value] = struct{}{}
	}
}

func constraintsOf(m *AttributeMapping) string {
	parts := []string{m.MaxLength.String(), m.Min.String(), m.Max.String(), m.Accuracy.String()}
	for _, v := range m.Values {
		parts = append(parts, v.Key.String()+"="+v.Value+"="+v.Content)
	}

	return strings.Join(parts, "|")
}
