package convert

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json2reqif/internal/mapping"
	"json2reqif/internal/reqif"
)

func attr(key, kind, subType string) mapping.Attribute {
	return mapping.Attribute{Key: key, Mapping: &mapping.AttributeMapping{
		AttributeType: kind,
		SubType:       subType,
		Selector:      mapping.Query("$." + key),
		Values:        []mapping.EnumValueMapping{{Key: "0", Value: "Open"}},
	}}
}

func TestSpecificationResolver(t *testing.T) {
	r := newTestRegistry()

	res, err := NewSpecificationResolver(r, &mapping.SpecificationMapping{
		Type: "Document",
		Attributes: mapping.Attributes{
			attr("ReqIF_Name", "XHTML", ""),
			{Key: "Unused"},
		},
	})
	require.NoError(t, err)

	st, err := res.Type("Document")
	require.NoError(t, err)
	assert.Equal(t, reqif.CategorySpecification, st.Category)
	assert.Contains(t, st.Identifier, "ST_")
	require.Len(t, st.Attributes, 1)

	def, err := res.Resolve("Document", "ReqIF_Name")
	require.NoError(t, err)
	assert.Same(t, st.Attributes[0], def)
	assert.Contains(t, def.Identifier, "SAD_")
	assert.Equal(t, "ReqIF_Name", def.LongName)
	assert.Nil(t, def.MultiValued)

	_, err = res.Resolve("Document", "Unused")
	assert.ErrorIs(t, err, ErrAttributeNotRegistered)

	_, err = res.Resolve("Other", "ReqIF_Name")
	assert.ErrorIs(t, err, ErrTypeNotRegistered)

	_, err = res.Type("Other")
	assert.ErrorIs(t, err, ErrTypeNotRegistered)
}

func TestObjectResolver_PerVariant(t *testing.T) {
	r := newTestRegistry()

	res, err := NewObjectResolver(r, &mapping.RequirementsMapping{
		Variants: []mapping.VariantMapping{
			{Type: "Folder", Attributes: mapping.Attributes{attr("Text", "XHTML", "")}},
			{Type: "Requirement", Attributes: mapping.Attributes{
				attr("Text", "XHTML", ""),
				attr("Status", "ENUMERATION", "status"),
			}},
		},
	})
	require.NoError(t, err)

	folderText, err := res.Resolve("Folder", "Text")
	require.NoError(t, err)

	reqText, err := res.Resolve("Requirement", "Text")
	require.NoError(t, err)

	assert.NotEqual(t, folderText.Identifier, reqText.Identifier, "variants never share definitions")
	assert.Equal(t, folderText.DataType, reqText.DataType, "data types are interned")
	assert.Contains(t, folderText.Identifier, "AD_")

	status, err := res.Resolve("Requirement", "Status")
	require.NoError(t, err)
	require.NotNil(t, status.MultiValued)
	assert.False(t, *status.MultiValued)
	assert.Equal(t, reqif.KindEnumeration, status.Kind)

	_, err = res.Resolve("Folder", "Status")
	assert.ErrorIs(t, err, ErrAttributeNotRegistered)

	_, err = res.Resolve("Requirement", "Stat")
	require.ErrorIs(t, err, ErrAttributeNotRegistered)
	assert.Contains(t, errors.GetAllHints(err), `did you mean "Status"?`)

	types := res.Types()
	require.Len(t, types, 2)
	assert.Equal(t, "Folder", types[0].LongName)
	assert.Equal(t, reqif.CategorySpecObject, types[1].Category)

	assert.Len(t, r.All(), 2)
}

func TestObjectResolver_UnknownKind(t *testing.T) {
	_, err := NewObjectResolver(newTestRegistry(), &mapping.RequirementsMapping{
		Variants: []mapping.VariantMapping{
			{Type: "Requirement", Attributes: mapping.Attributes{attr("Weight", "FLOAT", "")}},
		},
	})

	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "Requirement")
	assert.Contains(t, err.Error(), "Weight")

	_, err = NewObjectResolver(newTestRegistry(), &mapping.RequirementsMapping{
		Variants: []mapping.VariantMapping{
			{Type: "Requirement", Attributes: mapping.Attributes{attr("Weight", "INTEGR", "")}},
		},
	})
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, errors.GetAllHints(err), `did you mean "INTEGER"?`)
}

func TestObjectResolver_DuplicateVariant(t *testing.T) {
	v := mapping.VariantMapping{Type: "Requirement"}

	_, err := NewObjectResolver(newTestRegistry(), &mapping.RequirementsMapping{
		Variants: []mapping.VariantMapping{v, v},
	})

	assert.Error(t, err)
}
