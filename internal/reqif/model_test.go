package reqif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataType_FindValue(t *testing.T) {
	dt := &DataType{
		Kind: KindEnumeration,
		Values: []*EnumValue{
			{Identifier: "EV_1", LongName: "Open"},
			{Identifier: "EV_2", LongName: "Closed"},
			{Identifier: "EV_3", LongName: "Closed"},
		},
	}

	v, ok := dt.FindValue("Closed")
	require.True(t, ok)
	assert.Equal(t, "EV_2", v.Identifier)

	_, ok = dt.FindValue("closed")
	assert.False(t, ok)
}

func TestSpecHierarchy_Walk(t *testing.T) {
	root := &SpecHierarchy{
		Identifier: "a",
		Children: []*SpecHierarchy{
			{Identifier: "b", Children: []*SpecHierarchy{{Identifier: "c"}}},
			{Identifier: "d"},
		},
	}

	var order []string
	root.Walk(func(h *SpecHierarchy) { order = append(order, h.Identifier) })

	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}
