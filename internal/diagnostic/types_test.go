package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Empty(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	d.AddError("missing_selector", "selector is required", "variant Folder", "")
	d.AddError("unknown_attribute_type", `unknown attribute type "FOO"`, "specification", "Title")
	d.AddWarning("empty_values", "no values", "", "")

	require.True(t, d.HasErrors())
	assert.Equal(t, []string{"missing_selector", "unknown_attribute_type"}, d.Codes())
	assert.Len(t, d.All(), 3)

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[variant Folder]: [missing_selector] selector is required")
	assert.Contains(t, err.Error(), `[specification] Title: [unknown_attribute_type] unknown attribute type "FOO"`)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("w", "warn", "", "")
	b.AddError("e", "err", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(0).String())
}

func TestDiagnostic_StringWithoutContext(t *testing.T) {
	d := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", d.String())
}
