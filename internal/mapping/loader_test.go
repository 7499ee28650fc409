package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json2reqif/internal/common"
)

func keysOf(a Attributes) []string {
	return common.Map(a, func(attr Attribute) string { return attr.Key })
}

const standardYAML = `
version: "1.0"
config:
  tool: Polarion
  toolVersion: "22"
  repository: main
specification:
  type: Document
  id: $.id
  selector: $
  attributes:
    ReqIF_Name:
      attributeType: XHTML
      longName: ReqIF.Name
      selector: $.title
    Owner:
requirements:
  selector: $.children
  variants:
    - type: Folder
      match: "$[?(@.type == 'Folder')]"
      attributes:
        Text:
          attributeType: XHTML
          selector: $.text
    - type: Requirement
      match: "$[?(@.type == 'Requirement')]"
      attributes:
        ForeignID:
          attributeType: STRING
          type: id
          maxLength: 15
          selector: $.id
        Status:
          attributeType: ENUMERATION
          type: status
          selector: $.status
          values:
            - {key: 0, value: Open, content: Open}
            - {key: 1, value: Closed, content: Closed}
        Priority:
          attributeType: INTEGER
          type: prio
          min: "1"
          max: 5
          literal: "3"
`

const capellaYAML = `
header:
  tool: Capella
  toolVersion: "6.1"
  repository: model
specification:
  type: Module
  id: {root: $.uuid}
  selector: {root: "$.modules[*]"}
  nameAttribute: Title
  attributes:
    - key: Title
      attributeType: STRING
      selector: $.name
    - key: Unused
requirements:
  selector: {root: $.children}
  childrenField: ownedRequirements
  captionField: name
  variants:
    - type: Requirement
      match: {root: "$[*]"}
      attributes:
        - key: Text
          attributeType: XHTML
          type: text
          selector: $.text
`

func TestParse_Standard(t *testing.T) {
	cfg, err := Parse([]byte(standardYAML))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DialectStandard, cfg.Dialect)
	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "Polarion 22", cfg.Header.SourceToolID())
	assert.Equal(t, "main", cfg.Header.Repository)

	spec := cfg.Specification
	assert.Equal(t, "Document", spec.Type)
	assert.Equal(t, Query("$.id"), spec.ID)
	assert.Equal(t, Query("$"), spec.Selector)
	assert.Equal(t, DefaultNameAttribute, spec.NameAttribute)
	assert.Equal(t, []string{"ReqIF_Name", "Owner"}, keysOf(spec.Attributes))
	assert.Nil(t, spec.Attributes[1].Mapping)

	name, ok := spec.Attributes.Get("ReqIF_Name")
	require.True(t, ok)
	assert.Equal(t, "ReqIF.Name", name.LongName)

	_, ok = spec.Attributes.Get("Owner")
	assert.False(t, ok, "attributes without a body are not returned")

	req := cfg.Requirements
	assert.Equal(t, Query("$.children"), req.Selector)
	assert.Equal(t, DefaultChildrenField, req.ChildrenField)
	assert.Equal(t, DefaultCaptionField, req.CaptionField)
	require.Len(t, req.Variants, 2)

	v := req.Variants[1]
	assert.Equal(t, "Requirement", v.Type)
	assert.Equal(t, Query("$[?(@.type == 'Requirement')]"), v.Match)
	assert.Equal(t, []string{"ForeignID", "Status", "Priority"}, keysOf(v.Attributes))

	id, _ := v.Attributes.Get("ForeignID")
	assert.Equal(t, Scalar("15"), id.MaxLength)
	assert.Equal(t, "id", id.SubType)

	status, _ := v.Attributes.Get("Status")
	require.Len(t, status.Values, 2)
	assert.Equal(t, Scalar("1"), status.Values[1].Key)
	assert.Equal(t, "Closed", status.Values[1].Value)

	prio, _ := v.Attributes.Get("Priority")
	assert.Equal(t, Scalar("1"), prio.Min)
	assert.Equal(t, Scalar("5"), prio.Max)
	assert.False(t, prio.HasSelector())
	assert.Equal(t, "3", prio.Literal)
}

func TestParse_Capella(t *testing.T) {
	cfg, err := Parse([]byte(capellaYAML))
	require.NoError(t, err)

	assert.Equal(t, DialectCapella, cfg.Dialect)
	assert.Empty(t, cfg.Version)
	assert.Equal(t, "Capella 6.1", cfg.Header.SourceToolID())

	spec := cfg.Specification
	assert.Equal(t, Query("$.uuid"), spec.ID)
	assert.Equal(t, Query("$.modules[*]"), spec.Selector)
	assert.Equal(t, "Title", spec.NameAttribute)
	assert.Equal(t, []string{"Title", "Unused"}, keysOf(spec.Attributes))
	assert.NotNil(t, spec.Attributes[0].Mapping)
	assert.Nil(t, spec.Attributes[1].Mapping)

	req := cfg.Requirements
	assert.Equal(t, Query("$.children"), req.Selector)
	assert.Equal(t, "ownedRequirements", req.ChildrenField)
	assert.Equal(t, "name", req.CaptionField)
	require.Len(t, req.Variants, 1)
	assert.Equal(t, Query("$[*]"), req.Variants[0].Match)

	text, ok := req.Variants[0].Attributes.Get("Text")
	require.True(t, ok)
	assert.Equal(t, "XHTML", text.AttributeType)
	assert.Equal(t, "text", text.SubType)
}

func TestParse_JSON(t *testing.T) {
	data := `{
  "config": {"tool": "T", "toolVersion": "1", "repository": "r"},
  "specification": {
    "type": "Doc",
    "id": "$.id",
    "selector": "$",
    "attributes": {
      "ReqIF_Name": {"attributeType": "STRING", "selector": "$.name"},
      "Kind": {"attributeType": "STRING", "literal": "spec"}
    }
  },
  "requirements": {
    "selector": "$.children",
    "variants": [
      {"type": "Req", "match": "$[*]", "attributes": {"Text": {"attributeType": "XHTML", "selector": "$.text"}}}
    ]
  }
}`

	cfg, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, DialectStandard, cfg.Dialect)
	assert.Equal(t, []string{"ReqIF_Name", "Kind"}, keysOf(cfg.Specification.Attributes))
	assert.Equal(t, "T 1", cfg.Header.SourceToolID())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "not yaml", data: "specification: [unterminated"},
		{name: "unknown top-level field", data: "foo: bar\n"},
		{name: "mixed dialects", data: "config: {tool: t}\nspecification:\n  id: {root: $.id}\n"},
		{name: "attribute list in standard header", data: "config: {tool: t}\nspecification:\n  attributes:\n    - key: A\n"},
		{name: "unknown attribute field", data: "specification:\n  attributes:\n    A: {attributeType: STRING, colour: red}\n"},
		{name: "capella entry without key", data: "header: {}\nspecification:\n  attributes:\n    - attributeType: STRING\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_InvalidMappingStillDecodes(t *testing.T) {
	cfg, err := Parse([]byte("config: {tool: t}\nspecification: {type: Doc}\n"))
	require.NoError(t, err)

	assert.Equal(t, DialectStandard, cfg.Dialect)
	assert.True(t, Validate(cfg).HasErrors())
}

func TestParse_Version(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{version: "1", wantErr: false},
		{version: "1.0", wantErr: false},
		{version: "2.5.1", wantErr: false},
		{version: "3.0", wantErr: true},
		{version: "0.9", wantErr: true},
		{version: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			data := strings.Replace(standardYAML, `version: "1.0"`, "version: "+tt.version, 1)
			_, err := Parse([]byte(data))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte(standardYAML), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Document", cfg.Specification.Type)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config: {tool: t}\nspecification: {type: Doc}\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_query")

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(standardYAML), 0o600))

	_, err = Load(valid)
	assert.NoError(t, err)
}
