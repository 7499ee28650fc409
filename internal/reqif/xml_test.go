package reqif

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func sampleBundle() *Bundle {
	return &Bundle{
		Header: &Header{
			Identifier:   "HDR_1",
			CreationTime: "2024-01-01T00:00:00.000+00:00",
			RepositoryID: "repo",
			ReqIFToolID:  "JSON to ReqIF Converter",
			ReqIFVersion: "1.0",
			SourceToolID: "Tool 1.2",
			Title:        "Exported Reqif",
		},
		DataTypes: []*DataType{
			{Identifier: "DTD_S", LongName: "STRING_id", Kind: KindString, MaxLength: "15"},
			{Identifier: "DTD_X", LongName: "XHTML", Kind: KindXHTML},
			{Identifier: "DTD_E", LongName: "ENUM_status", Kind: KindEnumeration, Values: []*EnumValue{
				{Identifier: "EV_O", Key: "0", LongName: "Open", OtherContent: "Open"},
			}},
		},
		SpecTypes: []*SpecType{
			{Identifier: "ST_1", LongName: "Doc", Category: CategorySpecification, Attributes: []*AttributeDefinition{
				{Identifier: "SAD_1", LongName: "ReqIF.Name", Kind: KindXHTML, DataType: "DTD_X"},
			}},
			{Identifier: "SOT_1", LongName: "Requirement", Category: CategorySpecObject, Attributes: []*AttributeDefinition{
				{Identifier: "AD_1", LongName: "ReqIF.ForeignId", Kind: KindString, DataType: "DTD_S"},
				{Identifier: "AD_2", LongName: "Status", Kind: KindEnumeration, DataType: "DTD_E", MultiValued: boolPtr(false)},
			}},
		},
		SpecObjects: []*SpecObject{
			{Identifier: "OBJ_1", Description: "R <1> & co", Type: "SOT_1", Values: []*AttributeValue{
				{Kind: KindString, Definition: "AD_1", Value: "R-1"},
				{Kind: KindEnumeration, Definition: "AD_2", EnumValues: []string{"EV_O"}},
			}},
			{Identifier: "OBJ_2", Type: "SOT_1"},
		},
		Specifications: []*Specification{
			{Identifier: "SPEC_1", LongName: "Doc", Type: "ST_1",
				Values: []*AttributeValue{
					{Kind: KindXHTML, Definition: "SAD_1", Value: "<xhtml:div>Doc</xhtml:div>"},
				},
				Children: []*SpecHierarchy{
					{Identifier: "HIER_1", LongName: "a & <b>", Object: "OBJ_1", Level: 1, Children: []*SpecHierarchy{
						{Identifier: "HIER_2", Object: "OBJ_2", Level: 2},
					}},
				},
			},
		},
	}
}

func assertWellFormed(t *testing.T, data []byte) {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}

		require.NoError(t, err)
	}
}

func TestXMLAssembler_Assemble(t *testing.T) {
	out, err := NewXMLAssembler(true).Assemble(sampleBundle())
	require.NoError(t, err)
	assertWellFormed(t, out)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, xml.Header))

	for _, want := range []string{
		`<REQ-IF xmlns="` + Namespace + `" xmlns:xhtml="` + XHTMLNamespace + `">`,
		`<REQ-IF-HEADER IDENTIFIER="HDR_1">`,
		`<SOURCE-TOOL-ID>Tool 1.2</SOURCE-TOOL-ID>`,
		`<DATATYPE-DEFINITION-STRING IDENTIFIER="DTD_S" LONG-NAME="STRING_id" MAX-LENGTH="15">`,
		`<EMBEDDED-VALUE KEY="0" OTHER-CONTENT="Open">`,
		`<SPECIFICATION-TYPE IDENTIFIER="ST_1" LONG-NAME="Doc">`,
		`<ATTRIBUTE-DEFINITION-ENUMERATION IDENTIFIER="AD_2" LONG-NAME="Status" MULTI-VALUED="false">`,
		`<DATATYPE-DEFINITION-ENUMERATION-REF>DTD_E</DATATYPE-DEFINITION-ENUMERATION-REF>`,
		`<ATTRIBUTE-VALUE-STRING THE-VALUE="R-1">`,
		`<ENUM-VALUE-REF>EV_O</ENUM-VALUE-REF>`,
		`<THE-VALUE><xhtml:div>Doc</xhtml:div></THE-VALUE>`,
		`<SPEC-OBJECT-TYPE-REF>SOT_1</SPEC-OBJECT-TYPE-REF>`,
		`<SPEC-OBJECT-REF>OBJ_2</SPEC-OBJECT-REF>`,
		`DESC="R &lt;1&gt; &amp; co"`,
		`LONG-NAME="a &amp; &lt;b&gt;"`,
	} {
		assert.Contains(t, s, want)
	}

	// OBJ_2 has no values and HIER_2 has no children.
	assert.Equal(t, 1, strings.Count(s, "<SPEC-OBJECT IDENTIFIER"+`="OBJ_1"`))
	assert.Equal(t, 2, strings.Count(s, "<CHILDREN>"))
}

func TestXMLAssembler_Compact(t *testing.T) {
	out, err := NewXMLAssembler(false).Assemble(sampleBundle())
	require.NoError(t, err)
	assertWellFormed(t, out)
	assert.NotContains(t, string(out), "\n  <")
}

func TestXMLAssembler_Errors(t *testing.T) {
	_, err := NewXMLAssembler(false).Assemble(nil)
	assert.Error(t, err)

	b := sampleBundle()
	b.DataTypes[0].Kind = 0
	_, err = NewXMLAssembler(false).Assemble(b)
	assert.Error(t, err)

	b = sampleBundle()
	b.SpecTypes[0].Category = 0
	_, err = NewXMLAssembler(false).Assemble(b)
	assert.Error(t, err)
}

func TestXMLAssembler_TextRoundTrips(t *testing.T) {
	out, err := NewXMLAssembler(false).Assemble(sampleBundle())
	require.NoError(t, err)

	attrs := map[string]string{}
	dec := xml.NewDecoder(bytes.NewReader(out))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		for _, a := range se.Attr {
			switch {
			case se.Name.Local == "SPEC-OBJECT" && a.Name.Local == "DESC":
				attrs["desc"] = a.Value
			case se.Name.Local == "SPEC-HIERARCHY" && a.Name.Local == "LONG-NAME":
				attrs["hierarchy"] = a.Value
			}
		}
	}

	assert.Equal(t, "R <1> & co", attrs["desc"])
	assert.Equal(t, "a & <b>", attrs["hierarchy"])
}
