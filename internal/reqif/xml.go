package reqif

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/cockroachdb/errors"
)

const (
	// Namespace is the ReqIF 1.0 schema namespace.
	Namespace = "http://www.omg.org/spec/ReqIF/20110401/reqif.xsd"
	// XHTMLNamespace is bound to the xhtml prefix used in rich text values.
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
)

// XMLAssembler writes ReqIF XML.
type XMLAssembler struct {
	// Indent enables pretty-printed output.
	Indent bool
}

// NewXMLAssembler creates an assembler.
func NewXMLAssembler(indent bool) *XMLAssembler {
	return &XMLAssembler{Indent: indent}
}

// Assemble serializes b to a ReqIF document.
func (a *XMLAssembler) Assemble(b *Bundle) ([]byte, error) {
	if b == nil || b.Header == nil {
		return nil, errors.New("bundle has no header")
	}

	doc, err := buildDocument(b)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if a.Indent {
		enc.Indent("", "  ")
	}

	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode ReqIF document")
	}

	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to flush ReqIF document")
	}

	buf.WriteString("\n")

	return buf.Bytes(), nil
}

type xmlDocument struct {
	XMLName     xml.Name       `xml:"REQ-IF"`
	Xmlns       string         `xml:"xmlns,attr"`
	XmlnsXHTML  string         `xml:"xmlns:xhtml,attr"`
	Header      xmlHeader      `xml:"THE-HEADER>REQ-IF-HEADER"`
	CoreContent xmlCoreContent `xml:"CORE-CONTENT>REQ-IF-CONTENT"`
}

type xmlHeader struct {
	Identifier   string `xml:"IDENTIFIER,attr"`
	CreationTime string `xml:"CREATION-TIME,omitempty"`
	RepositoryID string `xml:"REPOSITORY-ID,omitempty"`
	ReqIFToolID  string `xml:"REQ-IF-TOOL-ID,omitempty"`
	ReqIFVersion string `xml:"REQ-IF-VERSION,omitempty"`
	SourceToolID string `xml:"SOURCE-TOOL-ID,omitempty"`
	Title        string `xml:"TITLE,omitempty"`
}

type xmlCoreContent struct {
	DataTypes      *xmlDataTypes      `xml:"DATATYPES,omitempty"`
	SpecTypes      *xmlSpecTypes      `xml:"SPEC-TYPES,omitempty"`
	SpecObjects    *xmlSpecObjects    `xml:"SPEC-OBJECTS,omitempty"`
	Specifications *xmlSpecifications `xml:"SPECIFICATIONS,omitempty"`
}

// Element names of the polymorphic records come from XMLName.

type xmlDataTypes struct {
	Items []xmlDataType
}

type xmlDataType struct {
	XMLName    xml.Name
	Identifier string              `xml:"IDENTIFIER,attr"`
	LastChange string              `xml:"LAST-CHANGE,attr,omitempty"`
	LongName   string              `xml:"LONG-NAME,attr,omitempty"`
	Accuracy   string              `xml:"ACCURACY,attr,omitempty"`
	MaxLength  string              `xml:"MAX-LENGTH,attr,omitempty"`
	Max        string              `xml:"MAX,attr,omitempty"`
	Min        string              `xml:"MIN,attr,omitempty"`
	Values     *xmlSpecifiedValues `xml:"SPECIFIED-VALUES,omitempty"`
}

type xmlSpecifiedValues struct {
	Items []xmlEnumValue `xml:"ENUM-VALUE"`
}

type xmlEnumValue struct {
	Identifier string           `xml:"IDENTIFIER,attr"`
	LastChange string           `xml:"LAST-CHANGE,attr,omitempty"`
	LongName   string           `xml:"LONG-NAME,attr,omitempty"`
	Embedded   xmlEmbeddedValue `xml:"PROPERTIES>EMBEDDED-VALUE"`
}

type xmlEmbeddedValue struct {
	Key          string `xml:"KEY,attr"`
	OtherContent string `xml:"OTHER-CONTENT,attr"`
}

type xmlSpecTypes struct {
	Items []xmlSpecType
}

type xmlSpecType struct {
	XMLName    xml.Name
	Identifier string            `xml:"IDENTIFIER,attr"`
	LastChange string            `xml:"LAST-CHANGE,attr,omitempty"`
	LongName   string            `xml:"LONG-NAME,attr,omitempty"`
	Attributes *xmlAttributeDefs `xml:"SPEC-ATTRIBUTES,omitempty"`
}

type xmlAttributeDefs struct {
	Items []xmlAttributeDef
}

type xmlAttributeDef struct {
	XMLName     xml.Name
	Identifier  string       `xml:"IDENTIFIER,attr"`
	LastChange  string       `xml:"LAST-CHANGE,attr,omitempty"`
	LongName    string       `xml:"LONG-NAME,attr,omitempty"`
	MultiValued string       `xml:"MULTI-VALUED,attr,omitempty"`
	Type        xmlRefHolder `xml:"TYPE"`
}

type xmlRefHolder struct {
	Ref xmlRef
}

type xmlRef struct {
	XMLName xml.Name
	ID      string `xml:",chardata"`
}

type xmlSpecObjects struct {
	Items []xmlSpecObject `xml:"SPEC-OBJECT"`
}

type xmlSpecObject struct {
	Identifier string     `xml:"IDENTIFIER,attr"`
	LastChange string     `xml:"LAST-CHANGE,attr,omitempty"`
	Desc       string     `xml:"DESC,attr,omitempty"`
	Values     *xmlValues `xml:"VALUES,omitempty"`
	Type       string     `xml:"TYPE>SPEC-OBJECT-TYPE-REF"`
}

type xmlValues struct {
	Items []xmlAttributeValue
}

type xmlAttributeValue struct {
	XMLName    xml.Name
	TheValue   string       `xml:"THE-VALUE,attr,omitempty"`
	Definition xmlRefHolder `xml:"DEFINITION"`
	XHTML      *xmlXHTML    `xml:"THE-VALUE,omitempty"`
	EnumRefs   *xmlEnumRefs `xml:"VALUES,omitempty"`
}

type xmlXHTML struct {
	Inner string `xml:",innerxml"`
}

type xmlEnumRefs struct {
	Items []string `xml:"ENUM-VALUE-REF"`
}

type xmlSpecifications struct {
	Items []xmlSpecification `xml:"SPECIFICATION"`
}

type xmlSpecification struct {
	Identifier string       `xml:"IDENTIFIER,attr"`
	LastChange string       `xml:"LAST-CHANGE,attr,omitempty"`
	LongName   string       `xml:"LONG-NAME,attr,omitempty"`
	Values     *xmlValues   `xml:"VALUES,omitempty"`
	Type       string       `xml:"TYPE>SPECIFICATION-TYPE-REF"`
	Children   *xmlChildren `xml:"CHILDREN,omitempty"`
}

type xmlChildren struct {
	Items []xmlHierarchy `xml:"SPEC-HIERARCHY"`
}

type xmlHierarchy struct {
	Identifier string       `xml:"IDENTIFIER,attr"`
	LastChange string       `xml:"LAST-CHANGE,attr,omitempty"`
	LongName   string       `xml:"LONG-NAME,attr,omitempty"`
	Object     string       `xml:"OBJECT>SPEC-OBJECT-REF"`
	Children   *xmlChildren `xml:"CHILDREN,omitempty"`
}

func buildDocument(b *Bundle) (*xmlDocument, error) {
	doc := &xmlDocument{
		Xmlns:      Namespace,
		XmlnsXHTML: XHTMLNamespace,
		Header: xmlHeader{
			Identifier:   b.Header.Identifier,
			CreationTime: b.Header.CreationTime,
			RepositoryID: b.Header.RepositoryID,
			ReqIFToolID:  b.Header.ReqIFToolID,
			ReqIFVersion: b.Header.ReqIFVersion,
			SourceToolID: b.Header.SourceToolID,
			Title:        b.Header.Title,
		},
	}

	if len(b.DataTypes) > 0 {
		doc.CoreContent.DataTypes = &xmlDataTypes{}
		for _, dt := range b.DataTypes {
			x, err := encodeDataType(dt)
			if err != nil {
				return nil, err
			}

			doc.CoreContent.DataTypes.Items = append(doc.CoreContent.DataTypes.Items, x)
		}
	}

	if len(b.SpecTypes) > 0 {
		doc.CoreContent.SpecTypes = &xmlSpecTypes{}
		for _, st := range b.SpecTypes {
			x, err := encodeSpecType(st)
			if err != nil {
				return nil, err
			}

			doc.CoreContent.SpecTypes.Items = append(doc.CoreContent.SpecTypes.Items, x)
		}
	}

	if len(b.SpecObjects) > 0 {
		doc.CoreContent.SpecObjects = &xmlSpecObjects{}
		for _, so := range b.SpecObjects {
			values, err := encodeValues(so.Values)
			if err != nil {
				return nil, errors.Wrapf(err, "spec object %s", so.Identifier)
			}

			doc.CoreContent.SpecObjects.Items = append(doc.CoreContent.SpecObjects.Items, xmlSpecObject{
				Identifier: so.Identifier,
				LastChange: so.LastChange,
				Desc:       so.Description,
				Values:     values,
				Type:       so.Type,
			})
		}
	}

	if len(b.Specifications) > 0 {
		doc.CoreContent.Specifications = &xmlSpecifications{}
		for _, s := range b.Specifications {
			values, err := encodeValues(s.Values)
			if err != nil {
				return nil, errors.Wrapf(err, "specification %s", s.Identifier)
			}

			doc.CoreContent.Specifications.Items = append(doc.CoreContent.Specifications.Items, xmlSpecification{
				Identifier: s.Identifier,
				LastChange: s.LastChange,
				LongName:   s.LongName,
				Values:     values,
				Type:       s.Type,
				Children:   encodeChildren(s.Children),
			})
		}
	}

	return doc, nil
}

func encodeDataType(dt *DataType) (xmlDataType, error) {
	if !dt.Kind.IsValid() {
		return xmlDataType{}, errors.Newf("data type %s has invalid kind %s", dt.Identifier, dt.Kind)
	}

	x := xmlDataType{
		XMLName:    xml.Name{Local: "DATATYPE-DEFINITION-" + dt.Kind.String()},
		Identifier: dt.Identifier,
		LastChange: dt.LastChange,
		LongName:   dt.LongName,
	}

	switch dt.Kind {
	case KindString:
		x.MaxLength = dt.MaxLength
	case KindInteger:
		x.Min, x.Max = dt.Min, dt.Max
	case KindReal:
		x.Min, x.Max, x.Accuracy = dt.Min, dt.Max, dt.Accuracy
	case KindEnumeration:
		x.Values = &xmlSpecifiedValues{}
		for _, v := range dt.Values {
			x.Values.Items = append(x.Values.Items, xmlEnumValue{
				Identifier: v.Identifier,
				LastChange: v.LastChange,
				LongName:   v.LongName,
				Embedded:   xmlEmbeddedValue{Key: v.Key, OtherContent: v.OtherContent},
			})
		}
	case KindBoolean, KindDate, KindXHTML:
	}

	return x, nil
}

func encodeSpecType(st *SpecType) (xmlSpecType, error) {
	var name string

	switch st.Category {
	case CategorySpecification:
		name = "SPECIFICATION-TYPE"
	case CategorySpecObject:
		name = "SPEC-OBJECT-TYPE"
	default:
		return xmlSpecType{}, errors.Newf("spec type %s has no category", st.Identifier)
	}

	x := xmlSpecType{
		XMLName:    xml.Name{Local: name},
		Identifier: st.Identifier,
		LastChange: st.LastChange,
		LongName:   st.LongName,
	}

	if len(st.Attributes) == 0 {
		return x, nil
	}

	x.Attributes = &xmlAttributeDefs{}
	for _, ad := range st.Attributes {
		if !ad.Kind.IsValid() {
			return xmlSpecType{}, errors.Newf("attribute definition %s has invalid kind %s", ad.Identifier, ad.Kind)
		}

		def := xmlAttributeDef{
			XMLName:    xml.Name{Local: "ATTRIBUTE-DEFINITION-" + ad.Kind.String()},
			Identifier: ad.Identifier,
			LastChange: ad.LastChange,
			LongName:   ad.LongName,
			Type: xmlRefHolder{Ref: xmlRef{
				XMLName: xml.Name{Local: "DATATYPE-DEFINITION-" + ad.Kind.String() + "-REF"},
				ID:      ad.DataType,
			}},
		}

		if ad.MultiValued != nil {
			def.MultiValued = strconv.FormatBool(*ad.MultiValued)
		}

		x.Attributes.Items = append(x.Attributes.Items, def)
	}

	return x, nil
}

func encodeValues(values []*AttributeValue) (*xmlValues, error) {
	if len(values) == 0 {
		return nil, nil
	}

	out := &xmlValues{}
	for _, v := range values {
		if !v.Kind.IsValid() {
			return nil, errors.Newf("attribute value for %s has invalid kind %s", v.Definition, v.Kind)
		}

		x := xmlAttributeValue{
			XMLName: xml.Name{Local: "ATTRIBUTE-VALUE-" + v.Kind.String()},
			Definition: xmlRefHolder{Ref: xmlRef{
				XMLName: xml.Name{Local: "ATTRIBUTE-DEFINITION-" + v.Kind.String() + "-REF"},
				ID:      v.Definition,
			}},
		}

		switch v.Kind {
		case KindXHTML:
			x.XHTML = &xmlXHTML{Inner: v.Value}
		case KindEnumeration:
			x.EnumRefs = &xmlEnumRefs{Items: v.EnumValues}
		case KindString, KindInteger, KindReal, KindBoolean, KindDate:
			x.TheValue = v.Value
		}

		out.Items = append(out.Items, x)
	}

	return out, nil
}

func encodeChildren(children []*SpecHierarchy) *xmlChildren {
	if len(children) == 0 {
		return nil
	}

	out := &xmlChildren{Items: make([]xmlHierarchy, 0, len(children))}
	for _, h := range children {
		out.Items = append(out.Items, xmlHierarchy{
			Identifier: h.Identifier,
			LastChange: h.LastChange,
			LongName:   h.LongName,
			Object:     h.Object,
			Children:   encodeChildren(h.Children),
		})
	}

	return out
}
