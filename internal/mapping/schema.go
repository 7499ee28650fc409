package mapping

import "strings"

const (
	// DefaultNameAttribute is the specification attribute holding its display name.
	DefaultNameAttribute = "ReqIF_Name"
	// DefaultChildrenField is the node field used to classify leaves.
	DefaultChildrenField = "children"
	// DefaultCaptionField is the node field used as object description.
	DefaultCaptionField = "Caption"
	// DefaultCaption is used when a node has no caption.
	DefaultCaption = "..Empty.."
)

// MappingConfig is the unified mapping configuration, independent of the
// dialect it was written in. It is read-only once loaded.
type MappingConfig struct {
	// Version of the mapping schema. Empty means unversioned.
	Version string

	// Dialect the configuration was decoded from.
	Dialect Dialect

	Header        Header
	Specification SpecificationMapping
	Requirements  RequirementsMapping
}

// Header carries tool and repository metadata for the document header.
type Header struct {
	Tool        string `yaml:"tool"`
	ToolVersion string `yaml:"toolVersion"`
	Repository  string `yaml:"repository"`
}

// SourceToolID returns "tool version", trimmed when either part is missing.
func (h Header) SourceToolID() string {
	return strings.TrimSpace(h.Tool + " " + h.ToolVersion)
}

// SpecificationMapping locates specification nodes and describes their attributes.
type SpecificationMapping struct {
	// Type is the specification type name.
	Type string
	// ID is evaluated against a specification node; the first result is its identifier.
	ID Query
	// Selector locates specification nodes in the document.
	Selector Query
	// NameAttribute is the attribute key whose selector yields the display name.
	NameAttribute string
	// Attributes in declaration order.
	Attributes Attributes
}

// RequirementsMapping locates requirement nodes and their variants.
type RequirementsMapping struct {
	// Selector locates requirement containers relative to a parent node
	// (the document for roots, a requirement node for children).
	Selector Query
	// Variants are tried in order against every container.
	Variants []VariantMapping
	// ChildrenField is checked to classify a node as leaf.
	ChildrenField string
	// CaptionField supplies the object description.
	CaptionField string
}

// VariantMapping is one shape of requirement node.
type VariantMapping struct {
	// Type names the generated object type.
	Type string
	// Match selects the nodes of this variant from a container.
	Match Query
	// Attributes in declaration order.
	Attributes Attributes
}

// AttributeMapping describes how one output attribute is derived and typed.
type AttributeMapping struct {
	// AttributeType is one of STRING, INTEGER, ENUMERATION, REAL, BOOLEAN, DATE, XHTML.
	AttributeType string `yaml:"attributeType"`
	// SubType discriminates data types of the same kind.
	SubType string `yaml:"type"`
	// LongName is the attribute definition's display name.
	LongName string `yaml:"longName"`

	// Selector wins over Literal when both are set.
	Selector Query  `yaml:"selector"`
	Literal  string `yaml:"literal"`

	MaxLength Scalar             `yaml:"maxLength"`
	Min       Scalar             `yaml:"min"`
	Max       Scalar             `yaml:"max"`
	Accuracy  Scalar             `yaml:"accuracy"`
	Values    []EnumValueMapping `yaml:"values"`
}

// HasSelector reports whether the attribute is derived by query.
func (a *AttributeMapping) HasSelector() bool {
	return a.Selector != ""
}

// EnumValueMapping is one allowed enumeration value.
type EnumValueMapping struct {
	Key     Scalar `yaml:"key"`
	Value   string `yaml:"value"`
	Content string `yaml:"content"`
}

// Attribute is a keyed attribute mapping. Mapping is nil for entries
// declared without a body; those are skipped.
type Attribute struct {
	Key     string
	Mapping *AttributeMapping
}

// Attributes is an ordered attribute list.
type Attributes []Attribute

// Get returns the mapping declared for key.
func (a Attributes) Get(key string) (*AttributeMapping, bool) {
	for _, attr := range a {
		if attr.Key == key && attr.Mapping != nil {
			return attr.Mapping, true
		}
	}

	return nil, false
}

// Query is a path query string.
type Query string

// String returns the query text.
func (q Query) String() string {
	return string(q)
}

// Scalar is a YAML scalar kept as its literal text, so both `maxLength: 15`
// and `maxLength: "15"` decode to "15".
type Scalar string

// String returns the literal text.
func (s Scalar) String() string {
	return string(s)
}
