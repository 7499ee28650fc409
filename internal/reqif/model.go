package reqif

// DataType is a DATATYPE-DEFINITION-* record.
type DataType struct {
	Identifier string
	LongName   string
	LastChange string
	Kind       Kind

	// MaxLength bounds STRING values.
	MaxLength string
	// Min and Max bound INTEGER and REAL values.
	Min string
	Max string
	// Accuracy is the number of decimals of a REAL value.
	Accuracy string
	// Values are the allowed ENUMERATION values, in configured order.
	Values []*EnumValue
}

// EnumValue is one ENUM-VALUE of an enumeration data type.
type EnumValue struct {
	Identifier   string
	LastChange   string
	Key          string
	LongName     string
	OtherContent string
}

// FindValue returns the first enum value whose label equals label.
func (d *DataType) FindValue(label string) (*EnumValue, bool) {
	for _, v := range d.Values {
		if v.LongName == label {
			return v, true
		}
	}

	return nil, false
}

// AttributeDefinition is an ATTRIBUTE-DEFINITION-* record of a spec type.
type AttributeDefinition struct {
	Identifier string
	LongName   string
	LastChange string
	Kind       Kind
	// DataType is the identifier of the referenced DataType.
	DataType string
	// MultiValued is only set for enumerations.
	MultiValued *bool
}

// TypeCategory distinguishes the spec type records.
type TypeCategory int

const (
	CategorySpecification TypeCategory = iota + 1
	CategorySpecObject
)

// SpecType is a SPECIFICATION-TYPE or SPEC-OBJECT-TYPE record.
type SpecType struct {
	Identifier string
	LongName   string
	LastChange string
	Category   TypeCategory
	Attributes []*AttributeDefinition
}

// AttributeValue is an ATTRIBUTE-VALUE-* record.
type AttributeValue struct {
	Kind Kind
	// Definition is the identifier of the AttributeDefinition.
	Definition string
	// Value holds the literal value for every kind except ENUMERATION.
	// For XHTML it is the rendered, namespaced fragment.
	Value string
	// EnumValues holds ENUM-VALUE identifiers for ENUMERATION.
	EnumValues []string
}

// SpecObject is a requirement record.
type SpecObject struct {
	Identifier  string
	Description string
	LastChange  string
	// Type is the identifier of the SpecType (CategorySpecObject).
	Type   string
	Values []*AttributeValue
}

// SpecHierarchy places one SpecObject in a specification tree.
type SpecHierarchy struct {
	Identifier string
	LongName   string
	LastChange string
	// Object is the identifier of the SpecObject.
	Object   string
	Level    int
	Children []*SpecHierarchy
}

// Walk calls fn for h and every descendant, depth-first pre-order.
func (h *SpecHierarchy) Walk(fn func(*SpecHierarchy)) {
	fn(h)

	for _, c := range h.Children {
		c.Walk(fn)
	}
}

// Specification is a SPECIFICATION record.
type Specification struct {
	Identifier string
	LongName   string
	LastChange string
	// Type is the identifier of the SpecType (CategorySpecification).
	Type     string
	Values   []*AttributeValue
	Children []*SpecHierarchy
}

// Header is the REQ-IF-HEADER record.
type Header struct {
	Identifier   string
	CreationTime string
	RepositoryID string
	ReqIFToolID  string
	ReqIFVersion string
	SourceToolID string
	Title        string
}

// Bundle is the complete record set of one conversion.
type Bundle struct {
	Header         *Header
	DataTypes      []*DataType
	SpecTypes      []*SpecType
	SpecObjects    []*SpecObject
	Specifications []*Specification
}

// Assembler serializes a bundle into a document.
type Assembler interface {
	Assemble(b *Bundle) ([]byte, error)
}
