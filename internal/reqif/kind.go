package reqif

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the primitive kind of a data type or attribute.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindString      // STRING
	KindInteger     // INTEGER
	KindEnumeration // ENUMERATION
	KindReal        // REAL
	KindBoolean     // BOOLEAN
	KindDate        // DATE
	KindXHTML       // XHTML
)

var kindsByName = map[string]Kind{
	KindString.String():      KindString,
	KindInteger.String():     KindInteger,
	KindEnumeration.String(): KindEnumeration,
	KindReal.String():        KindReal,
	KindBoolean.String():     KindBoolean,
	KindDate.String():        KindDate,
	KindXHTML.String():       KindXHTML,
}

// ParseKind maps a configuration name such as "ENUMERATION" to its Kind.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Kinds returns all valid kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindString, KindInteger, KindEnumeration, KindReal, KindBoolean, KindDate, KindXHTML}
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k >= KindString && k <= KindXHTML
}
