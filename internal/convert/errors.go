package convert

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownKind is returned for attribute types outside the closed kind set.
	ErrUnknownKind = errors.New("unknown attribute type")
	// ErrAttributeNotRegistered means a (type, key) pair was never resolved.
	ErrAttributeNotRegistered = errors.New("attribute not registered")
	// ErrTypeNotRegistered means a type name or data type id is unknown.
	ErrTypeNotRegistered = errors.New("type not registered")
	// ErrEnumValueNotFound means no enumeration value carries the label.
	ErrEnumValueNotFound = errors.New("enumeration value not found")
	// ErrMissingValue means a query that must yield a value yielded nothing.
	ErrMissingValue = errors.New("required value missing")
	// ErrDuplicateIdentifier means two records ended up with the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)
