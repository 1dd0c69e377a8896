package common

import "fmt"

// Type is the scalar type of a field or expression.
type Type int8

const (
	// For uninitialized fields
	DefaultType Type = iota
	IntType
	StringType
	BoolType
	FloatType
)

func (t Type) String() string {
	switch t {
	case IntType:
		return "int"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case FloatType:
		return "float"
	}
	return "unknown"
}

// ParseType maps the textual name of a type, as printed by String, back to the Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "int":
		return IntType, nil
	case "string":
		return StringType, nil
	case "bool":
		return BoolType, nil
	case "float":
		return FloatType, nil
	}
	return DefaultType, Error{
		Code:      InvalidConfigError,
		ErrString: fmt.Sprintf("unknown type '%s'", s),
	}
}

// ObjectID is a unique identifier for a table in the catalog.
type ObjectID uint32

const InvalidObjectID ObjectID = 0
