package catalog

import (
	"strings"

	"mit.edu/dsg/relopt/common"
)

// Column represents the basic unit of a row schema.
type Column struct {
	Name string
	Type common.Type
}

func (c Column) String() string {
	return c.Name + " " + c.Type.String()
}

// RowSchema is the ordered list of typed fields produced by a plan node.
// Fields are identified by position. A RowSchema is immutable once built, so
// it can be shared freely between nodes and goroutines.
type RowSchema struct {
	fields []Column
}

// NewRowSchema builds a schema over a private copy of columns.
func NewRowSchema(columns ...Column) RowSchema {
	fields := make([]Column, len(columns))
	copy(fields, columns)
	return RowSchema{fields: fields}
}

func (s RowSchema) FieldCount() int {
	return len(s.fields)
}

// Contains reports whether i is a valid field position.
func (s RowSchema) Contains(i int) bool {
	return i >= 0 && i < len(s.fields)
}

// Field returns the column at position i. The position must be valid.
func (s RowSchema) Field(i int) Column {
	common.Assert(s.Contains(i), "field %d out of range for schema %s", i, s)
	return s.fields[i]
}

// Fields returns a copy of the columns.
func (s RowSchema) Fields() []Column {
	out := make([]Column, len(s.fields))
	copy(out, s.fields)
	return out
}

// Types returns the column types in field order.
func (s RowSchema) Types() []common.Type {
	out := make([]common.Type, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Type
	}
	return out
}

func (s RowSchema) Equal(other RowSchema) bool {
	if len(s.fields) != len(other.fields) {
		return false
	}
	for i := range s.fields {
		if s.fields[i] != other.fields[i] {
			return false
		}
	}
	return true
}

func (s RowSchema) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
