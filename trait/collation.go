package trait

import (
	"fmt"
	"strings"

	"mit.edu/dsg/relopt/common"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	}
	return "???"
}

// ParseDirection accepts "asc"/"desc" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "ASC", "ASCENDING":
		return Ascending, nil
	case "DESC", "DESCENDING":
		return Descending, nil
	}
	return Ascending, common.Error{
		Code:      common.InvalidConfigError,
		ErrString: fmt.Sprintf("unknown sort direction '%s'", s),
	}
}

// FieldCollation is one sort key: a field position and a direction.
// The field index is not validated here; the node that consumes the collation
// checks it against its input schema.
type FieldCollation struct {
	FieldIndex int
	Direction  Direction
}

func NewFieldCollation(fieldIndex int, direction Direction) FieldCollation {
	return FieldCollation{FieldIndex: fieldIndex, Direction: direction}
}

// Compare orders collations by field index, then direction.
func (c FieldCollation) Compare(other FieldCollation) int {
	switch {
	case c.FieldIndex < other.FieldIndex:
		return -1
	case c.FieldIndex > other.FieldIndex:
		return 1
	case c.Direction < other.Direction:
		return -1
	case c.Direction > other.Direction:
		return 1
	}
	return 0
}

func (c FieldCollation) String() string {
	return fmt.Sprintf("%d %s", c.FieldIndex, c.Direction)
}

// Collation is the ordering trait: a list of field collations, most
// significant first. The empty collation means no particular order.
type Collation struct {
	fields []FieldCollation
}

// EmptyCollation is the collation of an unordered stream.
var EmptyCollation = Collation{}

func NewCollation(fields ...FieldCollation) Collation {
	if len(fields) == 0 {
		return EmptyCollation
	}
	fs := make([]FieldCollation, len(fields))
	copy(fs, fields)
	return Collation{fields: fs}
}

func (c Collation) Def() TraitDef {
	return CollationDef
}

func (c Collation) Len() int {
	return len(c.fields)
}

// Fields returns a copy of the field collations.
func (c Collation) Fields() []FieldCollation {
	out := make([]FieldCollation, len(c.fields))
	copy(out, c.fields)
	return out
}

func (c Collation) Equal(other Trait) bool {
	o, ok := other.(Collation)
	if !ok || len(o.fields) != len(c.fields) {
		return false
	}
	for i := range c.fields {
		if c.fields[i] != o.fields[i] {
			return false
		}
	}
	return true
}

func (c Collation) String() string {
	parts := make([]string, len(c.fields))
	for i, f := range c.fields {
		parts[i] = f.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
