package planner

import (
	"fmt"

	"mit.edu/dsg/relopt/catalog"
	"mit.edu/dsg/relopt/common"
)

// Expr represents a node in a scalar expression tree.
// Expressions are immutable; plan nodes hold them as symbolic handles for
// explain output and for later cost and execution stages.
type Expr interface {
	// OutputType returns the type of value this expression produces.
	OutputType() common.Type

	// Equal reports structural equality.
	Equal(other Expr) bool

	// String returns a string representation of the expression.
	String() string
}

// InputRef denotes the value of one field of the input row.
type InputRef struct {
	index      int
	outputType common.Type
}

func (e *InputRef) Index() int {
	return e.index
}

func (e *InputRef) OutputType() common.Type {
	return e.outputType
}

func (e *InputRef) Equal(other Expr) bool {
	o, ok := other.(*InputRef)
	return ok && o.index == e.index && o.outputType == e.outputType
}

func (e *InputRef) String() string {
	return fmt.Sprintf("$%d", e.index)
}

// ExprBuilder constructs scalar expressions for the nodes of a Cluster.
type ExprBuilder struct{}

func NewExprBuilder() *ExprBuilder {
	return &ExprBuilder{}
}

// MakeInputRef creates a reference to field index of type t. It does not
// check the index against any schema.
func (b *ExprBuilder) MakeInputRef(t common.Type, index int) *InputRef {
	common.Assert(index >= 0, "negative input reference %d", index)
	return &InputRef{index: index, outputType: t}
}

// MakeFieldRef creates a reference to field index of schema, taking the type
// from the schema. It returns FieldIndexOutOfRangeError if the schema has no
// such field.
func (b *ExprBuilder) MakeFieldRef(schema catalog.RowSchema, index int) (*InputRef, error) {
	if !schema.Contains(index) {
		return nil, common.Error{
			Code:      common.FieldIndexOutOfRangeError,
			ErrString: fmt.Sprintf("field %d not in schema %s", index, schema),
		}
	}
	return b.MakeInputRef(schema.Field(index).Type, index), nil
}
