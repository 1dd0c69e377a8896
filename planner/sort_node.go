package planner

import (
	"fmt"

	"github.com/pkg/errors"

	"mit.edu/dsg/relopt/common"
	"mit.edu/dsg/relopt/trait"
)

// SortNode imposes an ordering on its input rows without otherwise changing
// their content. It is a logical operator: its trait set always comprises
// trait.None.
type SortNode struct {
	singleNode
	// collations runs from most to least significant key.
	collations []trait.FieldCollation
	// keyExprs[i] references the field of collations[i] in the child's schema.
	keyExprs []Expr
}

// NewSortNode creates a sort of child on collations.
//
// Handing it a trait set without trait.None is a contract violation and
// panics. A collation naming a field the child does not produce returns a
// FieldIndexOutOfRangeError. Collations are kept as given, in order and
// with any duplicates.
func NewSortNode(cluster *Cluster, traits trait.TraitSet, child PlanNode, collations []trait.FieldCollation) (*SortNode, error) {
	requireConvention("Sort", traits, trait.None)
	common.Assert(cluster != nil, "Sort requires a cluster")
	common.Assert(child != nil, "Sort requires a child")

	schema := child.OutputSchema()
	keyExprs := make([]Expr, len(collations))
	for i, c := range collations {
		ref, err := cluster.ExprBuilder().MakeFieldRef(schema, c.FieldIndex)
		if err != nil {
			return nil, errors.Wrapf(err, "sort key %d", i)
		}
		keyExprs[i] = ref
	}

	cs := make([]trait.FieldCollation, len(collations))
	copy(cs, collations)
	n := &SortNode{
		singleNode: newSingleNode(cluster, traits, child),
		collations: cs,
		keyExprs:   keyExprs,
	}
	cluster.logNodeCreated(n)
	return n, nil
}

func (n *SortNode) Name() string {
	return "Sort"
}

// Collations returns a copy of the sort keys, most significant first.
func (n *SortNode) Collations() []trait.FieldCollation {
	out := make([]trait.FieldCollation, len(n.collations))
	copy(out, n.collations)
	return out
}

// KeyExprs returns a copy of the input references of the sort keys.
func (n *SortNode) KeyExprs() []Expr {
	out := make([]Expr, len(n.keyExprs))
	copy(out, n.keyExprs)
	return out
}

func (n *SortNode) ChildExprs() []Expr {
	return n.KeyExprs()
}

// Copy returns a sort of the single new child under traits, on the same
// collations. Key expressions are rebuilt against the new child, so a child
// with a narrower schema makes Copy fail with FieldIndexOutOfRangeError.
func (n *SortNode) Copy(traits trait.TraitSet, children []PlanNode) (PlanNode, error) {
	child := sole(n.Name(), children)
	requireConvention(n.Name(), traits, trait.None)
	return NewSortNode(n.cluster, traits, child, n.collations)
}

// Explain emits "child", then "sort0".."sortN-1" bound to the key
// expressions, then "dir0".."dirN-1" with the directions as values.
func (n *SortNode) Explain(w PlanWriter) {
	terms := make([]string, 0, 1+2*len(n.collations))
	values := make([]any, 0, len(n.collations))
	terms = append(terms, "child")
	for i := range n.collations {
		terms = append(terms, fmt.Sprintf("sort%d", i))
	}
	for i, c := range n.collations {
		terms = append(terms, fmt.Sprintf("dir%d", i))
		values = append(values, c.Direction)
	}
	w.Explain(n, terms, values)
}
