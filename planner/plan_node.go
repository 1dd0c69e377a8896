package planner

import (
	"mit.edu/dsg/relopt/catalog"
	"mit.edu/dsg/relopt/common"
	"mit.edu/dsg/relopt/trait"
)

// PlanNode is one relational operator in an optimizer plan tree.
// It is immutable: rules never modify a node, they Copy it with new children
// or traits. This lets candidate plans share subtrees without locking.
type PlanNode interface {
	// ID identifies the node within its cluster. It is meant for logs and must
	// never influence explain output.
	ID() int64

	// Cluster returns the cluster the node was created in.
	Cluster() *Cluster

	// Name returns the operator display name used by explain.
	Name() string

	// TraitSet returns the physical properties the node claims to satisfy.
	TraitSet() trait.TraitSet

	// OutputSchema returns the schema of the rows produced by this node.
	OutputSchema() catalog.RowSchema

	// Children returns the child plan nodes, empty for leaves.
	Children() []PlanNode

	// ChildExprs returns the scalar expressions the node evaluates over its
	// input, in the order explain binds them to terms.
	ChildExprs() []Expr

	// Copy returns a new node of the same kind and parameters with traits and
	// children substituted. len(children) must equal len(Children()).
	Copy(traits trait.TraitSet, children []PlanNode) (PlanNode, error)

	// Explain emits the node's terms and values to w.
	Explain(w PlanWriter)
}

// baseNode holds the state every node has.
type baseNode struct {
	id      int64
	cluster *Cluster
	traits  trait.TraitSet
}

func newBaseNode(cluster *Cluster, traits trait.TraitSet) baseNode {
	common.Assert(cluster != nil, "plan node requires a cluster")
	return baseNode{
		id:      cluster.newNodeID(),
		cluster: cluster,
		traits:  cluster.CanonizeTraitSet(traits),
	}
}

func (n *baseNode) ID() int64 {
	return n.id
}

func (n *baseNode) Cluster() *Cluster {
	return n.cluster
}

func (n *baseNode) TraitSet() trait.TraitSet {
	return n.traits
}

func (n *baseNode) ChildExprs() []Expr {
	return nil
}

// singleNode is the base of operators with exactly one child whose output
// schema is, unless overridden, the child's.
type singleNode struct {
	baseNode
	child PlanNode
}

func newSingleNode(cluster *Cluster, traits trait.TraitSet, child PlanNode) singleNode {
	common.Assert(child != nil, "single-input node requires a child")
	return singleNode{
		baseNode: newBaseNode(cluster, traits),
		child:    child,
	}
}

func (n *singleNode) Child() PlanNode {
	return n.child
}

func (n *singleNode) Children() []PlanNode {
	return []PlanNode{n.child}
}

func (n *singleNode) OutputSchema() catalog.RowSchema {
	return n.child.OutputSchema()
}

// requireArity panics with ArityMismatchError unless children has length want.
func requireArity(name string, children []PlanNode, want int) {
	common.Require(len(children) == want, common.ArityMismatchError,
		"%s expects %d children, got %d", name, want, len(children))
}

// sole returns the only element of children.
func sole(name string, children []PlanNode) PlanNode {
	requireArity(name, children, 1)
	return children[0]
}

// requireConvention panics with ContractViolationError unless traits
// comprises c.
func requireConvention(name string, traits trait.TraitSet, c trait.Convention) {
	common.Require(traits.Comprises(c), common.ContractViolationError,
		"%s requires convention %s, got trait set %s", name, c, traits)
}
