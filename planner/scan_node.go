package planner

import (
	"mit.edu/dsg/relopt/catalog"
	"mit.edu/dsg/relopt/trait"
)

// SeqScanNode represents a logical read of every row of a catalog table.
type SeqScanNode struct {
	baseNode
	table *catalog.Table
	// schema is resolved once; Table.RowSchema builds a fresh copy per call.
	schema catalog.RowSchema
}

// NewSeqScanNode creates a scan of table. traits must comprise trait.None.
func NewSeqScanNode(cluster *Cluster, traits trait.TraitSet, table *catalog.Table) *SeqScanNode {
	requireConvention("SeqScan", traits, trait.None)
	n := &SeqScanNode{
		baseNode: newBaseNode(cluster, traits),
		table:    table,
		schema:   table.RowSchema(),
	}
	cluster.logNodeCreated(n)
	return n
}

func (n *SeqScanNode) Table() *catalog.Table {
	return n.table
}

func (n *SeqScanNode) Name() string {
	return "SeqScan"
}

func (n *SeqScanNode) OutputSchema() catalog.RowSchema {
	return n.schema
}

func (n *SeqScanNode) Children() []PlanNode {
	return nil
}

func (n *SeqScanNode) Copy(traits trait.TraitSet, children []PlanNode) (PlanNode, error) {
	requireArity(n.Name(), children, 0)
	return NewSeqScanNode(n.cluster, traits, n.table), nil
}

func (n *SeqScanNode) Explain(w PlanWriter) {
	w.Explain(n, []string{"table"}, []any{n.table.Name})
}
