package planner

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.uber.org/atomic"

	"mit.edu/dsg/relopt/trait"
)

// Cluster is the environment shared by every node of one optimization: the
// expression builder, the canonical trait sets and the node ID counter.
// A Cluster is safe for concurrent use.
type Cluster struct {
	logger      log.Logger
	exprBuilder *ExprBuilder
	traitSets   *trait.Cache
	nextID      atomic.Int64
}

// NewCluster creates a cluster. A nil logger discards all output.
func NewCluster(logger log.Logger) *Cluster {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Cluster{
		logger:      logger,
		exprBuilder: NewExprBuilder(),
		traitSets:   trait.NewCache(),
	}
}

func (c *Cluster) Logger() log.Logger {
	return c.logger
}

func (c *Cluster) ExprBuilder() *ExprBuilder {
	return c.exprBuilder
}

// TraitSetOf returns the canonical trait set built from traits.
func (c *Cluster) TraitSetOf(traits ...trait.Trait) trait.TraitSet {
	return c.traitSets.Of(traits...)
}

// CanonizeTraitSet returns the canonical instance of ts.
func (c *Cluster) CanonizeTraitSet(ts trait.TraitSet) trait.TraitSet {
	return c.traitSets.Canonize(ts)
}

// newNodeID hands out IDs starting at 1. IDs identify nodes in logs only.
func (c *Cluster) newNodeID() int64 {
	return c.nextID.Inc()
}

func (c *Cluster) logNodeCreated(n PlanNode) {
	level.Debug(c.logger).Log("msg", "created plan node", "id", n.ID(), "node", n.Name(), "traits", n.TraitSet())
}
