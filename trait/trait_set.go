package trait

import (
	"strings"

	"mit.edu/dsg/relopt/common"
)

// TraitDef is the category a trait belongs to. A trait set holds exactly one
// trait per category.
type TraitDef int

const (
	ConventionDef TraitDef = iota
	CollationDef

	numTraitDefs
)

func (d TraitDef) String() string {
	switch d {
	case ConventionDef:
		return "convention"
	case CollationDef:
		return "collation"
	}
	return "???"
}

// Default returns the trait a set carries for d when none is given.
func (d TraitDef) Default() Trait {
	switch d {
	case ConventionDef:
		return None
	case CollationDef:
		return EmptyCollation
	}
	panic("unknown trait def")
}

// Trait is one physical property a node claims to satisfy.
type Trait interface {
	Def() TraitDef
	Equal(other Trait) bool
	String() string
}

// TraitSet is an immutable set of traits, one per TraitDef, held in TraitDef
// order. The only way to change membership is to build a new set.
type TraitSet struct {
	traits [numTraitDefs]Trait
	digest string
}

// NewTraitSet builds a set from the default trait of every category,
// overridden by traits. Passing a nil trait or two traits of the same category
// is a contract violation.
func NewTraitSet(traits ...Trait) TraitSet {
	var ts TraitSet
	for i, t := range traits {
		common.Require(t != nil, common.ContractViolationError, "trait %d is nil", i)
		d := t.Def()
		common.Require(ts.traits[d] == nil, common.ContractViolationError,
			"trait set already has %s trait %s, cannot add %s", d, ts.traits[d], t)
		ts.traits[d] = t
	}
	for d := TraitDef(0); d < numTraitDefs; d++ {
		if ts.traits[d] == nil {
			ts.traits[d] = d.Default()
		}
	}
	ts.digest = ts.computeDigest()
	return ts
}

// DefaultTraitSet is the trait set of a logical, unordered node.
func DefaultTraitSet() TraitSet {
	return NewTraitSet()
}

func (ts TraitSet) computeDigest() string {
	parts := make([]string, numTraitDefs)
	for d, t := range ts.traits {
		parts[d] = t.String()
	}
	return strings.Join(parts, ".")
}

// Comprises reports whether the set contains a trait equal to t.
func (ts TraitSet) Comprises(t Trait) bool {
	held := ts.Get(t.Def())
	return held != nil && held.Equal(t)
}

// Get returns the trait held for d, or nil for a zero TraitSet.
func (ts TraitSet) Get(d TraitDef) Trait {
	common.Assert(d >= 0 && d < numTraitDefs, "unknown trait def %d", d)
	return ts.traits[d]
}

// Convention returns the convention trait of the set.
func (ts TraitSet) Convention() Convention {
	c, _ := ts.Get(ConventionDef).(Convention)
	return c
}

// Collation returns the collation trait of the set.
func (ts TraitSet) Collation() Collation {
	c, _ := ts.Get(CollationDef).(Collation)
	return c
}

// Replace returns a new set with t in place of the trait of the same category.
func (ts TraitSet) Replace(t Trait) TraitSet {
	out := make([]Trait, 0, numTraitDefs)
	for d := TraitDef(0); d < numTraitDefs; d++ {
		if d == t.Def() {
			out = append(out, t)
		} else if held := ts.traits[d]; held != nil {
			out = append(out, held)
		}
	}
	return NewTraitSet(out...)
}

// Traits returns the traits in TraitDef order.
func (ts TraitSet) Traits() []Trait {
	out := make([]Trait, 0, numTraitDefs)
	for _, t := range ts.traits {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (ts TraitSet) Len() int {
	return len(ts.Traits())
}

func (ts TraitSet) Equal(other TraitSet) bool {
	return ts.digest == other.digest
}

func (ts TraitSet) String() string {
	return ts.digest
}
