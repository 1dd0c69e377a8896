package trait

// Convention is the execution-strategy trait. A node whose convention is None
// is logical: no execution strategy has been chosen for it yet.
type Convention struct {
	name string
}

var (
	// None marks a logical, convention-free node.
	None = Convention{name: "NONE"}
	// Iterator is the pull-based row-at-a-time execution strategy.
	Iterator = Convention{name: "ITERATOR"}
)

// NewConvention declares a convention for an execution engine. Conventions
// with the same name are equal.
func NewConvention(name string) Convention {
	return Convention{name: name}
}

func (c Convention) Name() string {
	return c.name
}

func (c Convention) Def() TraitDef {
	return ConventionDef
}

func (c Convention) Equal(other Trait) bool {
	o, ok := other.(Convention)
	return ok && o.name == c.name
}

func (c Convention) String() string {
	return c.name
}
