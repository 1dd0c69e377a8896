package planner

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log/level"

	"mit.edu/dsg/relopt/common"
)

// PlanWriter receives the explain stream of plan nodes.
//
// A node calls Explain once with its terms and values. Terms bind
// positionally: the first len(node.Children()) terms name the children, the
// next len(node.ChildExprs()) terms take the node's child expressions, and
// the remaining terms take values in order. A node therefore leaves the
// value of an expression term unset; the writer resolves it.
type PlanWriter interface {
	Explain(node PlanNode, terms []string, values []any)
}

// TermKind tells what a bound term refers to.
type TermKind int

const (
	ChildTerm TermKind = iota
	ExprTerm
	ValueTerm
)

// Term is a term name bound to its value.
type Term struct {
	Kind  TermKind
	Name  string
	Child PlanNode
	Expr  Expr
	Value any
}

func (t Term) String() string {
	switch t.Kind {
	case ChildTerm:
		return t.Child.Name()
	case ExprTerm:
		return t.Expr.String()
	}
	return fmt.Sprint(t.Value)
}

// BindTerms resolves the explain stream of node. A stream whose length does
// not match the node's children and expressions is a contract violation.
func BindTerms(node PlanNode, terms []string, values []any) []Term {
	children := node.Children()
	exprs := node.ChildExprs()
	common.Require(len(terms) == len(children)+len(exprs)+len(values), common.ContractViolationError,
		"%s explained %d terms for %d children, %d expressions and %d values",
		node.Name(), len(terms), len(children), len(exprs), len(values))

	bound := make([]Term, len(terms))
	i := 0
	for _, c := range children {
		bound[i] = Term{Kind: ChildTerm, Name: terms[i], Child: c}
		i++
	}
	for _, e := range exprs {
		bound[i] = Term{Kind: ExprTerm, Name: terms[i], Expr: e}
		i++
	}
	for _, v := range values {
		bound[i] = Term{Kind: ValueTerm, Name: terms[i], Value: v}
		i++
	}
	return bound
}

func writeAttributes(sb *strings.Builder, name string, attrs []string) {
	sb.WriteString(name)
	if len(attrs) == 0 {
		return
	}
	sb.WriteString("(")
	sb.WriteString(strings.Join(attrs, ", "))
	sb.WriteString(")")
}

// TextPlanWriter renders a plan as an indented tree, one node per line with
// its children two spaces further in:
//
//	Sort(sort0=[$2], dir0=[DESC])
//	  SeqScan(table=[emp])
type TextPlanWriter struct {
	w     io.Writer
	depth int
	err   error
}

func NewTextPlanWriter(w io.Writer) *TextPlanWriter {
	return &TextPlanWriter{w: w}
}

func (pw *TextPlanWriter) Explain(node PlanNode, terms []string, values []any) {
	bound := BindTerms(node, terms, values)
	level.Debug(node.Cluster().Logger()).Log("msg", "explaining plan node", "id", node.ID(), "node", node.Name(), "depth", pw.depth)

	var attrs []string
	var children []PlanNode
	for _, t := range bound {
		if t.Kind == ChildTerm {
			children = append(children, t.Child)
			continue
		}
		attrs = append(attrs, fmt.Sprintf("%s=[%s]", t.Name, t))
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", pw.depth))
	writeAttributes(&sb, node.Name(), attrs)
	sb.WriteString("\n")
	if pw.err == nil {
		_, pw.err = io.WriteString(pw.w, sb.String())
	}

	pw.depth++
	for _, c := range children {
		c.Explain(pw)
	}
	pw.depth--
}

// Err returns the first error returned by the underlying writer.
func (pw *TextPlanWriter) Err() error {
	return pw.err
}

// ExplainString renders node and its subtree with a TextPlanWriter.
func ExplainString(node PlanNode) string {
	var sb strings.Builder
	node.Explain(NewTextPlanWriter(&sb))
	return sb.String()
}

// digestWriter renders a subtree on one line, children inlined as terms.
// Each node is written as its name followed by its trait set.
type digestWriter struct {
	sb strings.Builder
}

func (dw *digestWriter) Explain(node PlanNode, terms []string, values []any) {
	bound := BindTerms(node, terms, values)
	dw.sb.WriteString(node.Name())
	dw.sb.WriteString(".")
	dw.sb.WriteString(node.TraitSet().String())
	if len(bound) == 0 {
		return
	}
	dw.sb.WriteString("(")
	for i, t := range bound {
		if i > 0 {
			dw.sb.WriteString(", ")
		}
		dw.sb.WriteString(t.Name)
		dw.sb.WriteString("=[")
		if t.Kind == ChildTerm {
			t.Child.Explain(dw)
		} else {
			dw.sb.WriteString(t.String())
		}
		dw.sb.WriteString("]")
	}
	dw.sb.WriteString(")")
}

// Digest returns a one-line rendering of node and its subtree, traits
// included:
//
//	Sort.NONE.[](child=[SeqScan.NONE.[](table=[emp])], sort0=[$2], dir0=[DESC])
//
// Two plans with equal digests are structurally equal, so digests can be
// compared or used as map keys when deduplicating plans.
func Digest(node PlanNode) string {
	dw := &digestWriter{}
	node.Explain(dw)
	return dw.sb.String()
}

// Terms is the raw explain stream of a single node.
type Terms struct {
	Name   string
	Terms  []string
	Values []any
}

type termCapture struct {
	captured Terms
}

func (tc *termCapture) Explain(node PlanNode, terms []string, values []any) {
	tc.captured = Terms{
		Name:   node.Name(),
		Terms:  append([]string(nil), terms...),
		Values: append([]any(nil), values...),
	}
}

// CaptureTerms returns the terms and values node emits, without descending
// into its children.
func CaptureTerms(node PlanNode) Terms {
	tc := &termCapture{}
	node.Explain(tc)
	return tc.captured
}
