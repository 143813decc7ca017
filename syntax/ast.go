// Package syntax parses a pattern string into the intermediate
// representation consumed by package nfa.
//
// This is the "external collaborator" spec.md §1 allows any reasonable
// front-end to fill: the core only depends on the Node interface and its
// concrete kinds below.
package syntax

import "fmt"

// Node is a node in the parsed pattern tree. The kind set is closed:
// Literal, Class, Concat, Alternation, Repetition, Capture.
type Node interface {
	node()
}

// Literal matches a fixed sequence of runes in order.
type Literal struct {
	Runes []rune
}

func (Literal) node() {}

// RuneRange is an inclusive range of Unicode scalar values.
type RuneRange struct {
	Lo, Hi rune
}

// Class matches any single rune that falls in one of Ranges.
// Negated classes are expanded by the parser into their complement
// ranges before a Class node is ever constructed, so the builder always
// sees a flat union of inclusive ranges.
type Class struct {
	Ranges []RuneRange
}

func (Class) node() {}

// Concat matches Children in sequence.
type Concat struct {
	Children []Node
}

func (Concat) node() {}

// Alternation matches any one of Children.
type Alternation struct {
	Children []Node
}

func (Alternation) node() {}

// Repetition matches Sub between Min and Max times, inclusive.
// Max == -1 means unbounded (Kleene-style).
type Repetition struct {
	Sub Node
	Min int
	Max int
}

func (Repetition) node() {}

// Capture wraps Sub in capture group Index. Name is "" for an unnamed
// (purely numbered) group.
type Capture struct {
	Sub   Node
	Index uint32
	Name  string
}

func (Capture) node() {}

// String renders a compact, parenthesised form of the tree. Used only
// for debugging; never consulted by the builder or simulator.
func String(n Node) string {
	switch v := n.(type) {
	case Literal:
		return fmt.Sprintf("Lit(%q)", string(v.Runes))
	case Class:
		return fmt.Sprintf("Class(%v)", v.Ranges)
	case Concat:
		s := "Concat("
		for i, c := range v.Children {
			if i > 0 {
				s += ", "
			}
			s += String(c)
		}
		return s + ")"
	case Alternation:
		s := "Alt("
		for i, c := range v.Children {
			if i > 0 {
				s += "|"
			}
			s += String(c)
		}
		return s + ")"
	case Repetition:
		max := fmt.Sprintf("%d", v.Max)
		if v.Max == -1 {
			max = "inf"
		}
		return fmt.Sprintf("Rep{%d,%s}(%s)", v.Min, max, String(v.Sub))
	case Capture:
		if v.Name != "" {
			return fmt.Sprintf("Cap<%s>(%s)", v.Name, String(v.Sub))
		}
		return fmt.Sprintf("Cap%d(%s)", v.Index, String(v.Sub))
	default:
		return "?"
	}
}
