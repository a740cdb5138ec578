// Package parser turns remex pattern source into its syntax tree.
package parser

// Node is a node of the pattern syntax tree. The set of
// implementations is closed.
type Node interface {
	node()
}

// Literal is exact text to match.
type Literal struct {
	String string
}

// Concat is sequential composition. Def nodes may appear among its
// items; they bind for the remainder of this Concat only.
type Concat struct {
	Items []Node
}

// Either is alternation.
type Either struct {
	Items []Node
}

// Def binds Name to Subregex. It is legal only as a direct item of a
// Concat.
type Def struct {
	Name     string
	Subregex Node
}

// Operator applies the named transformation to Subregex.
type Operator struct {
	Name     string
	Subregex Node
}

// Macro references a builtin or locally defined macro by name.
type Macro struct {
	Name string
}

// Range is an inclusive character range.
type Range struct {
	Start rune
	End   rune
}

// Nothing is the empty pattern.
type Nothing struct{}

func (Literal) node()  {}
func (Concat) node()   {}
func (Either) node()   {}
func (Def) node()      {}
func (Operator) node() {}
func (Macro) node()    {}
func (Range) node()    {}
func (Nothing) node()  {}
