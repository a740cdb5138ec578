// Package asm defines the assembly representation emitted by the
// semantic compiler and renders it into regular-expression text.
package asm

// Expr is a node of the assembly representation. The set of
// implementations is closed; Assemble handles every kind.
type Expr interface {
	expr()
}

// Literal matches its text exactly.
type Literal struct {
	String string
}

// Concat matches its items in sequence.
type Concat struct {
	Items []Expr
}

// Either matches any one of its items.
type Either struct {
	Items []Expr
}

// Unbounded marks a Multiple with no upper repetition limit.
const Unbounded = -1

// Multiple matches Sub repeated between Min and Max times.
type Multiple struct {
	Min    int
	Max    int // Max == Unbounded means no upper limit
	Greedy bool
	Sub    Expr
}

// ClassItem is one member of a character class: a predefined atom
// such as `\d` (rendered verbatim), a single character (Hi == Lo) or
// an inclusive character range.
type ClassItem struct {
	Atom   string
	Lo, Hi rune
}

// CharacterClass matches one character from its items, or one
// character outside all of them when Inverted.
type CharacterClass struct {
	Items    []ClassItem
	Inverted bool
}

// Capture wraps Sub in a capturing group, named when Name is non-empty.
type Capture struct {
	Name string
	Sub  Expr
}

// Setting scopes inline engine flags (e.g. "ms") over Sub.
type Setting struct {
	Flags string
	Sub   Expr
}

// Boundary is a zero-width anchor or another engine token rendered
// verbatim. Inverse, when non-empty, is the token matching its
// complement.
type Boundary struct {
	Text    string
	Inverse string
}

func (Literal) expr()        {}
func (Concat) expr()         {}
func (Either) expr()         {}
func (Multiple) expr()       {}
func (CharacterClass) expr() {}
func (Capture) expr()        {}
func (Setting) expr()        {}
func (Boundary) expr()       {}

// Inverter is implemented by expressions that know their own
// complement. The second return value is false when the particular
// value has no defined inverse.
type Inverter interface {
	Invert() (Expr, bool)
}

// Invert flips the class between matching its items and matching
// everything but its items.
func (c CharacterClass) Invert() (Expr, bool) {
	return CharacterClass{Items: c.Items, Inverted: !c.Inverted}, true
}

// Invert swaps the boundary for its complementary token, if it has one.
func (b Boundary) Invert() (Expr, bool) {
	if b.Inverse == "" {
		return nil, false
	}
	return Boundary{Text: b.Inverse, Inverse: b.Text}, true
}

// Empty is the expression matching the empty string.
var Empty = Literal{}

// IsEmpty reports whether e trivially matches only the empty string:
// an empty literal or an empty concatenation.
func IsEmpty(e Expr) bool {
	switch v := e.(type) {
	case Literal:
		return v.String == ""
	case Concat:
		return len(v.Items) == 0
	}
	return false
}

// Prebuilt fragments backing the builtin macro table.
var (
	Any            = Boundary{Text: "."}
	Linefeed       = Literal{String: "\n"}
	CarriageReturn = Literal{String: "\r"}
	Tab            = Literal{String: "\t"}
	Digit          = CharacterClass{Items: []ClassItem{{Atom: `\d`}}}
	Letter         = CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'z'}, {Lo: 'A', Hi: 'Z'}}}
	Lowercase      = CharacterClass{Items: []ClassItem{{Lo: 'a', Hi: 'z'}}}
	Uppercase      = CharacterClass{Items: []ClassItem{{Lo: 'A', Hi: 'Z'}}}
	Space          = CharacterClass{Items: []ClassItem{{Atom: `\s`}}}
	TokenCharacter = CharacterClass{Items: []ClassItem{{Atom: `\w`}}}
	StartString    = Boundary{Text: `\A`}
	EndString      = Boundary{Text: `\Z`}
	StartLine      = Boundary{Text: "^"}
	EndLine        = Boundary{Text: "$"}
	WordBoundary   = Boundary{Text: `\b`, Inverse: `\B`}
)
