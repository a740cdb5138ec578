package asm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Flavor selects the regular-expression dialect the assembler targets.
type Flavor int

const (
	// FlavorPython renders Python-style spellings (\Z, {,m}).
	FlavorPython Flavor = iota
	// FlavorGo renders the spellings Go's regexp package accepts
	// (\z instead of \Z, {0,m} instead of {,m}). Everything else the
	// assembler emits is common to both dialects.
	FlavorGo
)

// Assemble renders an expression into Python-flavored
// regular-expression text. It is total over well-formed expressions;
// malformed input (such as a Multiple with Min > Max) is a programming
// error, not a runtime error to recover from.
func Assemble(e Expr) string {
	return AssembleFlavor(e, FlavorPython)
}

// AssembleGo renders an expression into regular-expression text
// accepted by Go's regexp package.
func AssembleGo(e Expr) string {
	return AssembleFlavor(e, FlavorGo)
}

// AssembleFlavor renders an expression into the given dialect.
func AssembleFlavor(e Expr, f Flavor) string {
	a := &assembler{flavor: f}
	a.assemble(e)
	return a.b.String()
}

type assembler struct {
	b      strings.Builder
	flavor Flavor
}

func (a *assembler) assemble(e Expr) {
	switch v := e.(type) {
	case Literal:
		a.b.WriteString(escapeString(v.String))
	case Concat:
		for _, item := range v.Items {
			// Alternation binds looser than concatenation.
			if _, ok := item.(Either); ok {
				a.b.WriteString("(?:")
				a.assemble(item)
				a.b.WriteByte(')')
				continue
			}
			a.assemble(item)
		}
	case Either:
		for i, item := range v.Items {
			if i > 0 {
				a.b.WriteByte('|')
			}
			a.assemble(item)
		}
	case Multiple:
		a.assembleMultiple(v)
	case CharacterClass:
		a.assembleClass(v)
	case Capture:
		if v.Name == "" {
			a.b.WriteByte('(')
		} else {
			fmt.Fprintf(&a.b, "(?P<%s>", v.Name)
		}
		a.assemble(v.Sub)
		a.b.WriteByte(')')
	case Setting:
		fmt.Fprintf(&a.b, "(?%s)", v.Flags)
		a.assemble(v.Sub)
	case Boundary:
		a.b.WriteString(a.boundary(v.Text))
	default:
		panic(fmt.Sprintf("asm: unknown expression %T", e))
	}
}

// boundary maps anchor tokens whose spelling differs between dialects.
func (a *assembler) boundary(text string) string {
	if a.flavor == FlavorGo && text == `\Z` {
		return `\z`
	}
	return text
}

func (a *assembler) assembleMultiple(m Multiple) {
	// An inline flag marker is only legal at the start of a pattern,
	// so a Setting hoists out of the quantified group.
	if s, ok := m.Sub.(Setting); ok {
		a.assemble(Setting{Flags: s.Flags, Sub: Multiple{Min: m.Min, Max: m.Max, Greedy: m.Greedy, Sub: s.Sub}})
		return
	}
	sub := AssembleFlavor(m.Sub, a.flavor)
	if atomic(m.Sub, sub) {
		a.b.WriteString(sub)
	} else {
		a.b.WriteString("(?:")
		a.b.WriteString(sub)
		a.b.WriteByte(')')
	}
	a.b.WriteString(a.quantifier(m.Min, m.Max))
	if !m.Greedy {
		a.b.WriteByte('?')
	}
}

// atomic reports whether the rendered subexpression can take a
// quantifier without a non-capturing group around it.
func atomic(e Expr, rendered string) bool {
	switch v := e.(type) {
	case Literal:
		return utf8.RuneCountInString(v.String) == 1
	case CharacterClass, Capture, Boundary:
		return true
	}
	return utf8.RuneCountInString(rendered) == 1
}

func (a *assembler) quantifier(min, max int) string {
	switch {
	case min == 0 && max == 1:
		return "?"
	case min == 0 && max == Unbounded:
		return "*"
	case min == 1 && max == Unbounded:
		return "+"
	case max == Unbounded:
		return fmt.Sprintf("{%d,}", min)
	case min == max:
		return fmt.Sprintf("{%d}", max)
	case min == 0:
		// Go's regexp parses {,m} as a literal, not a quantifier.
		if a.flavor == FlavorGo {
			return fmt.Sprintf("{0,%d}", max)
		}
		return fmt.Sprintf("{,%d}", max)
	default:
		return fmt.Sprintf("{%d,%d}", min, max)
	}
}

func (a *assembler) assembleClass(c CharacterClass) {
	// A lone atom or character needs no brackets.
	if len(c.Items) == 1 && !c.Inverted {
		item := c.Items[0]
		if item.Atom != "" {
			a.b.WriteString(item.Atom)
			return
		}
		if item.Lo == item.Hi {
			a.b.WriteString(escapeChar(item.Lo))
			return
		}
	}
	a.b.WriteByte('[')
	if c.Inverted {
		a.b.WriteByte('^')
	}
	for _, item := range c.Items {
		switch {
		case item.Atom != "":
			a.b.WriteString(item.Atom)
		case item.Lo == item.Hi:
			a.b.WriteString(escapeClassChar(item.Lo))
		default:
			a.b.WriteString(escapeClassChar(item.Lo))
			a.b.WriteByte('-')
			a.b.WriteString(escapeClassChar(item.Hi))
		}
	}
	a.b.WriteByte(']')
}

// escapeString escapes every regex metacharacter and spells control
// characters with their escape sequences.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(escapeChar(r))
	}
	return b.String()
}

func escapeChar(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	return regexp.QuoteMeta(string(r))
}

// escapeClassChar escapes characters that are special inside a bracket
// expression.
func escapeClassChar(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\\', ']', '^', '-', '[':
		return `\` + string(r)
	}
	return string(r)
}
