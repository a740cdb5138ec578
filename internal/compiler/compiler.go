// Package compiler walks the pattern syntax tree, resolves and scopes
// macros, applies operators, validates character ranges and emits the
// assembly representation rendered by package asm.
package compiler

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/remexlang/remex/internal/asm"
	"github.com/remexlang/remex/internal/parser"
)

// env is a layered macro environment. Each concatenation pushes a
// layer for its definitions; the layer is discarded when the
// concatenation finishes compiling, so a binding is visible only
// inside it.
type env struct {
	parent *env
	vars   map[string]asm.Expr
}

func (e *env) lookup(name string) (asm.Expr, bool) {
	for s := e; s != nil; s = s.parent {
		if expr, ok := s.vars[name]; ok {
			return expr, true
		}
	}
	return nil, false
}

func (e *env) push() *env {
	return &env{parent: e, vars: map[string]asm.Expr{}}
}

// bind adds a binding to the top layer. Shadowing an existing binding,
// builtins included, is an error rather than a silent override.
func (e *env) bind(name string, expr asm.Expr) error {
	if _, ok := e.lookup(name); ok {
		return errorf(ErrScope, "macro %s already defined", name)
	}
	e.vars[name] = expr
	return nil
}

// Compile compiles a pattern syntax tree into its assembly
// representation. The program is always compiled with multiline
// anchors and dot-matches-newline enabled, so that both #any (.) and
// #not_linefeed, and both #start_string (\A) and #start_line (^),
// behave as documented.
func Compile(node parser.Node) (asm.Expr, error) {
	compiled, err := compile(node, &env{vars: builtins()})
	if err != nil {
		return nil, err
	}
	return asm.Setting{Flags: "ms", Sub: compiled}, nil
}

func compile(node parser.Node, scope *env) (asm.Expr, error) {
	switch n := node.(type) {
	case parser.Literal:
		return asm.Literal{String: n.String}, nil
	case parser.Nothing:
		return asm.Empty, nil
	case parser.Concat:
		return compileConcat(n, scope)
	case parser.Either:
		return compileEither(n, scope)
	case parser.Def:
		// TODO: hoist Defs out of Either and Operator subtrees so they
		// can be written anywhere with sane semantics.
		return nil, errorf(ErrPlacement, "macro definition %s is only allowed directly under a concatenation", n.Name)
	case parser.Operator:
		return compileOperator(n, scope)
	case parser.Macro:
		expr, ok := scope.lookup(n.Name)
		if !ok {
			return nil, errorf(ErrScope, "macro %s does not exist, perhaps you defined it in the wrong scope?", n.Name)
		}
		return expr, nil
	case parser.Range:
		return compileRange(n)
	default:
		panic(fmt.Sprintf("compiler: unknown node %T", node))
	}
}

// compileConcat binds the concatenation's definitions first (each
// compiled under the environment extended so far), compiles the
// remaining items in order under the extended environment, then drops
// the layer. Semantically empty results are filtered out.
func compileConcat(concat parser.Concat, scope *env) (asm.Expr, error) {
	inner := scope.push()
	for _, item := range concat.Items {
		def, ok := item.(parser.Def)
		if !ok {
			continue
		}
		expr, err := compile(def.Subregex, inner)
		if err != nil {
			return nil, err
		}
		if err := inner.bind(def.Name, expr); err != nil {
			return nil, err
		}
	}

	var compiled []asm.Expr
	for _, item := range concat.Items {
		if _, ok := item.(parser.Def); ok {
			continue
		}
		expr, err := compile(item, inner)
		if err != nil {
			return nil, err
		}
		if asm.IsEmpty(expr) {
			continue
		}
		// Splice nested concatenations instead of nesting them.
		if sub, ok := expr.(asm.Concat); ok {
			compiled = append(compiled, sub.Items...)
			continue
		}
		compiled = append(compiled, expr)
	}

	switch len(compiled) {
	case 0:
		return asm.Empty, nil
	case 1:
		return compiled[0], nil
	default:
		return asm.Concat{Items: compiled}, nil
	}
}

// compileEither folds an alternation whose branches are all one
// character wide into a single character class; anything else stays an
// alternation of full sub-patterns.
func compileEither(either parser.Either, scope *env) (asm.Expr, error) {
	compiled := make([]asm.Expr, 0, len(either.Items))
	for _, item := range either.Items {
		expr, err := compile(item, scope)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, expr)
	}
	for _, expr := range compiled {
		if !foldable(expr) {
			return asm.Either{Items: compiled}, nil
		}
	}
	var items []asm.ClassItem
	for _, expr := range compiled {
		switch v := expr.(type) {
		case asm.Literal:
			r, _ := utf8.DecodeRuneInString(v.String)
			items = append(items, asm.ClassItem{Lo: r, Hi: r})
		case asm.CharacterClass:
			items = append(items, v.Items...)
		}
	}
	return asm.CharacterClass{Items: items}, nil
}

// foldable reports whether a branch can be absorbed into a character
// class: a one-character literal or a non-inverted class. An inverted
// class cannot join a plain union without changing what it matches.
func foldable(e asm.Expr) bool {
	switch v := e.(type) {
	case asm.Literal:
		return utf8.RuneCountInString(v.String) == 1
	case asm.CharacterClass:
		return !v.Inverted
	}
	return false
}

func compileRange(r parser.Range) (asm.Expr, error) {
	startCat, err := category(r.Start)
	if err != nil {
		return nil, err
	}
	endCat, err := category(r.End)
	if err != nil {
		return nil, err
	}
	if startCat != endCat {
		return nil, errorf(ErrCategory, "range start and end not of the same category: %q is a %s but %q is a %s",
			r.Start, startCat, r.End, endCat)
	}
	if r.Start >= r.End {
		return nil, errorf(ErrCategory, "range start not before range end: %q >= %q", r.Start, r.End)
	}
	return asm.CharacterClass{Items: []asm.ClassItem{{Lo: r.Start, Hi: r.End}}}, nil
}

func category(r rune) (string, error) {
	switch {
	case unicode.IsLower(r):
		return "lowercase", nil
	case unicode.IsUpper(r):
		return "uppercase", nil
	case unicode.IsDigit(r):
		return "digit", nil
	}
	return "", errorf(ErrCategory, "character %q is not a lowercase letter, an uppercase letter or a digit", r)
}
