package compiler

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/remexlang/remex/internal/asm"
	"github.com/remexlang/remex/internal/parser"
)

// repeatOperator recognizes the numeric repetition operator names:
// "2-5" for a bounded range and "3+" for an unbounded minimum.
var repeatOperator = regexp.MustCompile(`^(?:(\d+)-(\d+)|(\d+)\+)$`)

type operatorFunc func(asm.Expr) (asm.Expr, error)

var builtinOperators = map[string]operatorFunc{
	"capture": func(sub asm.Expr) (asm.Expr, error) {
		return asm.Capture{Sub: sub}, nil
	},
	"not": invert,
}

func compileOperator(op parser.Operator, scope *env) (asm.Expr, error) {
	sub, err := compile(op.Subregex, scope)
	if err != nil {
		return nil, err
	}
	if m := repeatOperator.FindStringSubmatch(op.Name); m != nil {
		if m[3] != "" {
			min, _ := strconv.Atoi(m[3])
			return asm.Multiple{Min: min, Max: asm.Unbounded, Greedy: true, Sub: sub}, nil
		}
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return asm.Multiple{Min: min, Max: max, Greedy: true, Sub: sub}, nil
	}
	fn, ok := builtinOperators[op.Name]
	if !ok {
		return nil, errorf(ErrOperator, "operator %s does not exist", op.Name)
	}
	return fn(sub)
}

// invert computes the complement of an expression. A one-character
// literal becomes an inverted character class; any other expression
// must provide its own inverse.
func invert(expr asm.Expr) (asm.Expr, error) {
	if lit, ok := expr.(asm.Literal); ok && utf8.RuneCountInString(lit.String) == 1 {
		r, _ := utf8.DecodeRuneInString(lit.String)
		return asm.CharacterClass{Items: []asm.ClassItem{{Lo: r, Hi: r}}, Inverted: true}, nil
	}
	if inv, ok := expr.(asm.Inverter); ok {
		if inverted, ok := inv.Invert(); ok {
			return inverted, nil
		}
	}
	return nil, errorf(ErrInversion, "expression %s cannot be inverted", asm.Assemble(expr))
}
