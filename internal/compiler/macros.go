package compiler

import (
	"strings"
	"sync"

	"github.com/remexlang/remex/internal/asm"
	"github.com/remexlang/remex/internal/parser"
)

// The builtin macro table is built once and never mutated afterwards,
// so concurrent compiles read it without locking.
var (
	builtinOnce  sync.Once
	builtinTable map[string]asm.Expr
)

func builtins() map[string]asm.Expr {
	builtinOnce.Do(func() { builtinTable = buildBuiltins() })
	return builtinTable
}

func buildBuiltins() map[string]asm.Expr {
	macros := map[string]asm.Expr{
		"#any":             asm.Any,
		"#linefeed":        asm.Linefeed,
		"#carriage_return": asm.CarriageReturn,
		"#windows_newline": asm.Literal{String: "\r\n"},
		"#tab":             asm.Tab,
		"#digit":           asm.Digit,
		"#letter":          asm.Letter,
		"#lowercase":       asm.Lowercase,
		"#uppercase":       asm.Uppercase,
		"#space":           asm.Space,
		"#token_character": asm.TokenCharacter,
		"#start_string":    asm.StartString,
		"#end_string":      asm.EndString,
		"#start_line":      asm.StartLine,
		"#end_line":        asm.EndLine,
		"#word_boundary":   asm.WordBoundary,

		"#quote":        asm.Literal{String: "'"},
		"#double_quote": asm.Literal{String: `"`},
		"#left_brace":   asm.Literal{String: "["},
		"#right_brace":  asm.Literal{String: "]"},
	}
	for _, name := range strings.Fields("linefeed carriage_return tab digit letter lowercase uppercase space token_character word_boundary") {
		inverted, err := invert(macros["#"+name])
		if err != nil {
			panic(err)
		}
		macros["#not_"+name] = inverted
	}
	for long, short := range map[string]string{
		"linefeed":        "lf",
		"carriage_return": "cr",
		"tab":             "t",
		"digit":           "d",
		"letter":          "l",
		"lowercase":       "lc",
		"uppercase":       "uc",
		"space":           "s",
		"token_character": "tc",
		"word_boundary":   "wb",
	} {
		macros["#"+short] = macros["#"+long]
		macros["#n"+short] = macros["#not_"+long]
	}
	for long, short := range map[string]string{
		"any":             "a",
		"windows_newline": "crlf",
		"start_string":    "ss",
		"end_string":      "es",
		"start_line":      "sl",
		"end_line":        "el",
		"quote":           "q",
		"double_quote":    "dq",
		"left_brace":      "lb",
		"right_brace":     "rb",
	} {
		macros["#"+short] = macros["#"+long]
	}

	// The numeric macros are written in the pattern language itself
	// and compiled against the table as built so far, so each may use
	// the ones registered before it but not itself.
	addSelfHosted(macros, "#integer", "#int", `[[0-1 '-'] [1+ #digit]]`)
	addSelfHosted(macros, "#unsigned_integer", "#uint", `[1+ #digit]`)
	addSelfHosted(macros, "#real", "", `[#int [0-1 '.' #uint]]`)
	addSelfHosted(macros, "#float", "", `[[0-1 '-'] [[#uint '.' [0-1 #uint] | '.' #uint] [0-1 #exponent] | #int #exponent] #exponent=[['e' | 'E'] [0-1 ['+' | '-']] #uint]]`)

	return macros
}

func addSelfHosted(macros map[string]asm.Expr, long, short, source string) {
	node, err := parser.Parse(source)
	if err != nil {
		panic(err)
	}
	expr, err := compile(node, &env{vars: macros})
	if err != nil {
		panic(err)
	}
	macros[long] = expr
	if short != "" {
		macros[short] = expr
	}
}
