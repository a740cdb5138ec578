// Package remex compiles the remex macro pattern language into
// regular expressions, and optionally generates Go source embedding
// the compiled patterns.
package remex

import (
	"fmt"

	"github.com/remexlang/remex/internal/asm"
	"github.com/remexlang/remex/internal/codegen"
	"github.com/remexlang/remex/internal/compiler"
	"github.com/remexlang/remex/internal/parser"
)

// Translate compiles a pattern into Python-flavored
// regular-expression text. The result always starts with an inline
// (?ms) flag scope, so multiline anchors and the any-character macro
// behave as documented.
func Translate(pattern string) (string, error) {
	return translate(pattern, asm.FlavorPython)
}

// TranslateGo compiles a pattern into regular-expression text accepted
// by Go's regexp package: \z instead of \Z for the end-of-string
// anchor, {0,m} instead of {,m} for min-zero bounded repeats. Code
// generation uses this flavor, since the generated files feed the
// pattern to regexp.MustCompile.
func TranslateGo(pattern string) (string, error) {
	return translate(pattern, asm.FlavorGo)
}

func translate(pattern string, flavor asm.Flavor) (string, error) {
	node, err := parser.Parse(pattern)
	if err != nil {
		return "", fmt.Errorf("failed to parse pattern: %w", err)
	}
	expr, err := compiler.Compile(node)
	if err != nil {
		return "", fmt.Errorf("failed to compile pattern: %w", err)
	}
	return asm.AssembleFlavor(expr, flavor), nil
}

// Pattern is a named pattern for code generation.
type Pattern struct {
	// Name is the prefix for the generated identifiers (e.g. "Email"
	// generates EmailPattern and Email).
	Name string

	// Source is the pattern in the remex macro language.
	Source string
}

// Options configures Go code generation.
type Options struct {
	// Patterns are the patterns compiled into the generated file.
	Patterns []Pattern

	// OutputFile is the path where generated code will be written.
	OutputFile string

	// Package is the Go package name for the generated code.
	Package string
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if len(o.Patterns) == 0 {
		return fmt.Errorf("patterns cannot be empty")
	}
	for _, p := range o.Patterns {
		if p.Name == "" {
			return fmt.Errorf("pattern name cannot be empty")
		}
		if !validName(p.Name) {
			return fmt.Errorf("pattern name %q must be a letter followed by letters, digits or underscores", p.Name)
		}
		if p.Source == "" {
			return fmt.Errorf("pattern %s: source cannot be empty", p.Name)
		}
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate compiles every pattern and writes the generated Go file.
// It returns an error if any pattern is invalid or the file cannot be
// written.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	compiled := make([]codegen.Pattern, 0, len(opts.Patterns))
	for _, p := range opts.Patterns {
		regex, err := TranslateGo(p.Source)
		if err != nil {
			return fmt.Errorf("pattern %s: %w", p.Name, err)
		}
		compiled = append(compiled, codegen.Pattern{Name: p.Name, Source: p.Source, Regex: regex})
	}
	if err := codegen.Generate(opts.OutputFile, opts.Package, compiled); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}

// validName reports whether the name yields a valid exported Go
// identifier once its first letter is uppercased.
func validName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return s != ""
}
