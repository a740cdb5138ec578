// Package codegen emits Go source files embedding compiled patterns.
package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// Pattern is one compiled pattern to include in a generated file.
type Pattern struct {
	Name   string // prefix for the generated identifiers, e.g. "Email"
	Source string // the pattern in the macro language
	Regex  string // the compiled regular expression
}

// File builds the generated Go file for the given package and
// patterns. Each pattern becomes a <Name>Pattern string constant and a
// <Name> compiled *regexp.Regexp variable.
func File(pkg string, patterns []Pattern) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by remex. DO NOT EDIT.")
	for _, p := range patterns {
		name := UpperFirst(p.Name)
		f.Comment(fmt.Sprintf("%sPattern is compiled from: %s", name, p.Source))
		f.Const().Id(name + "Pattern").Op("=").Lit(p.Regex)
		f.Var().Id(name).Op("=").Qual("regexp", "MustCompile").Call(jen.Id(name + "Pattern"))
		f.Line()
	}
	return f
}

// Generate renders the file and writes it to path.
func Generate(path, pkg string, patterns []Pattern) error {
	if err := File(pkg, patterns).Save(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
