package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/remexlang/remex/pkg/remex"
)

var (
	genPatterns []string
	genPackage  string
	genOutput   string

	generate = &cobra.Command{
		Use:   "generate",
		Short: "Generate a Go source file embedding compiled patterns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := remex.Options{
				Package:    genPackage,
				OutputFile: genOutput,
			}
			for _, p := range genPatterns {
				name, source, ok := strings.Cut(p, "=")
				if !ok {
					return fmt.Errorf("invalid --pattern %q, expected name=source", p)
				}
				opts.Patterns = append(opts.Patterns, remex.Pattern{Name: name, Source: source})
			}
			return remex.Generate(opts)
		},
	}
)

func init() {
	generate.Flags().StringArrayVar(&genPatterns, "pattern", nil,
		"pattern to compile as name=source (flag can be specified more than once)")
	generate.Flags().StringVar(&genPackage, "package", "patterns",
		"Go package name for the generated code")
	generate.Flags().StringVar(&genOutput, "out", "patterns.go",
		"path of the generated file")
	Root.AddCommand(generate)
}
