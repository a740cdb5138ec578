package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remexlang/remex/pkg/remex"
)

var (
	translateGo bool

	translate = &cobra.Command{
		Use:   "translate <pattern>",
		Short: "Compile a pattern and print the resulting regular expression.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := remex.Translate
			if translateGo {
				out = remex.TranslateGo
			}
			regex, err := out(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), regex)
			return nil
		},
	}
)

func init() {
	translate.Flags().BoolVar(&translateGo, "go", false,
		"emit the spellings Go's regexp package accepts instead of Python's")
	Root.AddCommand(translate)
}
