// Package command implements the remex command tree.
package command

import "github.com/spf13/cobra"

// Root is the remex command tree.
var Root = &cobra.Command{
	Use:          "remex",
	Short:        "Compiles the remex macro pattern language into regular expressions.",
	SilenceUsage: true,
}
