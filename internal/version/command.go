package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand adds a `version` subcommand that prints the build of the root binary.
func AttachCobraVersionCommand(root *cobra.Command) {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print the release, commit and build time baked into this binary at build time.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), Short())

				return
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", root.Name(), Full())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the release")
	root.AddCommand(cmd)
}
