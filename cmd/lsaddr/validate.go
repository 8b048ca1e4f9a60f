package main

import (
	"github.com/spf13/cobra"

	"github.com/tonylturner/lsaddr/internal/app"
)

type validateFlags struct {
	quiet bool
}

func newValidateCmd(globals *globalFlags) *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate <address>...",
		Short: "Check address syntax without resolving it",
		Long: `Validate one or more addresses and print the canonical form or the
reason each was rejected. Exits non-zero if any address is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "address")
			}
			return app.RunValidate(app.ValidateOptions{
				CommonOptions: globals.common(cmd),
				Addresses:     args,
				Quiet:         flags.quiet,
			})
		},
	}

	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Print nothing; report through the exit status only")

	return cmd
}
