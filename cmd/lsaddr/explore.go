package main

import (
	"github.com/spf13/cobra"

	"github.com/tonylturner/lsaddr/internal/app"
)

type exploreFlags struct {
	noPrompt bool
}

func newExploreCmd(globals *globalFlags) *cobra.Command {
	flags := &exploreFlags{}

	cmd := &cobra.Command{
		Use:   "explore [address]",
		Short: "Interactive address explorer",
		Long: `Pick a controller model, then type addresses and watch them resolve.
Addresses kept with enter are printed when the explorer exits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			opts := app.ExploreOptions{
				CommonOptions: globals.common(cmd),
				Prompt:        !flags.noPrompt && globals.model == "",
			}
			if len(args) == 1 {
				opts.Address = args[0]
			}
			return app.RunExplore(opts)
		},
	}

	cmd.Flags().BoolVar(&flags.noPrompt, "no-prompt", false, "Skip the model prompt and use the configured model")

	return cmd
}
