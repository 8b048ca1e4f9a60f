package main

import (
	"github.com/spf13/cobra"

	"github.com/tonylturner/lsaddr/internal/app"
)

func newModelsCmd(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List controller models and their memory sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			return app.RunModels(app.ModelsOptions{CommonOptions: globals.common(cmd)})
		},
	}
}
