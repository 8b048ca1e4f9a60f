package main

import (
	"github.com/spf13/cobra"

	"github.com/tonylturner/lsaddr/internal/app"
)

type encodeFlags struct {
	field string
	copy  bool
}

func newEncodeCmd(globals *globalFlags) *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode <address>",
		Short: "Emit the protocol byte fields for an address",
		Long: `Emit the data type header tag and value-size field for an address
as hex, without sending anything to a controller.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "address")
			}
			return app.RunEncode(app.EncodeOptions{
				CommonOptions: globals.common(cmd),
				Address:       args[0],
				Field:         flags.field,
				Copy:          flags.copy,
			})
		},
	}

	cmd.Flags().StringVar(&flags.field, "field", app.FieldAll, "Field to emit: all, header, value-size")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the hex to the clipboard")

	return cmd
}
