package main

import (
	"github.com/spf13/cobra"

	"github.com/tonylturner/lsaddr/internal/app"
)

type parseFlags struct {
	json bool
}

func newParseCmd(globals *globalFlags) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse <address>...",
		Short: "Resolve addresses to bit ranges and byte fields",
		Long: `Parse one or more %M addresses (or config aliases) and print the
canonical form, data type, wrapped bit and byte range, and the
header and value-size bytes.`,
		Example: `  lsaddr parse %MW100
  lsaddr parse x10 MB5,8 --json
  lsaddr parse MX100 --model XGK-CPUU`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handleHelpArg(cmd, args) {
				return nil
			}
			if len(args) == 0 {
				return missingArgError(cmd, "address")
			}
			return app.RunParse(app.ParseOptions{
				CommonOptions: globals.common(cmd),
				Addresses:     args,
				JSON:          flags.json,
			})
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Print results as JSON")

	return cmd
}
