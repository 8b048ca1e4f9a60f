package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "lsaddr",
		Short: "LS XGT device memory address tool",
		Long: `lsaddr parses, validates and encodes %M device memory addresses
for LS XGT controllers, producing the bit range and the fixed byte
fields used by the FEnet dedicated protocol.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	globals.register(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newParseCmd(globals))
	rootCmd.AddCommand(newValidateCmd(globals))
	rootCmd.AddCommand(newEncodeCmd(globals))
	rootCmd.AddCommand(newModelsCmd(globals))
	rootCmd.AddCommand(newExploreCmd(globals))

	// Custom help command
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if cmd.HasParent() {
			fmt.Fprint(out, cmd.UsageString())
			return
		}
		// Print short top-level usage
		fmt.Fprintf(out, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(out, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden {
				fmt.Fprintf(out, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(out, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	return rootCmd
}
