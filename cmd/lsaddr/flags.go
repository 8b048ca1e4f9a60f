package main

import (
	"github.com/spf13/cobra"

	"github.com/tonylturner/lsaddr/internal/app"
)

// globalFlags are persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	model      string
	memorySize int64
	logLevel   string
	logFile    string
	plain      bool
}

func (g *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "lsaddr.yaml", "Config file (defaults are used when the default file is absent)")
	pf.StringVar(&g.model, "model", "", "Controller model (default from config)")
	pf.Int64Var(&g.memorySize, "memory-size", 0, "M-area size in bits (overrides the model)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: silent, error, info, verbose, debug")
	pf.StringVar(&g.logFile, "log-file", "", "Write log to file")
	pf.BoolVar(&g.plain, "plain", false, "Disable styled output")
}

func (g *globalFlags) common(cmd *cobra.Command) app.CommonOptions {
	return app.CommonOptions{
		ConfigPath:     g.configPath,
		ConfigRequired: cmd.Flags().Changed("config"),
		Model:          g.model,
		MemorySizeBits: g.memorySize,
		LogLevel:       g.logLevel,
		LogFile:        g.logFile,
		Plain:          g.plain,
		Out:            cmd.OutOrStdout(),
	}
}
