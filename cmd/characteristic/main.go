package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dball/characteristic/internal/cli/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// app carries what the commands share once the configuration is loaded.
type app struct {
	configPath string
	config     *config.Config
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "characteristic",
		Short: "Check record declarations",
		Long: `characteristic composes record kinds declared in YAML files, constructs
the declared records, and reports them in the order of their attributes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			a.config, err = config.Load(a.configPath)
			if err != nil {
				return
			}
			a.logger, err = newLogger(a.config)
			return
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./characteristic.yaml)")

	rootCmd.AddCommand(newCheckCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))
	return rootCmd
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel())
	zcfg.DisableStacktrace = true
	if cfg.Color {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zcfg.Build()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
