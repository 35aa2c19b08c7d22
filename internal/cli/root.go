// Package cli exposes every wrapped operation as a cobra command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/awscmdlet/internal/config"
	"github.com/nandemo-ya/awscmdlet/internal/logging"
)

// flag name to config key
var persistentBindings = map[string]string{
	"region":    "aws.region",
	"profile":   "aws.profile",
	"endpoint":  "aws.endpoint",
	"output":    "output.format",
	"log-level": "log.level",
	"lenient":   "invocation.lenient",
}

var (
	configPath string

	// RootCmd represents the base command when called without any subcommands
	RootCmd = newRootCommand()
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "awscmdlet",
		Short: "Call AWS service operations from the command line",
		Long:  `awscmdlet maps command line flags onto AWS service requests, follows
pagination tokens and prints the selected part of each response.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./awscmdlet.yaml or $HOME/.awscmdlet/awscmdlet.yaml)")
	flags.String("region", "", "AWS region")
	flags.String("profile", "", "Shared config profile")
	flags.String("endpoint", "", "Custom service endpoint URL")
	flags.StringP("output", "o", "json", "Output format (json, yaml)")
	flags.StringP("log-level", "l", "warn", "Log level (debug, verbose, info, warn, error)")
	flags.Bool("lenient", false, "Warn about missing required parameters instead of failing")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newStrategyCommand())
	root.AddCommand(newPermissionsCommand())
	return root
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	for name, key := range persistentBindings {
		if err := config.BindFlag(key, root.PersistentFlags().Lookup(name)); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logCfg := cfg.LoggingConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logging.Initialize(logCfg)
	logging.Component("config").Debug("configuration loaded", "region", cfg.AWS.Region, "endpoint", cfg.AWS.Endpoint)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
