package cmd

import (
	"fmt"
	"os"

	"unbound-webhook/core/config"
	"unbound-webhook/core/logger"
	"unbound-webhook/core/opnsense"
	"unbound-webhook/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configPath is the directory searched for config.yaml and .env.
var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "unbound-webhook",
	Short: "external-dns webhook provider for OPNsense Unbound",
	Long: `unbound-webhook keeps OPNsense Unbound host overrides in sync with the
desired state computed by external-dns.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console + debug config for readable CLI errors with ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory holding config.yaml and .env")
}

// bootstrap loads the configuration and builds the logger and engine shared by
// every command.
func bootstrap() (*config.Config, *zap.Logger, *reconcile.Engine, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := opnsense.NewClient(cfg.OPNsense)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create OPNsense client: %w", err)
	}

	engine := reconcile.NewMemoryEngine(client, cfg.Reconcile, l)
	return cfg, l, engine, nil
}
