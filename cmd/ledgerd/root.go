package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmarchant/ledger_in_go/config"
)

var (
	validLogLevels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	validLogLevelsStr = func() string {
		keys := maps.Keys(validLogLevels)
		slices.Sort(keys)
		return strings.Join(keys, "|")
	}()
)

var rootCmd = &cobra.Command{
	Use:   "ledgerd",
	Short: "Run a single-node proof-of-work ledger",
	Long: `ledgerd keeps a queue of pending transactions and seals it into
proof-of-work blocks through an interactive shell.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setLogLevel(viper.GetString("logLevel"))
	},
	RunE: runShell,
}

// setLogLevel sets the log level
func setLogLevel(logLevel string) error {
	level, exists := validLogLevels[logLevel]
	if !exists {
		return fmt.Errorf("invalid log level: %s. Valid log levels are: %s", logLevel, validLogLevelsStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// loadAppConfig resolves the ledger config: the file named by --config
// when given, defaults otherwise.
func loadAppConfig() config.AppConfig {
	path := viper.GetString("config")
	if path == "" {
		return config.DefaultAppConfig()
	}
	c, err := config.ParseAppConfig(path)
	if err != nil {
		slog.Warn("Falling back to default config", "error", err)
		return config.DefaultAppConfig()
	}
	slog.Info("Using config file", "file", path)
	return c
}

func init() {
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", fmt.Sprintf("set log level (%s)", validLogLevelsStr))
	rootCmd.Flags().StringP("config", "c", "", "path to the ledger config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		slog.Error("Failed to bind rootCmd persistent flags", "error", err)
	}
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		slog.Error("Failed to bind rootCmd flags", "error", err)
	}

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	viper.SetEnvPrefix("ledgerd")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("An error occurred", "error", err)
		os.Exit(1)
	}
}
