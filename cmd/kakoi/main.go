package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MichaelMMacLeod/kakoi/internal/config"
	"github.com/MichaelMMacLeod/kakoi/internal/logger"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "kakoi",
		Short: "kakoi - content-addressed structure editing",
		Long: `kakoi stores immutable, structurally shared values and edits
groups of them copy-on-write: every edit builds a new chain that
shares all untouched nodes with the one it replaces.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("log-level", "", "Override configured log level")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
		newShowCmd(),
		newApplyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by the
// subcommands.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	jsonOut, _ := cmd.Flags().GetBool("json")
	log := logger.New(logger.Options{Level: cfg.LogLevel, JSON: jsonOut})
	return cfg, log, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("kakoi version %s\n", version)
			}
		},
	}
}
