package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/brogergvhs/evangelio/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagOutput       string
)

var rootCmd = &cobra.Command{
	Use:           "evangelio",
	Short:         "Descarga el Evangelio de Juan en español como texto plano",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSource(cmd, "")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config file and use built-in defaults")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output folder (overrides config)")
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("\nError: %s\n", util.Truncate(err.Error(), 100))
		os.Exit(1)
	}
}
