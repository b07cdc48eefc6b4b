package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/brogergvhs/evangelio/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigPath()

		if _, err := os.Stat(path); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", path)
			return nil
		}

		fmt.Println("Default configuration:")
		config.DefaultConfig().Print()
		fmt.Println()

		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Create config at %s", path),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Aborted.")
			return nil
		}

		created, err := config.InitDefaultConfig()
		if errors.Is(err, os.ErrExist) {
			fmt.Println("Configuration already exists at:", created)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", created)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
