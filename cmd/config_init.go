package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hvollset/dinodaily/internal/config"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigFile()

		if _, err := os.Stat(path); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", path)
			fmt.Println("Use `dinodaily config reset` to recreate it.")
			return nil
		}

		def := config.DefaultConfig()

		fmt.Println("Configuration file will be saved at:")
		fmt.Println("  ", path)
		fmt.Println()

		fmt.Println("Default configuration:")
		def.Print()
		fmt.Println()

		reader := bufio.NewReader(os.Stdin)
		fmt.Printf("Create config at %s? [y/N]: ", path)
		resp, _ := reader.ReadString('\n')
		resp = strings.TrimSpace(strings.ToLower(resp))

		if resp != "y" && resp != "yes" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := config.EnsureConfigRoot(); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := config.SaveYAML(def, path); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", path)

		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
