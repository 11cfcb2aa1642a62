package cmd

import (
	"fmt"
	"os"

	"github.com/hvollset/dinodaily/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the config file to default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ConfigFile()

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("no config file at %s, run `dinodaily config init` first", path)
		}

		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Reset %s to defaults", path),
			IsConfirm: true,
		}

		if _, err := prompt.Run(); err != nil {
			fmt.Println("Aborted.")
			return nil
		}

		if err := config.SaveYAML(config.DefaultConfig(), path); err != nil {
			return err
		}

		fmt.Printf("Reset config: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
