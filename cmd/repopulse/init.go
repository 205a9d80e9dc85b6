package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/repopulse/internal/config"
	"github.com/ludo-technologies/repopulse/internal/constants"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a repopulse configuration file",
		Long: `Generate a documented repopulse configuration file with default values.

By default, creates .repopulse.yaml in the current directory.

Examples:
  # Create .repopulse.yaml in current directory
  repopulse init

  # Custom output path
  repopulse init --config custom.yaml

  # Overwrite existing file
  repopulse init --force

  # Ask for the output path
  repopulse init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Prompt for the output path")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if interactive {
		prompt := promptui.Prompt{
			Label:   "Output file path",
			Default: configPath,
		}
		answer, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("output path input cancelled: %w", err)
		}
		if answer != "" {
			configPath = answer
		}
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if err := os.WriteFile(configPath, []byte(config.GetConfigTemplate()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", displayPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'repopulse .' to check your repository.")

	return nil
}
