package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/linkrank.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".linkrank"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new LinkRank configuration file",
		Long: `Initialize creates a new .linkrank configuration file in the current directory.

The generated file includes:
- Default estimator settings (damping, samples, tolerance)
- Commented examples for per-corpus overrides
- Documentation for all available options

Examples:
  # Create .linkrank in current directory
  linkrank init

  # Create config file at a specific path
  linkrank init -o myconfig.yaml

  # Force overwrite existing file
  linkrank init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/linkrank.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure per-corpus settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Damping factor")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Sample count for the random walk")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Convergence tolerance and iteration cap")

	return nil
}
