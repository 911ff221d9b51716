/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayokota/hentitydb-sub001/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a default configuration file for kcodec.

Examples:
  kcodec init
  kcodec init --path ./kcodec.yaml --data-dir /var/lib/kcodec`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		force, _ := cmd.Flags().GetBool("force")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", path)
			return nil
		}

		cfg, err := config.BootstrapConfig(path, settings.DataDir)
		if err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}

		cmd.Printf("Wrote configuration to %s\n", path)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("path", "", "Where to write the configuration (default ~/.config/kcodec/config.yaml)")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}
