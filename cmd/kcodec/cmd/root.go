/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rayokota/hentitydb-sub001/pkg/codec"
	"github.com/rayokota/hentitydb-sub001/pkg/config"
	"github.com/rayokota/hentitydb-sub001/pkg/logging"
	"github.com/rayokota/hentitydb-sub001/pkg/store"
)

var plog = logger.GetLogger("cli")

// settings is the configuration resolved for the running command
var settings = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kcodec",
	Short: "kcodec - ordered key/value codecs",
	Long: `kcodec encodes values into byte-sortable keys and schema-evolvable
values, and stores them in a local pebble database for inspection.

Configuration is read from --config (yaml), then KCODEC_* environment
variables and .env files, then flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().String("config", "", "Path to a yaml config file")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the store")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("salt-buckets", 0, "Bucket count used by --salt")
	rootCmd.PersistentFlags().Int("buffer-size", 0, "Initial encode buffer size in bytes")
}

// initEnv loads .env files and binds KCODEC_* variables
func initEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("kcodec")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadSettings resolves the configuration and applies it to the process
func loadSettings(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	path := viper.GetString("config")
	if path == "" && config.ConfigExists(config.GetDefaultConfigPath()) {
		path = config.GetDefaultConfigPath()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if v := viper.GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
	if v := viper.GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := viper.GetInt("salt-buckets"); v != 0 {
		cfg.Codec.SaltBuckets = v
	}
	if v := viper.GetInt("buffer-size"); v != 0 {
		cfg.Codec.InitialBufferSize = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.Init(cfg.Logging.Level); err != nil {
		return err
	}
	codec.SetInitialBufferSize(cfg.Codec.InitialBufferSize)
	settings = cfg
	plog.Debugf("configuration: data_dir=%s salt_buckets=%d", cfg.DataDir, cfg.Codec.SaltBuckets)
	return nil
}

// openStore opens the store in the configured data directory
func openStore() (*store.DB, error) {
	if err := os.MkdirAll(settings.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	db, err := store.Open(store.Config{Dir: settings.DataDir, Sync: settings.Sync})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return db, nil
}
