/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rayokota/hentitydb-sub001/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the kcodec REST API server. It exposes the codec registry
(encode, decode, codecs) and the tables of the local store under /api/v1,
and Prometheus metrics under /metrics.

The port and API key come from the server section of the config file,
KCODEC_PORT and KCODEC_API_KEY, or the flags below.

Examples:
  kcodec serve --port 9200
  kcodec serve --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := settings.Server
		if v := viper.GetInt("port"); v != 0 {
			config.Port = v
		}
		if v := viper.GetString("api-key"); v != "" {
			config.APIKey = v
		}
		if config.Port < 1 || config.Port > 65535 {
			return fmt.Errorf("invalid port %d", config.Port)
		}
		if config.APIKey == "" {
			plog.Warningf("no API key configured, /api/v1 is unauthenticated")
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return api.StartServer(ctx, db, api.ServerConfig{
			Port:        config.Port,
			APIKey:      config.APIKey,
			SaltBuckets: settings.Codec.SaltBuckets,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config, 9200)")
	serveCmd.Flags().String("api-key", "", "API key required in X-API-Key")
}
