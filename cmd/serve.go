package cmd

import (
	"fmt"
	"os"

	"github.com/adasgupta/simtutor/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		log, err := buildLogger()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()

		manager, st, err := buildManager(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := server.DefaultConfig()
		if base := os.Getenv("SIMTUTOR_SIM_BASE_URL"); base != "" {
			cfg.SimulationBaseURL = base
		}

		srv := server.New(manager, log, cfg)
		log.Info("starting HTTP server", zap.String("addr", addr))
		return srv.Run(addr)
	},
}

func buildLogger() (*zap.Logger, error) {
	if os.Getenv("SIMTUTOR_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func init() {
	serveCmd.Flags().String("addr", ":8000", "Listen address for the HTTP server")
}
