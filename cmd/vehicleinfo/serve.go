package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mahi-cyberaware/vehicleinfo/internal/client"
	"github.com/mahi-cyberaware/vehicleinfo/internal/config"
	httphandler "github.com/mahi-cyberaware/vehicleinfo/internal/http"
	"github.com/mahi-cyberaware/vehicleinfo/internal/http/middleware"
	"github.com/mahi-cyberaware/vehicleinfo/internal/logger"
	"github.com/mahi-cyberaware/vehicleinfo/internal/report"
	"github.com/mahi-cyberaware/vehicleinfo/internal/service"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "serve",
		Short:         "Run the vehicle lookup as an HTTP service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
				return err
			}

			log := logger.New(cfg.Environment)

			lookupService := service.NewLookupService(client.NewFromConfig(cfg), log)
			reportWriter := report.NewWriter(cfg.Report.Dir)

			handler := httphandler.NewHandler(lookupService, reportWriter, log)
			tokenMiddleware := middleware.Token(cfg.Auth.Token)
			router := httphandler.NewRouter(handler, tokenMiddleware, cfg.Environment)

			addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
			log.Info().Str("addr", addr).Msg("starting vehicleinfo service")

			if err := router.Run(addr); err != nil {
				log.Error().Err(err).Msg("failed to start server")
				return err
			}
			return nil
		},
	}
}
