package cmd

import (
	"fmt"
	"net/http"

	"review-hub/internal/data/repository"
	"review-hub/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()

			logger.Info("Starting application",
				zap.String("app", config.App.Name),
				zap.String("port", config.App.Port),
				zap.Bool("debug", config.App.Debug),
			)

			repos := repository.NewRepository(db, logger)
			app := wire.Wiring(repos, config, logger)

			addr := fmt.Sprintf(":%s", config.App.Port)
			logger.Info("Starting HTTP server", zap.String("addr", addr))
			fmt.Printf("Server running on http://localhost%s\n", addr)

			if err := http.ListenAndServe(addr, app.Router); err != nil {
				logger.Error("Server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
}
