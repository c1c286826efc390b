// Package cmd wires the review-hub command line: an HTTP API server
// and a CSV bulk importer, both sharing config, logging and database
// bootstrap.
package cmd

import (
	"fmt"
	"log"
	"os"

	"review-hub/pkg/database"
	"review-hub/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review-hub",
		Short: "Review aggregation API",
		Long: `Review-hub is a REST API for collecting user reviews of titles
(books, films, music) grouped by category and genre. Titles carry a
rating computed from review scores.

Configuration is read from a .env file and the environment.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(importCmd())

	return cmd
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and opens the database
// pool. Callers own closing both.
func bootstrap() (*utils.Config, *zap.Logger, database.PgxIface, error) {
	config, err := utils.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	return config, logger, db, nil
}
