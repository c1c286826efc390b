package cmd

import (
	"review-hub/internal/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func importCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Bulk-load CSV data into the database",
		Long: `Import loads CSV files into their tables. With no arguments every
registered file is loaded in dependency order:

  ` + "users.csv category.csv genre.csv titles.csv genre_title.csv review.csv comments.csv" + `

Each file is one transaction: a bad row aborts that file without
touching files already imported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()

			if dir == "" {
				dir = config.Import.Dir
			}

			logger.Info("Starting import",
				zap.String("dir", dir),
				zap.Strings("files", args),
			)

			im := importer.New(db, dir, logger)
			return im.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory holding the CSV files (default from config)")

	return cmd
}
