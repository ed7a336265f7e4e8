package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rnacentral/rnacentral-go/logger"
	mydb "github.com/rnacentral/rnacentral-go/pkg/db"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the portal tables in an empty local database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initDB(cmd.Context(), settings.DB)
	},
}

func init() {
	rootCmd.AddCommand(initDBCmd)
}

func initDB(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if err := mydb.CreateSchema(ctx, db); err != nil {
		return err
	}
	logger.Info("Schema ready", zap.String("DB_LOC", path))
	return nil
}
