// Package cmd is for command line interactions with the portal
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rnacentral/rnacentral-go/config"
	"github.com/rnacentral/rnacentral-go/internal/util"
	"github.com/rnacentral/rnacentral-go/logger"
	mydb "github.com/rnacentral/rnacentral-go/pkg/db"

	_ "modernc.org/sqlite"
)

const VERSION = "0.1.0"

var (
	v          = viper.New()
	configFile string
	settings   config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "rnacentral",
	Short:         "RNAcentral portal API: genome browser features and sequence descriptions",
	Version:       VERSION,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dotenv, err := config.Prepare(v, configFile)
		if err != nil {
			return err
		}
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if settings, err = config.New(v); err != nil {
			return err
		}

		if err := logger.InitLogger(logger.ParseLevel(settings.LogLevel)); err != nil {
			return err
		}
		if !dotenv {
			logger.Debug("No .env found, using local environment")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./rnacentral.yaml)")
	rootCmd.PersistentFlags().String("db", "", "path to the sqlite database")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
}

// openStore opens the configured database read only from the portal's view.
func openStore() (*sql.DB, *mydb.RNAcentralDB, error) {
	if !util.FileExists(settings.DB) {
		return nil, nil, fmt.Errorf("database %s: %w", settings.DB, os.ErrNotExist)
	}

	db, err := sql.Open("sqlite", settings.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", settings.DB, err)
	}

	store := mydb.NewRNAcentralDB(db)
	if err := store.Ping(context.Background()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", settings.DB, err)
	}

	logger.Info("Open database on", zap.String("DB_LOC", settings.DB))
	return db, store, nil
}
