package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rnacentral/rnacentral-go/logger"
	"github.com/rnacentral/rnacentral-go/pkg/handler"
	"github.com/rnacentral/rnacentral-go/pkg/middle"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("listen", "", "address to listen on (default 0.0.0.0:8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {

	db, store, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	dbctx := &handler.DBContext{
		Store:       store,
		Description: settings.Description,
	}

	requestLogger := middle.CreateMiddlewareLogger(logger.ParseLevel(settings.RequestLogLevel))
	defer requestLogger.Sync()

	server := &http.Server{
		Addr:              settings.Listen,
		Handler:           handler.NewRouter(dbctx, requestLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Server starting on", zap.String("addr", settings.Listen))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Error starting server:", zap.Error(err))
		return err
	}
	return nil
}
