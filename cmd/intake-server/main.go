// Command intake-server runs the public form intake API: per-form
// submission endpoints, the shared contact endpoint, and the photo upload
// routes.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rmgdri/go-intake/components/submit"
	"github.com/rmgdri/go-intake/components/upload"
	"github.com/rmgdri/go-intake/internal/config"
	"github.com/rmgdri/go-intake/internal/objectstore"
	"github.com/rmgdri/go-intake/internal/store"
	"github.com/rmgdri/go-intake/pkg/forms/adoptionfoster"
	"github.com/rmgdri/go-intake/pkg/forms/ownersurrender"
	"github.com/rmgdri/go-intake/pkg/forms/sheltertransfer"
	"github.com/rmgdri/go-intake/pkg/intake"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "intake-server",
	Short: "RMGDRI public form intake API",
	Long: `intake-server hosts the public form endpoints for the rescue:
owner surrender, shelter/rescue transfer, adoption/foster applications, the
shared contact endpoint, and photo upload presigning.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "intake.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var writer intake.Writer
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open submission store: %w", err)
	}
	defer db.Close()
	writer = db

	var storage upload.Storage
	if cfg.Storage.Configured() {
		client, err := objectstore.New(ctx, objectstore.Options{
			AccountID:       cfg.Storage.AccountID,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to build object storage client: %w", err)
		}
		storage = client
	} else {
		logger.Warn("object storage not configured; upload endpoints will answer 503")
	}

	mux := http.NewServeMux()

	forms := []intake.Form{
		ownersurrender.Form(),
		sheltertransfer.Form(),
		adoptionfoster.Form(),
	}
	for _, form := range forms {
		pattern, err := submit.RegisterRoutes(mux, "",
			submit.WithForm(form),
			submit.WithWriter(writer),
			submit.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		logger.Info("registered form endpoint", zap.String("form", form.Key), zap.String("path", pattern))
	}

	pattern, err := submit.RegisterGeneralRoutes(mux, "",
		submit.WithWriter(writer),
		submit.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("registered general intake endpoint", zap.String("path", pattern))

	pattern, err = upload.RegisterRoutes(mux, "",
		upload.WithStorage(storage),
		upload.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("registered upload endpoints", zap.String("path", pattern))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("intake server listening", zap.String("addr", cfg.Server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
