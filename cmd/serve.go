package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/web"
)

const maintenanceInterval = time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(string(cfg.Mode))

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}
	holder := content.NewHolder(c)

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var sender mail.Sender = mail.Noop{}
	smtpCfg := mail.SMTPConfig(cfg.SMTP)
	if smtpCfg.Configured() {
		sender = mail.NewSMTPSender(smtpCfg)
	} else {
		logger.Warn("SMTP credentials not configured; contact messages are stored only")
	}

	srv, err := web.New(cfg, holder, db, sender, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("portfolio listening",
			zap.String("addr", httpServer.Addr),
			zap.String("mode", string(cfg.Mode)),
			zap.Bool("tracking", cfg.Tracking.Enabled))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return srv.RunMaintenance(gctx, maintenanceInterval)
	})

	if cfg.WatchContent {
		w, err := content.NewWatcher(cfg.ContentFile, holder, logger)
		if err != nil {
			logger.Warn("content watcher disabled", zap.String("path", cfg.ContentFile), zap.Error(err))
		} else {
			g.Go(func() error { return w.Run(gctx) })
		}
	}

	return g.Wait()
}
