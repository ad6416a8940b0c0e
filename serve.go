package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"TaskBoardService/config"
	"TaskBoardService/handlers"
	"TaskBoardService/logging"
	"TaskBoardService/middleware"
	"TaskBoardService/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if migrate {
				cfg.Database.Migrate = true
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "create the schema before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logging.New(cfg.Log.Level, cfg.Log.Format)
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, dialect, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.WithField("driver", dialect.Driver).Info("Connected!")

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, db, dialect); err != nil {
			return err
		}
		log.Info("schema is up to date")
	}

	mw := []gin.HandlerFunc{
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(),
	}
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.WithField("addr", cfg.Redis.Addr).Warn("redis is unreachable, rate limiting fails open: " + err.Error())
		}
		mw = append(mw, middleware.RedisRateLimit(rdb, cfg.RateLimit.WindowMax, cfg.RateLimit.Window, log))
	} else {
		mw = append(mw, middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit.Rate), cfg.RateLimit.Burst)))
	}

	router := handlers.NewRouter(handlers.New(db, dialect, log, cfg.IsDev()), mw...)
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr": cfg.Addr(),
			"env":  cfg.Env,
			"tls":  cfg.TLSCertFile != "",
		}).Info("Server listening")
		var err error
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the users, categories and tasks tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Format)
			db, dialect, err := repository.Open(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := repository.Migrate(cmd.Context(), db, dialect); err != nil {
				return err
			}
			log.WithField("driver", dialect.Driver).Info("schema is up to date")
			return nil
		},
	}
}
