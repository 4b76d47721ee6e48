package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/studydesk/dashboard/internal/config"
	"github.com/studydesk/dashboard/internal/handler"
	"github.com/studydesk/dashboard/internal/mail"
	"github.com/studydesk/dashboard/internal/metrics"
	"github.com/studydesk/dashboard/internal/middleware"
	"github.com/studydesk/dashboard/internal/repository"
	"github.com/studydesk/dashboard/internal/service"
	"github.com/studydesk/dashboard/internal/storage"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.serve(cmd.Context())
		},
	}
}

func (o *options) serve(ctx context.Context) error {
	cfg := o.cfg
	log := o.logger.Sugar()

	pool, err := repository.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		log.Infow("rate limiting through redis", "addr", cfg.Redis.Addr)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := buildRouter(cfg, pool, rdb, reg, o.logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Engine(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", srv.Addr, "frontend", cfg.Server.FrontendURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildRouter wires repositories, services and handlers over pool. rdb may be
// nil, in which case the in-memory limiter is used.
func buildRouter(cfg *config.Config, pool *pgxpool.Pool, rdb *redis.Client, reg *prometheus.Registry, logger *zap.Logger) (handler.Router, error) {
	log := logger.Sugar()

	var signer storage.Signer
	if cfg.Storage.Enabled() {
		s, err := storage.NewMinIOStorage(cfg.Storage.MinIOConfig)
		if err != nil {
			return handler.Router{}, fmt.Errorf("failed to create storage client: %w", err)
		}
		signer = s
	} else {
		log.Warn("STORAGE_ENDPOINT not set; documents without a public URL cannot be downloaded")
	}

	contactRepo := repository.NewPgContactRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)
	documentRepo := repository.NewPgDocumentRepository(pool)
	emailLogRepo := repository.NewPgEmailLogRepository(pool)

	contactService := service.NewContactService(contactRepo, log.Named("contact"))
	profileService := service.NewProfileService(profileRepo, log.Named("profile"))
	documentService := service.NewDocumentService(documentRepo, signer, service.DocumentServiceConfig{
		Bucket:       cfg.Storage.Bucket,
		SignedURLTTL: cfg.Storage.SignedURLTTL,
	}, log.Named("document"))
	emailService := service.NewEmailService(mail.NewSender(cfg.Mail), emailLogRepo, profileRepo, log.Named("email"))

	metrics.RegisterCollectors(reg)

	var limit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limit = middleware.RedisRateLimit(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Window)
	}

	return handler.Router{
		Logger:      logger,
		FrontendURL: cfg.Server.FrontendURL,
		RateLimit:   limit,
		Middleware:  []gin.HandlerFunc{middleware.SecurityHeaders()},
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Health:      handler.NewHealthHandler(pool),
		Messages:    handler.NewMessageHandler(contactService),
		Documents:   handler.NewDocumentHandler(documentService),
		Profiles:    handler.NewProfileHandler(profileService),
		Email:       handler.NewEmailHandler(emailService),
	}, nil
}
