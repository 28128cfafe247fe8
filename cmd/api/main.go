package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gestao-dashboard/internal/audit"
	"github.com/BruksfildServices01/gestao-dashboard/internal/config"
	infraRepo "github.com/BruksfildServices01/gestao-dashboard/internal/infra/repository"
	"github.com/BruksfildServices01/gestao-dashboard/internal/jobs"
	"github.com/BruksfildServices01/gestao-dashboard/internal/kvstore"
	"github.com/BruksfildServices01/gestao-dashboard/internal/logging"
	"github.com/BruksfildServices01/gestao-dashboard/internal/middleware"
	"github.com/BruksfildServices01/gestao-dashboard/internal/routes"
	"github.com/BruksfildServices01/gestao-dashboard/internal/timezone"
	ucReport "github.com/BruksfildServices01/gestao-dashboard/internal/usecase/report"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	store, err := kvstore.Open(ctx, cfg.Store)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer store.Close()

	repo := infraRepo.NewStoreRepository(store, logger.Named("repository"))

	if _, err := repo.MigrateLegacyUsers(ctx); err != nil {
		logger.Fatal("legacy user migration failed", zap.Error(err))
	}
	if cfg.SeedDemo {
		if err := repo.SeedDemo(ctx); err != nil {
			logger.Fatal("demo seed failed", zap.Error(err))
		}
		// seeding writes the legacy key on a fresh install
		if _, err := repo.MigrateLegacyUsers(ctx); err != nil {
			logger.Fatal("legacy user migration failed", zap.Error(err))
		}
	}

	clock := timezone.NewSystemClock(cfg.Timezone)

	dispatcher := audit.NewDispatcher(audit.New(repo, clock.Now), logger.Named("audit"))
	defer dispatcher.Close()

	sched, err := jobs.NewScheduler(
		cfg.DailyReportCron,
		clock.Loc,
		ucReport.NewGetDashboard(repo, clock),
		logger.Named("jobs"),
	)
	if err != nil {
		logger.Fatal("invalid DAILY_REPORT_CRON", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		Repo:   repo,
		Audit:  dispatcher,
		Config: cfg,
		Clock:  clock,
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
