package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mrlokans/english-hub/internal/backup"
	"github.com/mrlokans/english-hub/internal/config"
	"github.com/mrlokans/english-hub/internal/database"
	"github.com/mrlokans/english-hub/internal/database/dialogues"
	"github.com/mrlokans/english-hub/internal/database/sentences"
	"github.com/mrlokans/english-hub/internal/database/words"
	http_controllers "github.com/mrlokans/english-hub/internal/http"
	"github.com/mrlokans/english-hub/internal/metrics"
	"github.com/mrlokans/english-hub/internal/scheduler"
	"github.com/mrlokans/english-hub/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the server goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// OpenDatabase connects using the configured driver and creates missing tables.
func OpenDatabase(cfg *config.Config) (*database.Database, error) {
	return database.NewDatabase(database.Options{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	})
}

func newBackupWriter(cfg *config.Config, db *database.Database) *backup.Writer {
	return backup.NewWriter(
		cfg.Backup.Dir,
		words.NewRepository(db.DB),
		sentences.NewRepository(db.DB),
		dialogues.NewRepository(db.DB),
	)
}

// RunBackup writes a single snapshot and returns its path.
func RunBackup(cfg *config.Config) (string, error) {
	db, err := OpenDatabase(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	name, err := newBackupWriter(cfg, db).Write()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.Backup.Dir, name), nil
}

// startBackupScheduler runs periodic backups until the returned stop
// function is called. Stop also releases the scheduler's context watcher.
func startBackupScheduler(schedule string, run scheduler.BackupFunc) (*scheduler.BackupScheduler, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.NewBackupScheduler(schedule, run)
	if err := s.Start(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	return s, func() {
		s.Stop()
		cancel()
	}, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting English Hub v%s", version)

	db, err := OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	var collectorsSet *metrics.Collectors
	var registry *prometheus.Registry
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collectorsSet = metrics.New(registry)
	}

	backupWriter := newBackupWriter(cfg, db)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(tasks.DBPathFor(cfg.Database.Path, cfg.Backup.Dir), taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewBackupQueue(backupWriter, collectorsSet))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Scheduled backups go through the queue when it is available
	stopScheduler := func() {}
	if cfg.Backup.ScheduleEnabled {
		run := func() error {
			_, err := backupWriter.Write()
			collectorsSet.RecordBackup(err)
			return err
		}
		if taskClient != nil {
			run = func() error {
				_, err := taskClient.EnqueueBackup("scheduled")
				return err
			}
		}

		_, stopScheduler, err = startBackupScheduler(cfg.Backup.Schedule, run)
		if err != nil {
			log.Fatalf("Failed to start backup scheduler: %v", err)
		}
	} else {
		log.Printf("Backup scheduler: disabled")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		Words:         words.NewRepository(db.DB),
		Sentences:     sentences.NewRepository(db.DB),
		Dialogues:     dialogues.NewRepository(db.DB),
		Metrics:       collectorsSet,
		AllowedOrigin: cfg.CORS.AllowedOrigin,
		Version:       version,
	}
	if registry != nil {
		routerCfg.Gatherer = registry
	}
	if taskClient != nil {
		routerCfg.Backups = taskClient
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		stopScheduler()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
