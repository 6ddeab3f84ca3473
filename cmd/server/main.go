package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"lectureiq/internal/config"
	"lectureiq/internal/exporter"
	"lectureiq/internal/jobs"
	"lectureiq/internal/logger"
	"lectureiq/internal/media"
	"lectureiq/internal/pipeline"
	"lectureiq/internal/server"
	"lectureiq/internal/slides"
	"lectureiq/internal/synthesizer"
	"lectureiq/internal/transcriber"
	"lectureiq/internal/watcher"
	"lectureiq/pkg/executor"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "LectureIQ API")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	registry := jobs.NewRegistry()

	deps := pipeline.Deps{
		Registry:    registry,
		Media:       media.New(exec, log),
		Transcriber: transcriber.New(cfg.Whisper, exec, log),
		Slides:      slides.New(log),
		Synthesizer: synthesizer.New(cfg, log),
		Logger:      log,
	}
	if cfg.Export.Enabled {
		deps.Exporter = exporter.New()
	}
	orch := pipeline.New(deps, cfg.Generation, cfg.Export)

	srv := server.New(*cfg, registry, orch, log)
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: srv.Router(),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)

	go func() {
		log.Info(ctx, "Listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	if cfg.Watch.Enabled {
		w, err := watcher.New(cfg.Watch.InputDir, intakeHandler(cfg, registry, orch, log), log, cfg.Watch.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()
		log.Info(ctx, "Watching %s for dropped lecture videos", cfg.Watch.InputDir)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Fatal error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "HTTP shutdown: %v", err)
	}

	log.Info(ctx, "LectureIQ API stopped")
}

// intakeHandler turns a video dropped in the watch directory into a job: the
// file is moved into a fresh per-job work dir, registered, and processed.
func intakeHandler(cfg *config.Config, registry *jobs.Registry, orch pipeline.Orchestrator, log logger.Logger) watcher.IntakeHandler {
	return func(ctx context.Context, videoPath string) error {
		lectureID := uuid.NewString()
		workDir := filepath.Join(cfg.Storage.UploadDir, lectureID)
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return fmt.Errorf("create work dir: %w", err)
		}

		dest := filepath.Join(workDir, "video_"+filepath.Base(videoPath))
		if err := os.Rename(videoPath, dest); err != nil {
			return fmt.Errorf("move video into work dir: %w", err)
		}

		title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
		job := registry.Submit(jobs.SubmitRequest{
			ID:        lectureID,
			Title:     title,
			VideoPath: dest,
			WorkDir:   workDir,
		})
		log.Info(ctx, "Lecture picked up from watch dir: %s (%s)", title, job.ID)

		orch.Run(ctx, job.ID)
		return nil
	}
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Storage.UploadDir}
	if cfg.Export.Enabled {
		dirs = append(dirs, cfg.Export.OutputDir)
	}
	if cfg.Watch.Enabled {
		dirs = append(dirs, cfg.Watch.InputDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
