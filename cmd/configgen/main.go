// cmd/configgen/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/signage-configgen/internal/config"
	"github.com/tamzrod/signage-configgen/internal/logging"
	"github.com/tamzrod/signage-configgen/internal/pipeline"
	"github.com/tamzrod/signage-configgen/internal/watch"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: configgen <job.yaml>")
	}

	jobPath := os.Args[1]

	// --------------------
	// Load + validate job
	// --------------------

	cfg, err := loadJob(jobPath)
	if err != nil {
		log.Fatalf("job config failed: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Generator.Log.Level,
		Format: cfg.Generator.Log.Format,
	})
	if err != nil {
		log.Fatalf("logger setup failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// One-shot run
	// --------------------

	if !cfg.Generator.Watch.Enabled {
		if _, err := pipeline.Run(ctx, cfg, logger); err != nil {
			logger.Error().Err(err).Msg("run failed")
			os.Exit(1)
		}
		return
	}

	// --------------------
	// Watch mode: re-run per trigger
	// --------------------

	if _, err := pipeline.Run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
	}

	triggers := make(chan watch.Trigger)

	wcfg := watchConfig(jobPath, cfg)
	stopWatch, err := startWatch(ctx, wcfg, triggers, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("watch setup failed")
	}

	for {
		select {
		case <-ctx.Done():
			stopWatch()
			logger.Info().Msg("shutting down")
			return

		case tr := <-triggers:
			logger.Info().Str("reason", string(tr.Reason)).Str("path", tr.Path).Msg("regenerating")

			// The job file may have changed; keep the previous job on error.
			if next, err := loadJob(jobPath); err != nil {
				logger.Error().Err(err).Msg("job reload failed, keeping previous job")
			} else {
				cfg = next
			}

			// A changed interval or player set restarts the watcher.
			// watch.enabled is read at startup only.
			if next := watchConfig(jobPath, cfg); !sameWatch(wcfg, next) {
				restarted, err := startWatch(ctx, next, triggers, logger)
				if err != nil {
					logger.Error().Err(err).Msg("watch restart failed, keeping previous watch")
				} else {
					stopWatch()
					stopWatch, wcfg = restarted, next
					logger.Info().Int("paths", len(next.Paths)).Dur("interval", next.Interval).Msg("watch restarted")
				}
			}

			if _, err := pipeline.Run(ctx, cfg, logger); err != nil {
				logger.Error().Err(err).Msg("run failed")
			}
		}
	}
}

// startWatch runs a watcher for wcfg until the returned func is called.
// A watcher that fails stops the whole process.
func startWatch(ctx context.Context, wcfg watch.Config, out chan<- watch.Trigger, logger zerolog.Logger) (func(), error) {
	w, err := watch.New(wcfg)
	if err != nil {
		return nil, err
	}

	wctx, cancel := context.WithCancel(ctx)
	go func() {
		if err := w.Run(wctx, out); err != nil {
			logger.Fatal().Err(err).Msg("watch stopped")
		}
	}()
	return cancel, nil
}

// loadJob loads, expands, validates and normalizes the job file.
func loadJob(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Expand(cfg, filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Normalize(cfg)
	return cfg, nil
}

// watchConfig watches the job file plus every player data file.
// Players discovered by a new file only join the watch after the next
// trigger reloads the job.
func watchConfig(jobPath string, cfg *config.Config) watch.Config {
	paths := []string{jobPath}
	for _, p := range cfg.Generator.Players {
		paths = append(paths, p.Data)
	}
	return watch.Config{
		Interval: time.Duration(cfg.Generator.Watch.IntervalMs) * time.Millisecond,
		Paths:    paths,
	}
}

func sameWatch(a, b watch.Config) bool {
	return a.Interval == b.Interval && a.Debounce == b.Debounce && slices.Equal(a.Paths, b.Paths)
}
