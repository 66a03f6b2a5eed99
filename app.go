package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/serroba/bureau/internal/config"
	"github.com/serroba/bureau/internal/form"
	"github.com/serroba/bureau/internal/intern"
	"github.com/serroba/bureau/internal/journal"
	"github.com/serroba/bureau/internal/logger"
	"github.com/serroba/bureau/internal/metrics"
	"github.com/serroba/bureau/internal/office"
	"github.com/serroba/bureau/internal/registry"
	"github.com/serroba/bureau/internal/scenario"
	"go.uber.org/zap"
)

// app holds everything a command needs to run a scenario.
type app struct {
	cfg      *config.AppConfig
	logger   *zap.Logger
	registry *prometheus.Registry
	office   *office.Office
	runner   *scenario.Runner
	closers  []io.Closer
}

func newApp(out io.Writer) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if metricsFile != "" {
		cfg.Metrics.Path = metricsFile
	}

	lg, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	a := &app{cfg: cfg, logger: lg, registry: prometheus.NewRegistry()}

	m, err := metrics.New(a.registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	j := journal.New()

	if cfg.Journal.Path != "" {
		f, err := os.Create(cfg.Journal.Path)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}

		a.closers = append(a.closers, f)
		j.Register(journal.NewEncoderSink("file", json.NewEncoder(f)))
	}

	seed := cfg.Office.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	lg.Debug("robotomy generator seeded", zap.Uint64("seed", seed))

	actions := form.NewActions(form.ActionsConfig{
		Out:       out,
		Dir:       cfg.Office.ArtifactDir,
		Rand:      rand.New(rand.NewPCG(seed, seed)),
		Logger:    lg,
		OnOutcome: m.ActionHook(),
	})

	a.office = office.New(office.Config{
		Out:     out,
		Store:   registry.NewMemoryStore(),
		Intern:  intern.New(lg),
		Actions: actions,
		Journal: j,
		Metrics: m,
		Logger:  lg,
	})
	a.runner = scenario.NewRunner(a.office, lg)

	return a, nil
}

// play runs s and writes the metrics textfile if one is configured.
func (a *app) play(s *scenario.Scenario) scenario.Report {
	report := a.runner.Run(s)

	a.logger.Info("scenario finished",
		zap.String("name", s.Name),
		zap.Int("steps", report.Steps),
		zap.Int("failures", report.Failures),
		zap.Int("skipped", report.Skipped),
	)

	if a.cfg.Metrics.Path != "" {
		if err := prometheus.WriteToTextfile(a.cfg.Metrics.Path, a.registry); err != nil {
			a.logger.Error("failed to write metrics", zap.String("path", a.cfg.Metrics.Path), zap.Error(err))
		}
	}

	return report
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}

	_ = a.logger.Sync()
}
