package ingest

import (
	"context"

	"cmdb/feature/device/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner sequences one end-to-end ingest run: fetch all sources, normalize,
// reconcile inside one transaction, and record the audit row. It is the
// sole authority for the run's final status.
type Runner struct {
	sources  []Source
	fetcher  *Fetcher
	engine   *Engine
	recorder *Recorder
	archiver *Archiver // nil disables snapshotting
	logger   *zap.Logger
}

// NewRunner wires a run pipeline. archiver may be nil.
func NewRunner(sources []Source, fetcher *Fetcher, engine *Engine, recorder *Recorder, archiver *Archiver, logger *zap.Logger) *Runner {
	return &Runner{
		sources:  sources,
		fetcher:  fetcher,
		engine:   engine,
		recorder: recorder,
		archiver: archiver,
		logger:   logger,
	}
}

// Run executes one reconciliation run and returns its final counters. Any
// returned error means the run failed and no canonical rows were mutated;
// the audit row is written in both outcomes. Runs are expected not to
// overlap; exclusivity is a scheduling concern, not enforced here.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	runID := uuid.NewString()
	logger := r.logger.With(zap.String("run_id", runID))
	logger.Info("ingest run started", zap.Int("sources", len(r.sources)))

	// Fetch concurrently, but keep results indexed by configured source
	// order: the last source to touch a serial number must be
	// deterministic. All fetches must succeed before any database
	// mutation is attempted.
	batches := make([][]RawRecord, len(r.sources))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, src := range r.sources {
		i, src := i, src
		group.Go(func() error {
			records, err := r.fetcher.Fetch(groupCtx, src)
			if err != nil {
				return err
			}
			batches[i] = records
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		logger.Error("source fetch failed, aborting run", zap.Error(err))
		stats := Stats{Errors: 1}
		r.recorder.Record(ctx, stats, StatusFailed, err.Error())
		return stats, err
	}

	for i, src := range r.sources {
		logger.Info("fetched source inventory",
			zap.String("source", src.Label),
			zap.Int("records", len(batches[i])),
		)
	}

	if r.archiver != nil {
		r.archiver.Archive(ctx, runID, r.sources, batches)
	}

	// Flatten in source order, tagging each record with its origin.
	// Records without a usable serial number are dropped and counted,
	// never fatal.
	var stats Stats
	var devices []models.Device
	for i, src := range r.sources {
		for _, raw := range batches[i] {
			device, err := Normalize(raw, src.Label)
			if err != nil {
				stats.Errors++
				logger.Warn("dropping record",
					zap.String("source", src.Label),
					zap.Error(err),
				)
				continue
			}
			devices = append(devices, device)
		}
	}

	merged, err := r.engine.Reconcile(ctx, devices)
	if err != nil {
		logger.Error("reconciliation failed, run rolled back", zap.Error(err))
		failed := Stats{Errors: 1}
		r.recorder.Record(ctx, failed, StatusFailed, err.Error())
		return failed, err
	}
	stats.Inserted = merged.Inserted
	stats.Updated = merged.Updated

	r.recorder.Record(ctx, stats, StatusSuccess, "")

	logger.Info("ingest run completed",
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
		zap.Int("errors", stats.Errors),
	)
	return stats, nil
}
