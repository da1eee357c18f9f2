// Package ingest implements the inventory reconciliation engine: the
// periodic job that pulls device inventories from the external systems and
// merges them into the canonical device table.
//
// # Pipeline
//
// A run moves through fixed phases:
//
//	FETCHING -> NORMALIZING -> RECONCILING -> AUDITING -> DONE
//
// Source fetches may run concurrently, but normalization observes sources
// in their configured order so the "last source wins" merge rule is
// reproducible. All database writes of one run happen inside a single
// transaction: the store ends up either fully updated or untouched.
//
// # Components
//
//   - Fetcher: pulls a raw device list from one source over HTTP.
//   - Normalize: maps a loosely-shaped record onto the canonical schema,
//     resolving key aliases and filling documented defaults.
//   - Engine: transactional upsert of normalized records keyed by serial
//     number, classifying each write as insert or update.
//   - Recorder: appends one audit row per run, success or failure.
//   - Archiver: best-effort snapshot of fetched payloads to object storage.
//   - Runner: sequences the phases and decides the run's final status.
//
// # Usage
//
//	runner := ingest.NewRunner(cfg.Sources(), fetcher, engine, recorder, archiver, log)
//	stats, err := runner.Run(ctx)
package ingest
