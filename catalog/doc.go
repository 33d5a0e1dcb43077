// Package catalog persists the tuning catalog: named tunings, the
// songs that use them, closeness keys, and the analyzed tuning
// relationships whose delta vectors become graph edges.
//
// What
//
//   - Open creates/opens a SQLite database (WAL, foreign keys, single
//     connection) and applies versioned migrations.
//   - Tunings are deduplicated by label; songs by (name, artist,
//     tuning). CSV import accepts a name,artist,tuning header.
//   - AnalyzeCloseness evaluates every tuning pair under a closeness
//     policy and stores the close ones, with the per-string pitch
//     vector of the optimally-shifted retune. Pairs are stored with
//     sorted IDs; when a pair is reordered for storage its vector is
//     sign-flipped, so the stored direction is always low-ID → high-ID.
//   - BuildGraph materializes the tuninggraph for one closeness key;
//     rows with corrupt vectors are skipped and counted, never fatal.
//
// Why
//
//   - The engine consumes per-edge delta vectors; computing closeness
//     for all pairs at query time would be wasteful and non-reproducible
//     across policy edits. The catalog makes each analysis a named,
//     reusable key.
//
// Errors
//
//   - ErrNotFound   - a lookup matched no row.
//   - ErrDuplicate  - an insert violated a uniqueness rule.
//   - Driver errors are wrapped with operation context.
//
// Concurrency: the store serializes through one connection
// (SetMaxOpenConns(1)); WAL keeps readers unblocked across processes.
package catalog
