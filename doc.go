// Package gigset is an engine for planning live-performance guitar
// setlists ("gigsets") across a graph of tunings — from note-name
// parsing to path feasibility solving and a SQLite-backed catalog.
//
// 🚀 What is gigset?
//
//	A library + CLI that brings together:
//		• pitch:       note-name ↔ semitone pitch conversion, MIDI helpers
//		• tuning:      canonical tuning normalization, per-string pitch bounds
//		• tuninggraph: thread-safe tuning graph with per-string retune deltas
//		• closeness:   "how hard is it to retune between A and B" policies
//		• solver:      global-transposition path feasibility over the graph
//		• session:     interactive gigset building (append / undo / bounds edits)
//		• catalog:     SQLite store for tunings, songs and closeness analysis
//		• config:      TOML configuration (catalog path, pitch window, policy)
//		• cmd/gigset:  the CLI over all of the above
//
// ✨ Why choose gigset?
//
//   - Deterministic – one canonical transposition, reproducible pitch output
//   - Failure is data – infeasible paths reject cleanly, never panic
//   - Pure Go core – the engine has no dependencies beyond the standard library
//   - Pluggable – the solver consumes any graph through a 3-method interface
//
// Quick ASCII example:
//
//	    EADGBE───DADGBE
//	       │        │
//	    EbAbDbGbBbEb──DADGAD
//
//	each edge carries a 6-vector of per-string semitone deltas; a gigset
//	is a path whose every step keeps all six strings inside their bounds.
//
// Dive into the per-package docs for algorithms, invariants and examples.
//
//	go get github.com/katalvlaran/gigset
package gigset
