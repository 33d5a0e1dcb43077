// Package closeness decides how hard it is to retune between two
// tunings, and produces the per-string delta vectors stored on graph
// edges.
//
// What
//
//   - OptimalShift finds the global transposition of the source tuning
//     that minimizes the total (L1) per-string retuning effort against
//     the destination — the integer median of the per-string
//     differences.
//   - Evaluate applies a Policy to the optimally-shifted pair: at most
//     MaxChangedStrings strings may differ, no string may move more
//     than MaxPitchChange semitones, and the summed movement may not
//     exceed MaxTotalDifference.
//   - Vector returns the per-string semitone changes from the shifted
//     source to the destination — exactly the delta a tuninggraph edge
//     carries.
//
// Why
//
//   - "Close" tunings become graph edges; the policy thresholds are the
//     tunable closeness key under which a tuning catalog is analyzed.
//     The engine itself never computes closeness at query time — the
//     analysis runs once per key and its vectors are persisted.
//
// Determinism
//
//	The median is computed over the sorted differences with the lower
//	middle pair averaged by truncating division, so equal inputs always
//	produce the same shift and vector.
//
// Complexity
//
//   - All operations are O(6 log 6), effectively constant.
package closeness
