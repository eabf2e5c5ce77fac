// Package routegraph is the Graph Preprocessor: it turns a partial
// symmetric distance table into an all-pairs shortest-distance matrix and a
// successor matrix usable for path reconstruction.
//
// Algorithm: classical Floyd–Warshall, in-place, with a fixed k→i→j loop
// order for deterministic accumulation — the same shape as the teacher
// library's matrix.FloydWarshall, extended here to also track the
// successor (next-hop) matrix needed to expand a shortest path into its
// concrete city sequence.
//
// Contract:
//   - Input must be square; off-diagonal zero means "no direct edge".
//   - Unreachable pairs are represented by core.Sentinel (1e9) in the
//     output distance matrix, never by +Inf, so downstream arithmetic
//     (summing distances, comparing against thresholds) stays uniform.
package routegraph
