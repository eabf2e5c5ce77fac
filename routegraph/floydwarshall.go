package routegraph

import (
	"fmt"
	"math"

	"github.com/dispatchcraft/parcelopt/core"
)

// none marks "no next hop" in the successor matrix: either i == j or i
// cannot reach j at all.
const none = -1

// ShortestPaths holds the dense all-pairs shortest-distance matrix and the
// successor matrix produced by Preprocess. Both are built once and treated
// as immutable for the lifetime of a solve.
type ShortestPaths struct {
	// Dist is the dense N×N shortest-distance matrix. Unreachable pairs
	// carry core.Sentinel.
	Dist [][]float64

	// Succ is the dense N×N successor matrix: Succ[i][j] is the next hop
	// on a shortest path from i to j, or none when i == j or i cannot
	// reach j.
	Succ [][]int

	n int
}

// Preprocess converts a partial symmetric distance table into a metric
// closure (Dist) and a successor matrix (Succ) via Floyd–Warshall.
//
// Initialization: Dist[i][i] = 0; Dist[i][j] = input[i][j] when a direct
// edge is present (non-zero), otherwise +Inf internally (replaced by
// core.Sentinel before returning); Succ[i][j] = j when a direct edge
// exists, else none.
//
// Complexity: O(n^3) time, O(n^2) space.
func Preprocess(input core.DistanceTable) (*ShortestPaths, error) {
	n := len(input)
	for i, row := range input {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	dist := make([][]float64, n)
	succ := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		succ[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				dist[i][j] = 0
				succ[i][j] = none
			default:
				w := input[i][j]
				if w < 0 {
					return nil, fmt.Errorf("edge (%d,%d): %w", i, j, ErrNegativeWeight)
				}
				if w != input[j][i] {
					return nil, fmt.Errorf("edge (%d,%d) vs (%d,%d): %w", i, j, j, i, ErrAsymmetric)
				}
				if w == 0 {
					dist[i][j] = math.Inf(1)
					succ[i][j] = none
				} else {
					dist[i][j] = w
					succ[i][j] = j
				}
			}
		}
	}

	// Fixed k -> i -> j loop order for deterministic accumulation, mirroring
	// the canonical in-place Floyd-Warshall relaxation: strict improvement
	// only, so ties never flip the chosen successor.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < dist[i][j] {
					dist[i][j] = cand
					succ[i][j] = succ[i][k]
				}
			}
		}
	}

	// Finalize: replace remaining +Inf with the finite sentinel so callers
	// never have to special-case infinities.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.IsInf(dist[i][j], 1) {
				dist[i][j] = core.Sentinel
			}
		}
	}

	return &ShortestPaths{Dist: dist, Succ: succ, n: n}, nil
}

// Expand reconstructs the inclusive node sequence of a shortest path from u
// to v using the successor matrix. Returns ErrUnreachable if Dist[u][v] is
// at or beyond core.Sentinel.
//
// Complexity: O(path length).
func (sp *ShortestPaths) Expand(u, v int) ([]int, error) {
	if sp.Dist[u][v] >= core.Sentinel {
		return nil, fmt.Errorf("expand(%d,%d): %w", u, v, ErrUnreachable)
	}
	if sp.Succ[u][v] == none {
		return []int{u, v}, nil
	}

	path := []int{u}
	cur := u
	for cur != v {
		cur = sp.Succ[cur][v]
		path = append(path, cur)
	}
	return path, nil
}

// N returns the number of cities in the preprocessed graph.
func (sp *ShortestPaths) N() int { return sp.n }
