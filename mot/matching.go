package mot

import (
	"sort"

	"github.com/arthurkushman/go-hungarian"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MatchingAlgorithm is for algorithm type for matching detections to tracks
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmGreedy processes tracks in ascending order of their
	// minimum distance to any detection and pairs each with the closest
	// detection, skipping rows and columns already consumed. The per-row
	// argmin is taken over the full row, not only over still-unused columns,
	// so a later row whose closest detection is already taken simply goes
	// unmatched. This is the default.
	MatchingAlgorithmGreedy MatchingAlgorithm = iota
	// MatchingAlgorithmHungarian uses the Hungarian algorithm (Kuhn-Munkres)
	// for minimum-cost assignment. Produces different pairings than the
	// greedy default whenever the greedy choice is suboptimal, so it is
	// strictly opt-in.
	MatchingAlgorithmHungarian
)

// greedyAssignment returns consumed (row, col) pairs for the given distance
// matrix. Rows with equal minimum distance keep their relative order, which
// is why the sort must be stable.
func greedyAssignment(d *mat.Dense) [][2]int {
	numRows, numCols := d.Dims()
	if numRows == 0 || numCols == 0 {
		return nil
	}

	rowMins := make([]float64, numRows)
	argmins := make([]int, numRows)
	for i := 0; i < numRows; i++ {
		row := d.RawRowView(i)
		rowMins[i] = floats.Min(row)
		argmins[i] = floats.MinIdx(row)
	}

	order := make([]int, numRows)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rowMins[order[i]] < rowMins[order[j]]
	})

	usedRows := make(map[int]struct{}, numRows)
	usedCols := make(map[int]struct{}, numCols)
	pairs := make([][2]int, 0, numRows)
	for _, row := range order {
		col := argmins[row]
		if _, ok := usedRows[row]; ok {
			continue
		}
		if _, ok := usedCols[col]; ok {
			continue
		}
		usedRows[row] = struct{}{}
		usedCols[col] = struct{}{}
		pairs = append(pairs, [2]int{row, col})
	}
	return pairs
}

// hungarianAssignment returns (row, col) pairs from a minimum-cost assignment
// over the distance matrix. Rectangular matrices are padded to square with a
// cost larger than any real entry; pairs involving padding are discarded.
func hungarianAssignment(d *mat.Dense) [][2]int {
	numRows, numCols := d.Dims()
	if numRows == 0 || numCols == 0 {
		return nil
	}

	size := maxInt(numRows, numCols)
	padValue := floats.Max(d.RawMatrix().Data)*2.0 + 1.0
	padded := make([][]float64, size)
	for i := 0; i < size; i++ {
		padded[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			if i < numRows && j < numCols {
				padded[i][j] = d.At(i, j)
			} else {
				padded[i][j] = padValue
			}
		}
	}

	assignments := hungarian.SolveMin(padded)
	pairs := make([][2]int, 0, numRows)
	for row, colMap := range assignments {
		for col := range colMap {
			if row < numRows && col < numCols {
				pairs = append(pairs, [2]int{row, col})
			}
			break
		}
	}
	// Map iteration order is random; keep output deterministic
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i][0] < pairs[j][0]
	})
	return pairs
}
