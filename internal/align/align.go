// Package align joins time series sampled at slightly different floating
// point times and locates the samples nearest to reference values.
package align

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultKeyScale keeps four decimal digits of the time
const DefaultKeyScale = 10000

// TimeKey quantizes t to an integer join key. The scaled time is rounded to
// one decimal and then truncated toward zero, so 1.00005 and 1.00004 share
// key 10000 while 1.0002 maps to 10002.
func TimeKey(t, scale float64) int64 {
	return int64(math.Round(t*scale*10) / 10)
}

// Pair links a left row to a right row with the same key
type Pair struct {
	Left  int
	Right int
}

// JoinReport describes what an inner join kept and what it dropped
type JoinReport struct {
	LeftRows  int
	RightRows int
	// Matched is the number of joined rows, including fan-out from
	// duplicate keys
	Matched      int
	LeftDropped  int
	RightDropped int
	// LeftDuplicateKeys and RightDuplicateKeys count keys that occur more
	// than once within one side
	LeftDuplicateKeys  int
	RightDuplicateKeys int
}

// FansOut reports whether duplicate keys multiplied rows
func (r JoinReport) FansOut() bool {
	return r.LeftDuplicateKeys > 0 || r.RightDuplicateKeys > 0
}

// JoinOnTime performs an inner join of two time columns on TimeKey. Pairs
// follow left row order; within one left row, right rows keep their order.
// Rows without a partner are dropped and only counted in the report.
func JoinOnTime(left, right []float64, scale float64) ([]Pair, JoinReport) {
	report := JoinReport{LeftRows: len(left), RightRows: len(right)}

	rightByKey := make(map[int64][]int, len(right))
	for i, t := range right {
		k := TimeKey(t, scale)
		rightByKey[k] = append(rightByKey[k], i)
	}
	for _, rows := range rightByKey {
		if len(rows) > 1 {
			report.RightDuplicateKeys++
		}
	}

	leftKeys := make(map[int64]int, len(left))
	rightUsed := make([]bool, len(right))
	var pairs []Pair
	for i, t := range left {
		k := TimeKey(t, scale)
		leftKeys[k]++
		if leftKeys[k] == 2 {
			report.LeftDuplicateKeys++
		}

		rows, ok := rightByKey[k]
		if !ok {
			report.LeftDropped++
			continue
		}
		for _, j := range rows {
			pairs = append(pairs, Pair{Left: i, Right: j})
			rightUsed[j] = true
		}
	}
	for _, used := range rightUsed {
		if !used {
			report.RightDropped++
		}
	}
	report.Matched = len(pairs)

	return pairs, report
}

// ErrEmpty is returned when a lookup is asked of an empty column
var ErrEmpty = errors.New("align: empty column")

// Match is the result of a nearest-value lookup
type Match struct {
	Index    int
	Value    float64
	Distance float64
	// Clamped is set when the target lies outside the sampled range and the
	// nearest endpoint was returned
	Clamped bool
}

// Nearest returns the row whose value is closest to target. Ties go to the
// lowest index.
func Nearest(values []float64, target float64) (Match, error) {
	if len(values) == 0 {
		return Match{}, ErrEmpty
	}

	dist := make([]float64, len(values))
	for i, v := range values {
		dist[i] = math.Abs(v - target)
	}
	idx := floats.MinIdx(dist)

	return Match{
		Index:    idx,
		Value:    values[idx],
		Distance: dist[idx],
		Clamped:  target < floats.Min(values) || target > floats.Max(values),
	}, nil
}
