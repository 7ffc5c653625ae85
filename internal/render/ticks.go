package render

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// LogTicks returns i*10^k for every k in [minPow10, maxPow10] and i in
// [minI, maxI], ordered by k then i.
func LogTicks(minPow10, maxPow10, minI, maxI int) []float64 {
	var ticks []float64
	for k := minPow10; k <= maxPow10; k++ {
		for i := minI; i <= maxI; i++ {
			ticks = append(ticks, float64(i)*math.Pow(10, float64(k)))
		}
	}
	return ticks
}

// LinTicks returns n evenly spaced values from min to max inclusive
func LinTicks(min, max float64, n int) []float64 {
	if n < 2 {
		return []float64{min}
	}
	ticks := make([]float64, n)
	for k := 0; k < n; k++ {
		ticks[k] = min + (max-min)*float64(k)/float64(n-1)
	}
	return ticks
}

// concat joins tick lists
func concat(lists ...[]float64) []float64 {
	var out []float64
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// tickMarker labels the major ticks and leaves the minor ones blank. Minor
// values that coincide with a major tick are dropped.
func tickMarker(major, minor []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	isMajor := make(map[float64]bool, len(major))
	for _, v := range major {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
		isMajor[v] = true
	}
	for _, v := range minor {
		if !isMajor[v] {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return plot.ConstantTicks(ticks)
}
