// Package tsops implements the low-level numeric operations behind SAX:
// statistics, z-normalisation, piecewise aggregate approximation and symbol
// mapping.
package tsops

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/go-sod/sax/internal/alphabet"
	"github.com/go-sod/sax/internal/saxerr"
)

// DefaultNormThreshold is the standard deviation below which a subsequence
// is considered flat and left unnormalised.
const DefaultNormThreshold = 0.01

// PAARecord describes one PAA piece in the index space of the original
// series: the real-valued interval it covers and its mean level.
type PAARecord struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Level float64 `json:"level"`
}

// Mean returns NaN for an empty series.
func Mean(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return stat.Mean(series, nil)
}

// StdDev is the corrected sample standard deviation,
// sqrt((n*sum(x^2) - sum(x)^2) / (n*(n-1))). It is NaN for fewer than two
// samples.
func StdDev(series []float64) float64 {
	if len(series) < 2 {
		return math.NaN()
	}
	return stat.StdDev(series, nil)
}

// ZNorm returns a z-normalised copy of series. Series whose standard
// deviation is below threshold (or undefined) are copied unchanged.
func ZNorm(series []float64, threshold float64) []float64 {
	res := make([]float64, len(series))
	sd := StdDev(series)
	if math.IsNaN(sd) || sd < threshold {
		copy(res, series)
		return res
	}
	mean := Mean(series)
	for i, v := range series {
		res[i] = (v - mean) / sd
	}
	return res
}

// PAA reduces series to size values. Piece i covers [i*n/size, (i+1)*n/size];
// samples cut by a fractional boundary contribute in proportion to their
// overlap. The returned records are shifted by offset.
func PAA(series []float64, size int, offset int) ([]float64, []PAARecord, error) {
	n := len(series)
	if size < 1 {
		return nil, nil, saxerr.InvalidParameter("PAA size %d must be positive", size)
	}
	if n < size {
		return nil, nil, saxerr.InvalidParameter("PAA size %d can't be greater than the timeseries size %d", size, n)
	}

	paa := make([]float64, size)
	records := make([]PAARecord, size)
	base := float64(offset)
	if n == size {
		copy(paa, series)
		for i := range paa {
			records[i] = PAARecord{Start: float64(i) + base, End: float64(i+1) + base, Level: paa[i]}
		}
		return paa, records, nil
	}

	pointsPerSegment := float64(n) / float64(size)
	breaks := make([]float64, size+1)
	for i := range breaks {
		breaks[i] = float64(i) * pointsPerSegment
	}
	breaks[size] = float64(n)

	for i := 0; i < size; i++ {
		segStart, segEnd := breaks[i], breaks[i+1]
		fractionStart := math.Ceil(segStart) - segStart
		fractionEnd := segEnd - math.Floor(segEnd)
		fullStart := int(math.Floor(segStart))
		fullEnd := int(math.Ceil(segEnd))

		last := fullEnd - 1
		var sum float64
		for j := fullStart; j < fullEnd; j++ {
			v := series[j]
			if j == fullStart && fractionStart > 0 {
				v *= fractionStart
			}
			if j == last && fractionEnd > 0 {
				v *= fractionEnd
			}
			sum += v
		}
		paa[i] = sum / pointsPerSegment
		records[i] = PAARecord{Start: segStart + base, End: segEnd + base, Level: paa[i]}
	}
	return paa, records, nil
}

// NumToSymbol maps value to the letter of the first region whose upper cut
// exceeds it.
func NumToSymbol(value float64, cuts []float64) byte {
	count := 0
	for count < len(cuts) && cuts[count] <= value {
		count++
	}
	return alphabet.Letters[count]
}

// ToString converts a PAA approximation into a SAX word.
func ToString(paa []float64, cuts []float64) string {
	var b strings.Builder
	b.Grow(len(paa))
	for _, v := range paa {
		b.WriteByte(NumToSymbol(v, cuts))
	}
	return b.String()
}

// SymbolIndex is the region index of a lower-case SAX letter.
func SymbolIndex(symbol byte) int {
	return int(symbol - 'a')
}

// Subseries returns a copy of series[start:end].
func Subseries(series []float64, start, end int) ([]float64, error) {
	if start > end || start < 0 || end > len(series) {
		return nil, saxerr.InvalidInput(
			"unable to extract subseries, series length: %d, start: %d, end: %d", len(series), start, end)
	}
	res := make([]float64, end-start)
	copy(res, series[start:end])
	return res, nil
}
