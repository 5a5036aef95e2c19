// Package alphabet provides breakpoint tables that partition the real line
// into equiprobable regions, one symbol per region.
package alphabet

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/go-sod/sax/internal/saxerr"
)

const (
	MinSize = 2
	MaxSize = 20
)

// Letters holds the symbols in region order.
const Letters = "abcdefghijklmnopqrstuvwxyz"

type Alphabet interface {
	MaxSize() int
	Cuts(size int) ([]float64, error)
	DistanceMatrix(size int) ([][]float64, error)
}

var _ Alphabet = (*Normal)(nil)

// Normal cuts the real line at the standard normal quantiles i/a, i=1..a-1.
type Normal struct {
	cuts     [MaxSize + 1][]float64
	distance [MaxSize + 1][][]float64
}

func NewNormal() *Normal {
	n := &Normal{}
	for size := MinSize; size <= MaxSize; size++ {
		cuts := make([]float64, size-1)
		for i := 1; i < size; i++ {
			cuts[i-1] = distuv.UnitNormal.Quantile(float64(i) / float64(size))
		}
		n.cuts[size] = cuts
		n.distance[size] = distanceMatrix(cuts)
	}
	return n
}

func (n *Normal) MaxSize() int {
	return MaxSize
}

func (n *Normal) Cuts(size int) ([]float64, error) {
	if err := Validate(size); err != nil {
		return nil, err
	}
	cuts := make([]float64, len(n.cuts[size]))
	copy(cuts, n.cuts[size])
	return cuts, nil
}

func (n *Normal) DistanceMatrix(size int) ([][]float64, error) {
	if err := Validate(size); err != nil {
		return nil, err
	}
	src := n.distance[size]
	m := make([][]float64, len(src))
	for i := range src {
		m[i] = make([]float64, len(src[i]))
		copy(m[i], src[i])
	}
	return m, nil
}

// Validate reports whether size is a supported alphabet size.
func Validate(size int) error {
	if size < MinSize || size > MaxSize {
		return saxerr.InvalidParameter("alphabet size %d is out of [%d, %d]", size, MinSize, MaxSize)
	}
	return nil
}

// Adjacent symbols are at distance zero, others at the width of the regions
// lying strictly between them.
func distanceMatrix(cuts []float64) [][]float64 {
	size := len(cuts) + 1
	m := make([][]float64, size)
	for i := range m {
		m[i] = make([]float64, size)
		for j := range m[i] {
			if i-j > 1 {
				m[i][j] = cuts[i-1] - cuts[j]
			} else if j-i > 1 {
				m[i][j] = cuts[j-1] - cuts[i]
			}
		}
	}
	return m
}
