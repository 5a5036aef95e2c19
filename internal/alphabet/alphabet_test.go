package alphabet

import (
	"errors"
	"math"
	"testing"

	"github.com/go-sod/sax/internal/saxerr"
)

func TestNormalCuts(t *testing.T) {
	na := NewNormal()
	tests := []struct {
		name     string
		size     int
		expected []float64
	}{
		{name: "binary", size: 2, expected: []float64{0}},
		{name: "ternary", size: 3, expected: []float64{-0.4307273, 0.4307273}},
		{name: "quaternary", size: 4, expected: []float64{-0.6744898, 0, 0.6744898}},
		{name: "quinary", size: 5, expected: []float64{-0.841621233, -0.253347103, 0.253347103, 0.841621233}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := na.Cuts(test.size)
			if err != nil {
				t.Fatalf("the error should not be returned: %v", err)
			}
			if len(got) != len(test.expected) {
				t.Fatalf("cuts length, got: %d, expected: %d", len(got), len(test.expected))
			}
			for i := range got {
				if math.Abs(got[i]-test.expected[i]) > 1e-6 {
					t.Errorf("cut %d, got: %f, expected: %f", i, got[i], test.expected[i])
				}
			}
		})
	}
}

func TestNormalCutsMonotonic(t *testing.T) {
	na := NewNormal()
	for size := MinSize; size <= na.MaxSize(); size++ {
		cuts, err := na.Cuts(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if len(cuts) != size-1 {
			t.Errorf("size %d, got: %d cuts, expected: %d", size, len(cuts), size-1)
		}
		for i := 1; i < len(cuts); i++ {
			if cuts[i] <= cuts[i-1] {
				t.Errorf("size %d: cuts are not increasing at %d", size, i)
			}
		}
	}
}

func TestNormalInvalidSize(t *testing.T) {
	na := NewNormal()
	for _, size := range []int{-1, 0, 1, 21, 26} {
		if _, err := na.Cuts(size); !errors.Is(err, saxerr.ErrInvalidParameter) {
			t.Errorf("cuts for size %d, got: %v, expected: %v", size, err, saxerr.ErrInvalidParameter)
		}
		if _, err := na.DistanceMatrix(size); !errors.Is(err, saxerr.ErrInvalidParameter) {
			t.Errorf("distance matrix for size %d, got: %v, expected: %v", size, err, saxerr.ErrInvalidParameter)
		}
	}
}

func TestNormalDistanceMatrix(t *testing.T) {
	na := NewNormal()
	for size := MinSize; size <= MaxSize; size++ {
		cuts, _ := na.Cuts(size)
		m, err := na.DistanceMatrix(size)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				if m[i][j] != m[j][i] {
					t.Errorf("size %d: matrix is not symmetric at (%d, %d)", size, i, j)
				}
				if i-j <= 1 && j-i <= 1 {
					if m[i][j] != 0 {
						t.Errorf("size %d: adjacent distance (%d, %d), got: %f, expected: 0", size, i, j, m[i][j])
					}
					continue
				}
				hi, lo := i, j
				if lo > hi {
					hi, lo = lo, hi
				}
				if expected := cuts[hi-1] - cuts[lo]; m[i][j] != expected {
					t.Errorf("size %d: distance (%d, %d), got: %f, expected: %f", size, i, j, m[i][j], expected)
				}
			}
		}
	}
}

func TestCutsAreCopies(t *testing.T) {
	na := NewNormal()
	cuts, _ := na.Cuts(3)
	cuts[0] = 42
	again, _ := na.Cuts(3)
	if again[0] == 42 {
		t.Errorf("cuts table must not be mutable through returned slices")
	}
}
