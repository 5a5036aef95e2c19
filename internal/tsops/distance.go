package tsops

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var ErrDimNotEqual = fmt.Errorf("vectors dimension is not equal")

// EuclideanDistance is the unnormalised L2 distance between two equal-length
// sequences.
func EuclideanDistance(vec, vec1 []float64) (float64, error) {
	if len(vec) != len(vec1) {
		return 0.0, ErrDimNotEqual
	}
	if len(vec) == 0 {
		return 0.0, nil
	}
	return floats.Distance(vec, vec1, 2), nil
}
