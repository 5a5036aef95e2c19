// Package node runs the SAX, HOT-SAX and SAX-VSM pipelines on tabular
// inputs, validating parameters and rows before any work is done.
package node

import (
	"math"

	"github.com/go-sod/sax/internal/alphabet"
	"github.com/go-sod/sax/internal/saxerr"
)

const (
	NameSAX    = "sax"
	NameHotSAX = "hotsax"
	NameVSM    = "vsm"
)

// Point is one row of a (timestamp, value) table.
type Point struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

type Series []Point

func (s Series) Values() []float64 {
	res := make([]float64, len(s))
	for i, p := range s {
		res[i] = p.Value
	}
	return res
}

func (s Series) Timestamps() []string {
	res := make([]string, len(s))
	for i, p := range s {
		res[i] = p.Timestamp
	}
	return res
}

func (s Series) Validate() error {
	if len(s) == 0 {
		return saxerr.InvalidInput("empty series")
	}
	for i, p := range s {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return saxerr.InvalidInput("row %d: value %v is not a finite number", i, p.Value)
		}
	}
	return nil
}

type Option func(*Node)

func WithAlphabet(a alphabet.Alphabet) Option {
	return func(n *Node) {
		n.alphabet = a
	}
}

type Node struct {
	alphabet alphabet.Alphabet
}

func New(opts ...Option) *Node {
	n := &Node{}
	for _, f := range opts {
		f(n)
	}
	if n.alphabet == nil {
		n.alphabet = alphabet.NewNormal()
	}
	return n
}
