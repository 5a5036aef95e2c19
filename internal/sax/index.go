package sax

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/go-sod/sax/internal/saxerr"
)

// Record is a word together with the ascending set of positions it occurs at.
type Record struct {
	Word        string
	occurrences *roaring.Bitmap
}

// Positions returns the occurrences in ascending order.
func (r *Record) Positions() []int {
	res := make([]int, 0, r.occurrences.GetCardinality())
	it := r.occurrences.Iterator()
	for it.HasNext() {
		res = append(res, int(it.Next()))
	}
	return res
}

func (r *Record) Frequency() int {
	return int(r.occurrences.GetCardinality())
}

func (r *Record) Contains(pos int) bool {
	return pos >= 0 && r.occurrences.Contains(uint32(pos))
}

// Index maps words to their occurrences and positions back to words.
// Records keep the order in which their word was first added.
type Index struct {
	records   []*Record
	byWord    map[string]int
	byPos     map[int]string
	positions *roaring.Bitmap
}

func NewIndex() *Index {
	return &Index{
		byWord:    make(map[string]int),
		byPos:     make(map[int]string),
		positions: roaring.New(),
	}
}

// IndexFromWords builds an index where the word at row i occurs at
// position i. Empty rows are skipped.
func IndexFromWords(words []string) (*Index, error) {
	idx := NewIndex()
	for i, w := range words {
		if w == "" {
			continue
		}
		if err := idx.Add(w, i); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// Add records that word starts at pos. A position can hold only one word.
func (x *Index) Add(word string, pos int) error {
	if pos < 0 {
		return saxerr.InvalidInput("negative word position %d", pos)
	}
	if prev, ok := x.byPos[pos]; ok {
		return saxerr.InvalidInput("position %d already holds word %q", pos, prev)
	}
	i, ok := x.byWord[word]
	if !ok {
		i = len(x.records)
		x.records = append(x.records, &Record{Word: word, occurrences: roaring.New()})
		x.byWord[word] = i
	}
	x.records[i].occurrences.Add(uint32(pos))
	x.byPos[pos] = word
	x.positions.Add(uint32(pos))
	return nil
}

// ByWord returns nil when word was never added.
func (x *Index) ByWord(word string) *Record {
	i, ok := x.byWord[word]
	if !ok {
		return nil
	}
	return x.records[i]
}

func (x *Index) ByPosition(pos int) (string, bool) {
	w, ok := x.byPos[pos]
	return w, ok
}

func (x *Index) Records() []*Record {
	res := make([]*Record, len(x.records))
	copy(res, x.records)
	return res
}

// Positions returns every occupied position in ascending order.
func (x *Index) Positions() []int {
	res := make([]int, 0, x.positions.GetCardinality())
	it := x.positions.Iterator()
	for it.HasNext() {
		res = append(res, int(it.Next()))
	}
	return res
}

// Len is the number of distinct words.
func (x *Index) Len() int {
	return len(x.records)
}

// Count is the number of occupied positions.
func (x *Index) Count() int {
	return len(x.byPos)
}
