// Package vsm implements the SAX-VSM classifier: series become bags of SAX
// words, classes become TF-IDF weight vectors and test series are assigned
// the class with the highest cosine similarity.
package vsm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

type WordBag struct {
	Label string
	words map[string]int
}

func NewWordBag(label string) *WordBag {
	return &WordBag{Label: label, words: make(map[string]int)}
}

func (b *WordBag) AddWord(word string) {
	b.words[word]++
}

// MergeWith adds the counts of other into b.
func (b *WordBag) MergeWith(other *WordBag) {
	for w, c := range other.words {
		b.words[w] += c
	}
}

// Words returns a copy of the word counts.
func (b *WordBag) Words() map[string]int {
	res := make(map[string]int, len(b.words))
	for w, c := range b.words {
		res[w] = c
	}
	return res
}

func (b *WordBag) Contains(word string) bool {
	_, ok := b.words[word]
	return ok
}

// Len is the number of distinct words.
func (b *WordBag) Len() int {
	return len(b.words)
}

// Weights maps a word to its TF-IDF weight within one class.
type Weights map[string]float64

// ComputeTFIDF weights every word of the corpus vocabulary for every bag.
// Words missing from a bag or present in all bags weigh zero.
func ComputeTFIDF(bags []*WordBag) map[string]Weights {
	docs := float64(len(bags))
	docFreq := make(map[string]int)
	for _, b := range bags {
		for w := range b.words {
			docFreq[w]++
		}
	}

	res := make(map[string]Weights, len(bags))
	for _, b := range bags {
		weights := make(Weights, len(docFreq))
		for w, df := range docFreq {
			count, ok := b.words[w]
			if !ok || df == len(bags) {
				weights[w] = 0
				continue
			}
			tf := 1 + math.Log(float64(count))
			idf := math.Log10(docs / float64(df))
			weights[w] = tf * idf
		}
		res[b.Label] = weights
	}
	return res
}

// Cosine is the cosine similarity of two sparse vectors. Missing keys are
// zeros; a zero vector yields 0.
func Cosine(a, b map[string]float64) float64 {
	keys := sortedKeys(a, b)
	va := make([]float64, len(keys))
	vb := make([]float64, len(keys))
	for i, k := range keys {
		va[i] = a[k]
		vb[i] = b[k]
	}
	na, nb := floats.Norm(va, 2), floats.Norm(vb, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(va, vb) / (na * nb)
}

func sortedKeys(maps ...map[string]float64) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, m := range maps {
		for k := range m {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// CosineSimilarity compares the raw word counts of bag against a class
// weight vector.
func CosineSimilarity(bag *WordBag, weights Weights) float64 {
	counts := make(map[string]float64, len(bag.words))
	for w, c := range bag.words {
		counts[w] = float64(c)
	}
	return Cosine(counts, weights)
}
