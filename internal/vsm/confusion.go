package vsm

import "sort"

// ConfusionMatrix tallies Counts[predicted][actual] over a sorted label set.
type ConfusionMatrix struct {
	Labels []string `json:"labels"`
	Counts [][]int  `json:"counts"`
	pos    map[string]int
}

// NewConfusionMatrix sorts and deduplicates labels.
func NewConfusionMatrix(labels []string) *ConfusionMatrix {
	set := make(map[string]struct{}, len(labels))
	uniq := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := set[l]; ok {
			continue
		}
		set[l] = struct{}{}
		uniq = append(uniq, l)
	}
	sort.Strings(uniq)

	m := &ConfusionMatrix{Labels: uniq, Counts: make([][]int, len(uniq)), pos: make(map[string]int, len(uniq))}
	for i, l := range uniq {
		m.Counts[i] = make([]int, len(uniq))
		m.pos[l] = i
	}
	return m
}

// Add tallies one prediction. Labels outside the matrix are ignored.
func (m *ConfusionMatrix) Add(predicted, actual string) bool {
	p, ok := m.pos[predicted]
	if !ok {
		return false
	}
	a, ok := m.pos[actual]
	if !ok {
		return false
	}
	m.Counts[p][a]++
	return true
}

func (m *ConfusionMatrix) Count(predicted, actual string) int {
	p, ok := m.pos[predicted]
	if !ok {
		return 0
	}
	a, ok := m.pos[actual]
	if !ok {
		return 0
	}
	return m.Counts[p][a]
}
