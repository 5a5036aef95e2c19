package vsm

import (
	"math"
	"testing"
)

func bagOf(label string, words ...string) *WordBag {
	b := NewWordBag(label)
	for _, w := range words {
		b.AddWord(w)
	}
	return b
}

func TestWordBag(t *testing.T) {
	b := bagOf("x", "abc", "abc", "bca")
	b.MergeWith(bagOf("y", "abc", "ccc"))

	expected := map[string]int{"abc": 3, "bca": 1, "ccc": 1}
	got := b.Words()
	if len(got) != len(expected) {
		t.Fatalf("words, got: %v, expected: %v", got, expected)
	}
	for w, c := range expected {
		if got[w] != c {
			t.Errorf("count of %s, got: %d, expected: %d", w, got[w], c)
		}
	}
	got["abc"] = 100
	if b.Words()["abc"] != 3 {
		t.Errorf("Words must return a copy")
	}
	if !b.Contains("ccc") || b.Contains("aaa") || b.Len() != 3 {
		t.Errorf("contains mismatch: %v", b.Words())
	}
}

func TestComputeTFIDF(t *testing.T) {
	bags := []*WordBag{
		bagOf("a", "shared", "onlyA", "onlyA", "onlyA", "ab"),
		bagOf("b", "shared", "ab", "onlyB"),
		bagOf("c", "shared"),
	}
	tfidf := ComputeTFIDF(bags)

	tests := []struct {
		label    string
		word     string
		expected float64
	}{
		{"a", "shared", 0},
		{"b", "shared", 0},
		{"c", "shared", 0},
		{"a", "onlyA", (1 + math.Log(3)) * math.Log10(3)},
		{"b", "onlyA", 0},
		{"a", "ab", math.Log10(1.5)},
		{"b", "ab", math.Log10(1.5)},
		{"c", "ab", 0},
		{"b", "onlyB", math.Log10(3)},
	}
	for _, test := range tests {
		t.Run(test.label+"/"+test.word, func(t *testing.T) {
			got, ok := tfidf[test.label][test.word]
			if !ok {
				t.Fatalf("vocabulary must be dense, %s missing for %s", test.word, test.label)
			}
			if math.Abs(got-test.expected) > 1e-12 {
				t.Errorf("got: %v, expected: %v", got, test.expected)
			}
		})
	}
	for label, weights := range tfidf {
		if len(weights) != 4 {
			t.Errorf("label %s covers %d words, expected: 4", label, len(weights))
		}
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     map[string]float64
		expected float64
	}{
		{name: "same", a: map[string]float64{"x": 1, "y": 2}, b: map[string]float64{"x": 2, "y": 4}, expected: 1},
		{name: "disjoint", a: map[string]float64{"x": 1}, b: map[string]float64{"y": 3}, expected: 0},
		{name: "empty", a: map[string]float64{}, b: map[string]float64{"y": 3}, expected: 0},
		{name: "zero weights", a: map[string]float64{"x": 1}, b: map[string]float64{"x": 0}, expected: 0},
		{name: "partial", a: map[string]float64{"x": 1, "y": 1}, b: map[string]float64{"x": 1}, expected: 1 / math.Sqrt2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Cosine(test.a, test.b)
			if math.Abs(got-test.expected) > 1e-12 {
				t.Errorf("got: %v, expected: %v", got, test.expected)
			}
			if back := Cosine(test.b, test.a); back != got {
				t.Errorf("cosine must be symmetric, got: %v and %v", got, back)
			}
			if got < 0 || got > 1+1e-12 {
				t.Errorf("cosine out of [0, 1]: %v", got)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	bag := bagOf("t", "x", "x", "y")
	got := CosineSimilarity(bag, Weights{"x": 1, "y": 0, "z": 1})
	expected := 2 / (math.Sqrt(5) * math.Sqrt(2))
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("got: %v, expected: %v", got, expected)
	}
	if got := CosineSimilarity(NewWordBag("empty"), Weights{"x": 1}); got != 0 {
		t.Errorf("empty bag, got: %v, expected: 0", got)
	}
}

func TestConfusionMatrix(t *testing.T) {
	m := NewConfusionMatrix([]string{"b", "a", "b", "c"})
	if len(m.Labels) != 3 || m.Labels[0] != "a" || m.Labels[2] != "c" {
		t.Fatalf("labels, got: %v", m.Labels)
	}
	m.Add("a", "b")
	m.Add("a", "b")
	m.Add("c", "c")
	if m.Add("", "a") {
		t.Errorf("unknown predictions must not be tallied")
	}
	if m.Count("a", "b") != 2 || m.Counts[0][1] != 2 || m.Count("c", "c") != 1 || m.Count("b", "a") != 0 {
		t.Errorf("counts, got: %v", m.Counts)
	}
}
