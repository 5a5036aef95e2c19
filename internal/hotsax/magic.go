package hotsax

import (
	"sort"

	"github.com/go-sod/sax/internal/sax"
)

// MagicEntry pairs a word with the number of positions it occurs at.
type MagicEntry struct {
	Word      string
	Frequency int
}

// MagicArray orders the index words from rarest to most frequent, breaking
// ties by word.
func MagicArray(idx *sax.Index) []MagicEntry {
	records := idx.Records()
	res := make([]MagicEntry, 0, len(records))
	for _, r := range records {
		res = append(res, MagicEntry{Word: r.Word, Frequency: r.Frequency()})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Frequency != res[j].Frequency {
			return res[i].Frequency < res[j].Frequency
		}
		return res[i].Word < res[j].Word
	})
	return res
}
