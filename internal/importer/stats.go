package importer

import (
	"math"
	"sort"

	"wordbook/internal/storage"
)

// Stats summarizes the words produced by one import.
type Stats struct {
	// Words is the number of words produced, blank rows included.
	Words int `json:"words"`
	// BlankWords is the number of words with no headword.
	BlankWords int `json:"blank_words"`
	// Definitions describes how many definition entries each word carries.
	Definitions CountStats `json:"definitions"`
}

// CountStats contains min, max, mean and p95 of a set of counts.
type CountStats struct {
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
	P95  int     `json:"p95"`
}

// Summarize computes import statistics for words.
func Summarize(words []storage.Word) Stats {
	stats := Stats{Words: len(words)}
	if len(words) == 0 {
		return stats
	}

	counts := make([]int, 0, len(words))
	for _, w := range words {
		if w.Word == "" {
			stats.BlankWords++
		}
		counts = append(counts, len(w.Definitions))
	}
	stats.Definitions = computeCountStats(counts)
	return stats
}

// computeCountStats computes min, max, mean, and p95 from counts.
func computeCountStats(counts []int) CountStats {
	if len(counts) == 0 {
		return CountStats{}
	}

	// Sort for percentile calculation
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	mean := float64(sum) / float64(len(counts))

	p95Index := int(math.Ceil(float64(len(sorted))*0.95)) - 1
	if p95Index < 0 {
		p95Index = 0
	}

	return CountStats{
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		Mean: math.Round(mean*100) / 100, // Round to 2 decimal places
		P95:  sorted[p95Index],
	}
}
