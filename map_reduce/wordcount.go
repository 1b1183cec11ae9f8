package map_reduce

import (
	"strings"
)

// WordCountMapper emits (word, 1) for every whitespace separated word.
// With Normalize set, words are lowercased and stripped of surrounding
// punctuation, and words that end up empty are dropped.
type WordCountMapper struct {
	Normalize bool
}

func (m *WordCountMapper) Map(record string) ([]Pair[string, int], error) {
	var kvs []Pair[string, int]
	words := strings.Fields(record)

	for _, word := range words {
		if m.Normalize {
			word = strings.ToLower(strings.Trim(word, ".,!?\"':;()"))
		}
		if word != "" {
			kvs = append(kvs, Pair[string, int]{Key: word, Value: 1})
		}
	}

	return kvs, nil
}

// WordCountReducer sums the counts collected for a word.
type WordCountReducer struct{}

func (r *WordCountReducer) Reduce(key string, values []int) ([]Pair[string, int], error) {
	total := 0
	for _, v := range values {
		total += v
	}

	return []Pair[string, int]{{Key: key, Value: total}}, nil
}

func NewWordCountRunner(normalize bool) *Runner[string, string, int, int] {
	return NewRunner[string, string, int, int](&WordCountMapper{Normalize: normalize}, &WordCountReducer{})
}
