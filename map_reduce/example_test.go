package map_reduce_test

import (
	"fmt"
	"strings"

	mr "github.com/ctames/mapreduce/map_reduce"
)

func ExampleEvaluate() {
	records := []string{"these are words", "those are words", "lots of words"}

	split := func(s string) ([]mr.Pair[string, int], error) {
		var out []mr.Pair[string, int]
		for _, w := range strings.Fields(s) {
			out = append(out, mr.Pair[string, int]{Key: w, Value: 1})
		}
		return out, nil
	}
	sum := func(word string, counts []int) ([]mr.Pair[string, int], error) {
		total := 0
		for _, c := range counts {
			total += c
		}
		return []mr.Pair[string, int]{{Key: word, Value: total}}, nil
	}

	results, err := mr.Evaluate(records, split, sum)
	if err != nil {
		panic(err)
	}
	for _, kv := range mr.SortByKey(results) {
		fmt.Println(kv.Key, kv.Value)
	}
	// Output:
	// are 2
	// lots 1
	// of 1
	// these 1
	// those 1
	// words 3
}
