// Package output renders evaluation results.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	mr "github.com/ctames/mapreduce/map_reduce"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

type entry[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Write renders results in the given format, keeping their order.
func Write[K comparable, V any](w io.Writer, format string, results []mr.Pair[K, V]) error {
	switch format {
	case FormatText, "":
		for _, kv := range results {
			if _, err := fmt.Fprintf(w, "%v %v\n", kv.Key, kv.Value); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries(results))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries(results)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func entries[K comparable, V any](results []mr.Pair[K, V]) []entry[K, V] {
	out := make([]entry[K, V], 0, len(results))
	for _, kv := range results {
		out = append(out, entry[K, V]{Key: kv.Key, Value: kv.Value})
	}
	return out
}
