package map_reduce

// Pair is a key with one value, emitted by the map phase or the reduce phase.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type MapFunc[R any, K comparable, V any] func(record R) ([]Pair[K, V], error)

type ReduceFunc[K comparable, V any, O any] func(key K, values []V) ([]Pair[K, O], error)

type Mapper[R any, K comparable, V any] interface {
	Map(record R) ([]Pair[K, V], error)
}

type Reducer[K comparable, V any, O any] interface {
	Reduce(key K, values []V) ([]Pair[K, O], error)
}

// Map lets a plain function satisfy Mapper.
func (f MapFunc[R, K, V]) Map(record R) ([]Pair[K, V], error) {
	return f(record)
}

// Reduce lets a plain function satisfy Reducer.
func (f ReduceFunc[K, V, O]) Reduce(key K, values []V) ([]Pair[K, O], error) {
	return f(key, values)
}

// Grouping maps each key to its values in emission order.
// Ranging over it visits keys in no particular order.
type Grouping[K comparable, V any] map[K][]V
