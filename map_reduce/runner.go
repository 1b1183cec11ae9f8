package map_reduce

// Runner binds a Mapper and a Reducer. It holds no state between runs,
// so one Runner may be shared by concurrent callers.
type Runner[R any, K comparable, V any, O any] struct {
	mapper  Mapper[R, K, V]
	reducer Reducer[K, V, O]
}

func NewRunner[R any, K comparable, V any, O any](m Mapper[R, K, V], r Reducer[K, V, O]) *Runner[R, K, V, O] {
	return &Runner[R, K, V, O]{
		mapper:  m,
		reducer: r,
	}
}

func (r *Runner[R, K, V, O]) Run(records []R) ([]Pair[K, O], error) {
	return Evaluate(records, r.mapper.Map, r.reducer.Reduce)
}

// Evaluate maps every record in order, groups the emitted pairs by key and
// reduces each distinct key exactly once. The order of the returned pairs
// across keys is unspecified; use SortByKey when it matters.
//
// The first failing map or reduce call aborts the run and no results are
// returned.
func Evaluate[R any, K comparable, V any, O any](
	records []R,
	mapFn func(R) ([]Pair[K, V], error),
	reduceFn func(K, []V) ([]Pair[K, O], error),
) ([]Pair[K, O], error) {
	mapped, err := MapPhase(records, mapFn)
	if err != nil {
		return nil, err
	}

	return ReducePhase(Group(mapped), reduceFn)
}

// MapPhase returns the concatenation of mapFn over records, in record order.
func MapPhase[R any, K comparable, V any](records []R, mapFn func(R) ([]Pair[K, V], error)) ([]Pair[K, V], error) {
	var mappedKVs []Pair[K, V]
	for i, record := range records {
		kvs, err := mapFn(record)
		if err != nil {
			return nil, &MapError{Index: i, Err: err}
		}
		mappedKVs = append(mappedKVs, kvs...)
	}

	return mappedKVs, nil
}

// Group folds pairs into a Grouping. Values keep their emission order.
func Group[K comparable, V any](kvs []Pair[K, V]) Grouping[K, V] {
	groups := make(Grouping[K, V])
	for _, kv := range kvs {
		groups[kv.Key] = append(groups[kv.Key], kv.Value)
	}

	return groups
}

// ReducePhase calls reduceFn once per key and concatenates what it returns.
func ReducePhase[K comparable, V any, O any](groups Grouping[K, V], reduceFn func(K, []V) ([]Pair[K, O], error)) ([]Pair[K, O], error) {
	results := make([]Pair[K, O], 0, len(groups))
	for key, values := range groups {
		out, err := reduceFn(key, values)
		if err != nil {
			return nil, &ReduceError{Key: key, Err: err}
		}
		results = append(results, out...)
	}

	return results, nil
}
