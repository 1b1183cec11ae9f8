package map_reduce

import (
	"errors"
	"fmt"
)

var (
	ErrMap    = errors.New("mapping error")
	ErrReduce = errors.New("reduce error")
)

// MapError reports the record whose map call failed.
type MapError struct {
	Index int
	Err   error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("mapping error on record %d: %v", e.Index, e.Err)
}

func (e *MapError) Unwrap() error { return e.Err }

func (e *MapError) Is(target error) bool { return target == ErrMap }

// ReduceError reports the key whose reduce call failed.
type ReduceError struct {
	Key any
	Err error
}

func (e *ReduceError) Error() string {
	return fmt.Sprintf("reduce error for key %v: %v", e.Key, e.Err)
}

func (e *ReduceError) Unwrap() error { return e.Err }

func (e *ReduceError) Is(target error) bool { return target == ErrReduce }
