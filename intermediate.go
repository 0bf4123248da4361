package transducers

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
type MapperFunc[T any, U any] func(elem T) (U, error)

// IndexedMapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order seen by the stage.
type IndexedMapperFunc[T any, U any] func(index uint64, elem T) (U, error)

// PredicateFunc returns true if elem matches a predicate.
type PredicateFunc[T any] func(elem T) (bool, error)

// KeeperFunc maps element elem to type U, and returns false if there is no result for elem.
type KeeperFunc[T any, U any] func(elem T) (U, bool, error)

// IndexedKeeperFunc maps element elem to type U, and returns false if there is no result for elem.
// The index is the 0-based index of elem, in the order seen by the stage.
type IndexedKeeperFunc[T any, U any] func(index uint64, elem T) (U, bool, error)

// FlatMapperFunc maps element elem to any number of elements of type U.
type FlatMapperFunc[T any, U any] func(elem T) ([]U, error)

type mapReducer[T any, U any] struct {
	wrapped[U]
	mapp MapperFunc[T, U]
}

type mapIndexedReducer[T any, U any] struct {
	wrapped[U]
	mapp  IndexedMapperFunc[T, U]
	index uint64
}

type flatMapReducer[T any, U any] struct {
	wrapped[U]
	mapp FlatMapperFunc[T, U]
}

type filterReducer[T any] struct {
	wrapped[T]
	pred      PredicateFunc[T]
	inclusive bool
}

type keepReducer[T any, U any] struct {
	wrapped[U]
	keep IndexedKeeperFunc[T, U]
	index uint64
}

type replaceReducer[T comparable] struct {
	wrapped[T]
	replacements map[T]T
}

// FuncMapper returns a mapper that calls mapp for each element, and never fails.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T) (U, error) {
		return mapp(elem), nil
	}
}

// FuncPredicate returns a predicate that calls pred for each element, and never fails.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(elem T) (bool, error) {
		return pred(elem), nil
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T) (T, error) {
		return elem, nil
	}
}

// Map returns a transducer that calls mapp for each element, mapping it to type U.
func Map[T any, U any](mapp MapperFunc[T, U]) Transducer[T, U] {
	return func(rf Reducer[U]) Reducer[T] {
		return &mapReducer[T, U]{
			wrapped: wrapped[U]{rf: rf},
			mapp:    mapp,
		}
	}
}

// MapIndexed returns a transducer that calls mapp for each element, mapping it to type U.
func MapIndexed[T any, U any](mapp IndexedMapperFunc[T, U]) Transducer[T, U] {
	return func(rf Reducer[U]) Reducer[T] {
		return &mapIndexedReducer[T, U]{
			wrapped: wrapped[U]{rf: rf},
			mapp:    mapp,
		}
	}
}

// FlatMap returns a transducer that calls mapp for each element, and produces all elements
// returned by mapp, in order.
func FlatMap[T any, U any](mapp FlatMapperFunc[T, U]) Transducer[T, U] {
	return func(rf Reducer[U]) Reducer[T] {
		return &flatMapReducer[T, U]{
			wrapped: wrapped[U]{rf: rf},
			mapp:    mapp,
		}
	}
}

// Cat returns a transducer that produces the elements of each slice it receives, in order.
func Cat[T any]() Transducer[[]T, T] {
	return FlatMap(FlatMapperFunc[[]T, T](Identity[[]T]()))
}

// Filter returns a transducer that only produces elements for which pred returns true.
func Filter[T any](pred PredicateFunc[T]) Transducer[T, T] {
	return filter(pred, true)
}

// Remove returns a transducer that only produces elements for which pred returns false.
func Remove[T any](pred PredicateFunc[T]) Transducer[T, T] {
	return filter(pred, false)
}

func filter[T any](pred PredicateFunc[T], inclusive bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &filterReducer[T]{
			wrapped:   wrapped[T]{rf: rf},
			pred:      pred,
			inclusive: inclusive,
		}
	}
}

// Keep returns a transducer that calls keep for each element, and only produces the results
// for which keep returns true.
func Keep[T any, U any](keep KeeperFunc[T, U]) Transducer[T, U] {
	return KeepIndexed(func(_ uint64, elem T) (U, bool, error) {
		return keep(elem)
	})
}

// KeepIndexed returns a transducer that calls keep for each element, and only produces the results
// for which keep returns true.
func KeepIndexed[T any, U any](keep IndexedKeeperFunc[T, U]) Transducer[T, U] {
	return func(rf Reducer[U]) Reducer[T] {
		return &keepReducer[T, U]{
			wrapped: wrapped[U]{rf: rf},
			keep:    keep,
		}
	}
}

// Replace returns a transducer that substitutes elements that are keys in replacements with
// their values. Other elements are produced unchanged.
// replacements must not be modified while a pipeline is running.
func Replace[T comparable](replacements map[T]T) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &replaceReducer[T]{
			wrapped:      wrapped[T]{rf: rf},
			replacements: replacements,
		}
	}
}

func (r *mapReducer[T, U]) Step(elem T) (StepResult, error) {
	outElem, err := r.mapp(elem)
	if err != nil {
		return Stop, err
	}

	return r.rf.Step(outElem)
}

func (r *mapIndexedReducer[T, U]) Step(elem T) (StepResult, error) {
	index := r.index
	r.index++

	outElem, err := r.mapp(index, elem)
	if err != nil {
		return Stop, err
	}

	return r.rf.Step(outElem)
}

func (r *flatMapReducer[T, U]) Step(elem T) (StepResult, error) {
	outElems, err := r.mapp(elem)
	if err != nil {
		return Stop, err
	}

	for _, outElem := range outElems {
		res, err := r.rf.Step(outElem)
		if err != nil || res == Stop {
			return res, err
		}
	}

	return Continue, nil
}

func (r *filterReducer[T]) Step(elem T) (StepResult, error) {
	match, err := r.pred(elem)
	if err != nil {
		return Stop, err
	}

	if match != r.inclusive {
		return Continue, nil
	}

	return r.rf.Step(elem)
}

func (r *keepReducer[T, U]) Step(elem T) (StepResult, error) {
	index := r.index
	r.index++

	outElem, ok, err := r.keep(index, elem)
	if err != nil {
		return Stop, err
	}

	if !ok {
		return Continue, nil
	}

	return r.rf.Step(outElem)
}

func (r *replaceReducer[T]) Step(elem T) (StepResult, error) {
	if replacement, ok := r.replacements[elem]; ok {
		elem = replacement
	}

	return r.rf.Step(elem)
}
