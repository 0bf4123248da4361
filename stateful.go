package transducers

type partitionReducer[T any] struct {
	wrapped[[]T]
	size  int
	all   bool
	group []T
}

type partitionByReducer[T any, K comparable] struct {
	wrapped[[]T]
	key     MapperFunc[T, K]
	group   []T
	lastKey K
}

type takeReducer[T any] struct {
	wrapped[T]
	max   uint64
	taken uint64
}

type takeWhileReducer[T any] struct {
	wrapped[T]
	pred PredicateFunc[T]
}

type takeNthReducer[T any] struct {
	wrapped[T]
	nth   uint64
	index uint64
}

type dropReducer[T any] struct {
	wrapped[T]
	num     uint64
	dropped uint64
}

type dropWhileReducer[T any] struct {
	wrapped[T]
	pred    PredicateFunc[T]
	crossed bool
}

type interposeReducer[T any] struct {
	wrapped[T]
	sep   T
	first bool
}

type dedupeReducer[T any] struct {
	wrapped[T]
	equal func(a T, b T) bool
	last  T
	seen  bool
}

// Partition returns a transducer that groups elements into slices of size elements each.
// If the number of elements is not a multiple of size, the remaining elements are discarded.
// Partition panics if size is not positive.
func Partition[T any](size int) Transducer[T, []T] {
	return partition[T](size, false)
}

// PartitionAll returns a transducer that groups elements into slices of size elements each.
// If the number of elements is not a multiple of size, the remaining elements are produced as
// a final, smaller group.
// PartitionAll panics if size is not positive.
func PartitionAll[T any](size int) Transducer[T, []T] {
	return partition[T](size, true)
}

func partition[T any](size int, all bool) Transducer[T, []T] {
	if size <= 0 {
		panic("partition size must be positive")
	}

	return func(rf Reducer[[]T]) Reducer[T] {
		return &partitionReducer[T]{
			wrapped: wrapped[[]T]{rf: rf},
			size:    size,
			all:     all,
			group:   make([]T, 0, size),
		}
	}
}

// PartitionBy returns a transducer that groups consecutive elements into slices.
// A new group is started whenever key returns a different key than for the previous element.
func PartitionBy[T any, K comparable](key MapperFunc[T, K]) Transducer[T, []T] {
	return func(rf Reducer[[]T]) Reducer[T] {
		return &partitionByReducer[T, K]{
			wrapped: wrapped[[]T]{rf: rf},
			key:     key,
		}
	}
}

// Take returns a transducer that produces the first max elements, and then stops.
func Take[T any](max uint64) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &takeReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			max:     max,
		}
	}
}

// TakeWhile returns a transducer that produces elements while pred returns true.
// It stops at the first element for which pred returns false, without producing that element.
func TakeWhile[T any](pred PredicateFunc[T]) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &takeWhileReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			pred:    pred,
		}
	}
}

// TakeNth returns a transducer that produces every nth element, starting with the first.
// TakeNth panics if nth is 0.
func TakeNth[T any](nth uint64) Transducer[T, T] {
	if nth == 0 {
		panic("nth must be positive")
	}

	return func(rf Reducer[T]) Reducer[T] {
		return &takeNthReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			nth:     nth,
		}
	}
}

// Drop returns a transducer that discards the first num elements, and produces the rest.
func Drop[T any](num uint64) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &dropReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			num:     num,
		}
	}
}

// DropWhile returns a transducer that discards elements while pred returns true.
// Starting with the first element for which pred returns false, all elements are produced.
func DropWhile[T any](pred PredicateFunc[T]) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &dropWhileReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			pred:    pred,
		}
	}
}

// Interpose returns a transducer that produces sep between elements.
func Interpose[T any](sep T) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &interposeReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			sep:     sep,
			first:   true,
		}
	}
}

// Dedupe returns a transducer that discards elements equal to the element produced before them.
func Dedupe[T comparable]() Transducer[T, T] {
	return DedupeFunc(func(a T, b T) bool {
		return a == b
	})
}

// DedupeFunc returns a transducer that discards elements equal to the element produced before them,
// using equal to compare elements.
func DedupeFunc[T any](equal func(a T, b T) bool) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &dedupeReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			equal:   equal,
		}
	}
}

func (r *partitionReducer[T]) Step(elem T) (StepResult, error) {
	r.group = append(r.group, elem)
	if len(r.group) < r.size {
		return Continue, nil
	}

	group := r.group
	r.group = make([]T, 0, r.size)

	return r.rf.Step(group)
}

func (r *partitionReducer[T]) Complete() error {
	if r.all && len(r.group) > 0 {
		group := r.group
		r.group = nil

		if _, err := r.rf.Step(group); err != nil {
			return err
		}
	}

	return r.rf.Complete()
}

func (r *partitionByReducer[T, K]) Step(elem T) (StepResult, error) {
	key, err := r.key(elem)
	if err != nil {
		return Stop, err
	}

	if len(r.group) == 0 || key == r.lastKey {
		r.lastKey = key
		r.group = append(r.group, elem)

		return Continue, nil
	}

	group := r.group
	r.group = []T{elem}
	r.lastKey = key

	return r.rf.Step(group)
}

func (r *partitionByReducer[T, K]) Complete() error {
	if len(r.group) > 0 {
		group := r.group
		r.group = nil

		if _, err := r.rf.Step(group); err != nil {
			return err
		}
	}

	return r.rf.Complete()
}

func (r *takeReducer[T]) Step(elem T) (StepResult, error) {
	if r.taken >= r.max {
		return Stop, nil
	}

	r.taken++

	res, err := r.rf.Step(elem)
	if err != nil {
		return res, err
	}

	if r.taken == r.max {
		return Stop, nil
	}

	return res, nil
}

func (r *takeWhileReducer[T]) Step(elem T) (StepResult, error) {
	match, err := r.pred(elem)
	if err != nil {
		return Stop, err
	}

	if !match {
		return Stop, nil
	}

	return r.rf.Step(elem)
}

func (r *takeNthReducer[T]) Step(elem T) (StepResult, error) {
	index := r.index
	r.index++

	if index%r.nth != 0 {
		return Continue, nil
	}

	return r.rf.Step(elem)
}

func (r *dropReducer[T]) Step(elem T) (StepResult, error) {
	if r.dropped < r.num {
		r.dropped++
		return Continue, nil
	}

	return r.rf.Step(elem)
}

func (r *dropWhileReducer[T]) Step(elem T) (StepResult, error) {
	if !r.crossed {
		match, err := r.pred(elem)
		if err != nil {
			return Stop, err
		}

		if match {
			return Continue, nil
		}

		r.crossed = true
	}

	return r.rf.Step(elem)
}

func (r *interposeReducer[T]) Step(elem T) (StepResult, error) {
	if r.first {
		r.first = false
	} else {
		res, err := r.rf.Step(r.sep)
		if err != nil || res == Stop {
			return res, err
		}
	}

	return r.rf.Step(elem)
}

func (r *dedupeReducer[T]) Step(elem T) (StepResult, error) {
	if r.seen && r.equal(r.last, elem) {
		return Continue, nil
	}

	r.last = elem
	r.seen = true

	return r.rf.Step(elem)
}
