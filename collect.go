package transducers

// A DuplicateKeyError is returned by CollectMapNoDuplicateKeys to indicate that a key could not be
// added to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
type AccumulatorFunc[T any, A any] func(acc A, elem T) (A, error)

// Accumulator is a Reducer that folds elements into an accumulator.
type Accumulator[T any, A any] struct {
	acc        A
	accumulate AccumulatorFunc[T, A]
}

var _ Reducer[int] = &Accumulator[int, []int]{}

// Accumulate returns a Reducer that folds elements into acc using accumulate.
func Accumulate[T any, A any](acc A, accumulate AccumulatorFunc[T, A]) *Accumulator[T, A] {
	return &Accumulator[T, A]{
		acc:        acc,
		accumulate: accumulate,
	}
}

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(acc []T, elem T) ([]T, error) {
		return append(acc, elem), nil
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(acc map[K]V, elem T) (map[K]V, error) {
		if acc == nil {
			acc = map[K]V{}
		}

		acc[key(elem)] = value(elem)

		return acc, nil
	}
}

// CollectMapNoDuplicateKeys returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the accumulator fails with a DuplicateKeyError.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(acc map[K]V, elem T) (map[K]V, error) {
		if acc == nil {
			acc = map[K]V{}
		}

		key := key(elem)

		if _, ok := acc[key]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     key,
			}
		}

		acc[key] = value(elem)

		return acc, nil
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key Function[T, K], value Function[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(acc map[K][]V, elem T) (map[K][]V, error) {
		if acc == nil {
			acc = map[K][]V{}
		}

		key := key(elem)
		acc[key] = append(acc[key], value(elem))

		return acc, nil
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred Function[T, bool], value Function[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(pred, value)
}

// Init implements Reducer.
func (a *Accumulator[T, A]) Init() {}

// Step implements Reducer.
func (a *Accumulator[T, A]) Step(elem T) (StepResult, error) {
	acc, err := a.accumulate(a.acc, elem)
	if err != nil {
		return Stop, err
	}

	a.acc = acc

	return Continue, nil
}

// Complete implements Reducer.
func (a *Accumulator[T, A]) Complete() error {
	return nil
}

// Result returns the accumulator.
func (a *Accumulator[T, A]) Result() A {
	return a.acc
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
