package transducers

// Transducer wraps a Reducer of elements of type U, returning a Reducer of elements of type T.
//
// A Transducer holds configuration only. Each call creates a new stage with its own state, so the
// same Transducer may be used for any number of pipelines.
type Transducer[T any, U any] func(rf Reducer[U]) Reducer[T]

// Compose returns a transducer that applies first, then second.
// Input elements are seen by first, the elements produced by first are seen by second, and the
// elements produced by second are seen by the wrapped Reducer.
func Compose[T any, U any, V any](first Transducer[T, U], second Transducer[U, V]) Transducer[T, V] {
	return func(rf Reducer[V]) Reducer[T] {
		return first(second(rf))
	}
}

// Chain returns a transducer that applies the given transducers from left to right.
// If no transducers are given, the returned transducer passes all elements through.
func Chain[T any](xfs ...Transducer[T, T]) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		for i := len(xfs) - 1; i >= 0; i-- {
			rf = xfs[i](rf)
		}

		return rf
	}
}
