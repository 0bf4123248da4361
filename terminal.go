package transducers

import "golang.org/x/exp/slices"

// Transduce feeds the elements of src through xf into rf, in order.
// It stops feeding elements as soon as a stage returns Stop, and calls Complete exactly once unless
// a stage fails. It returns the first error returned by a stage.
func Transduce[T any, U any](src []T, xf Transducer[T, U], rf Reducer[U]) error {
	_, err := transduce(src, xf(rf))
	return err
}

// transduce drives rf over src and returns the number of elements fed into rf.
func transduce[T any](src []T, rf Reducer[T]) (int, error) {
	rf.Init()

	fed := 0

	for _, elem := range src {
		fed++

		res, err := rf.Step(elem)
		if err != nil {
			return fed, err
		}

		if res == Stop {
			break
		}
	}

	return fed, rf.Complete()
}

// Reduce feeds the elements of src through xf, folding the resulting elements into accumulator acc,
// returning the final accumulator.
// If a stage fails, it returns the accumulator so far, and the error.
func Reduce[T any, U any, A any](src []T, xf Transducer[T, U], acc A, reduce AccumulatorFunc[U, A]) (A, error) {
	accum := Accumulate(acc, reduce)
	err := Transduce(src, xf, accum)

	return accum.Result(), err
}

// Into feeds the elements of src through xf, and returns the resulting elements in a new slice.
// src is not modified.
func Into[T any, U any](src []T, xf Transducer[T, U]) ([]U, error) {
	result, err := Reduce(src, xf, []U{}, CollectSlice[U]())
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Drain feeds the elements of src through xf, removing each element from src once it has been fed,
// and returns the resulting elements in a new slice.
// If a stage returns Stop, the elements not yet fed remain in src.
func Drain[T any, U any](src *[]T, xf Transducer[T, U]) ([]U, error) {
	accum := Accumulate([]U{}, CollectSlice[U]())

	fed, err := transduce(*src, xf(accum))

	*src = slices.Delete(*src, 0, fed)

	if err != nil {
		return nil, err
	}

	return accum.Result(), nil
}

// Count feeds the elements of src through xf, and returns the number of resulting elements.
func Count[T any, U any](src []T, xf Transducer[T, U]) (uint64, error) {
	return Reduce(src, xf, uint64(0), func(count uint64, _ U) (uint64, error) {
		return count + 1, nil
	})
}
