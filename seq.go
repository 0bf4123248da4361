package transducers

import "iter"

// TransduceSeq returns a sequence of the elements produced by feeding the elements of seq through xf.
//
// Elements are pulled from seq one at a time, and only when all elements produced for the previous
// element have been yielded. The pipeline is completed when seq is exhausted or a stage returns Stop,
// and the elements produced by Complete are yielded.
// If a stage fails, the error is yielded once together with the zero value of U, and the sequence ends.
// Elements produced for the element that caused the error are not yielded.
//
// If the consumer stops the iteration, the pipeline is abandoned without calling Complete.
func TransduceSeq[T any, U any](seq iter.Seq[T], xf Transducer[T, U]) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		var zero U

		buf := []U{}

		rf := xf(&ReducerFuncs[U]{
			StepFunc: func(elem U) (StepResult, error) {
				buf = append(buf, elem)
				return Continue, nil
			},
		})

		flush := func() bool {
			for i, elem := range buf {
				buf[i] = zero

				if !yield(elem, nil) {
					return false
				}
			}

			buf = buf[:0]

			return true
		}

		rf.Init()

		for elem := range seq {
			res, err := rf.Step(elem)
			if err != nil {
				yield(zero, err)
				return
			}

			if !flush() {
				return
			}

			if res == Stop {
				break
			}
		}

		if err := rf.Complete(); err != nil {
			yield(zero, err)
			return
		}

		flush()
	}
}

// CollectSeq returns the elements of seq in a slice.
// It stops at the first error, returning the elements so far, and the error.
func CollectSeq[U any](seq iter.Seq2[U, error]) ([]U, error) {
	result := []U{}

	for elem, err := range seq {
		if err != nil {
			return result, err
		}

		result = append(result, elem)
	}

	return result, nil
}
