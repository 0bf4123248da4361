package transducers

import (
	"context"
	"errors"
	"iter"
)

// ProducerFunc returns a channel of elements for a stream.
// Producers must stop producing elements and close the channel when ctx is canceled.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// ErrStopped is the error used to cancel an upstream producer's context to indicate that a stage
// returned Stop, and no more elements are needed.
// ErrStopped is never returned by Each or Collect.
var ErrStopped = errors.New("stopped")

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// ProduceSeq returns a producer that produces the elements of seq, in order.
// seq may be infinite, it is only consumed until ctx is canceled.
func ProduceSeq[T any](seq iter.Seq[T]) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for elem := range seq {
				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// ProduceChannel returns a producer that produces the elements received through the given channels, in order.
func ProduceChannel[T any](channels ...<-chan T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, ch := range channels {
				for elem := range ch {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}

// Join returns a producer that produces the elements produced by the given producers, in order.
func Join[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		channels := make([]<-chan T, len(producers))
		for i, prod := range producers {
			channels[i] = prod(ctx, cancel)
		}

		return ProduceChannel(channels...)(ctx, cancel)
	}
}

// TransduceProducer returns a producer that feeds the elements produced by prod through xf, in order,
// and produces the resulting elements.
//
// When a stage returns Stop, prod's context is canceled using ErrStopped, and the pipeline is completed.
// Stages downstream of the returned producer are not affected by that, and still complete.
// When a stage fails, the stream's context is canceled using the error.
func TransduceProducer[T any, U any](prod ProducerFunc[T], xf Transducer[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan U {
		prodCtx, cancelProd := context.WithCancelCause(ctx)

		ch := prod(prodCtx, cancel)

		outCh := make(chan U)

		rf := xf(&ReducerFuncs[U]{
			StepFunc: func(elem U) (StepResult, error) {
				select {
				case outCh <- elem:
					return Continue, nil

				case <-ctx.Done():
					return Stop, context.Cause(ctx)
				}
			},
		})

		go func() {
			defer cancelProd(nil)

			defer close(outCh)

			if err := drive(ctx, ch, rf); err != nil {
				// a downstream stage stopped, which only ends this producer
				if !errors.Is(err, ErrStopped) {
					cancel(err)
				}

				return
			}

			cancelProd(ErrStopped)
		}()

		return outCh
	}
}

// drive feeds the elements received through ch into rf, until ch is closed or rf returns Stop,
// and then completes rf.
func drive[T any](ctx context.Context, ch <-chan T, rf Reducer[T]) error {
	rf.Init()

	for elem := range ch {
		if contextDone(ctx) {
			return context.Cause(ctx)
		}

		res, err := rf.Step(elem)
		if err != nil {
			return err
		}

		if res == Stop {
			break
		}
	}

	if contextDone(ctx) {
		return context.Cause(ctx)
	}

	return rf.Complete()
}

// Each calls each for each element produced by prod.
// If prod or each cancel the stream's context, it returns cause of the cancelation.
func Each[T any](ctx context.Context, prod ProducerFunc[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ch := prod(ctx, cancel)

	index := uint64(0)

	for elem := range ch {
		each(ctx, cancel, elem, index)

		if contextDone(ctx) {
			break
		}

		index++
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrStopped) {
		err = nil
	}

	return err
}

// Collect returns the elements produced by prod in a slice.
// If prod or a consumer cancel the stream's context, it returns the elements so far, and the
// cause of the cancelation.
func Collect[T any](ctx context.Context, prod ProducerFunc[T]) ([]T, error) {
	result := []T{}

	err := Each(ctx, prod, func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) {
		result = append(result, elem)
	})

	return result, err
}
