package transducers

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// Log field keys used by Log.
const (
	FieldIndex   = "index"
	FieldElement = "element"
)

type peekReducer[T any] struct {
	wrapped[T]
	peek  func(index uint64, elem T)
	index uint64
}

type logReducer[T any] struct {
	wrapped[T]
	logger zerolog.Logger
	msg    string
	count  uint64
}

type meterReducer[T any] struct {
	wrapped[T]
	ctx     context.Context
	counter metric.Int64Counter
	opts    []metric.AddOption
}

// Peek returns a transducer that calls peek for each element, and produces the same elements.
// The index is the 0-based index of elem, in the order seen by the stage.
func Peek[T any](peek func(index uint64, elem T)) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &peekReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			peek:    peek,
		}
	}
}

// Log returns a transducer that logs each element to logger at debug level using msg, and
// produces the same elements. Early termination and completion are logged as well.
func Log[T any](logger zerolog.Logger, msg string) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &logReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			logger:  logger,
			msg:     msg,
		}
	}
}

// Meter returns a transducer that adds 1 to counter for each element, and produces the same elements.
// ctx and opts are passed to counter.Add.
func Meter[T any](ctx context.Context, counter metric.Int64Counter, opts ...metric.AddOption) Transducer[T, T] {
	return func(rf Reducer[T]) Reducer[T] {
		return &meterReducer[T]{
			wrapped: wrapped[T]{rf: rf},
			ctx:     ctx,
			counter: counter,
			opts:    opts,
		}
	}
}

func (r *peekReducer[T]) Step(elem T) (StepResult, error) {
	r.peek(r.index, elem)
	r.index++

	return r.rf.Step(elem)
}

func (r *logReducer[T]) Step(elem T) (StepResult, error) {
	index := r.count
	r.count++

	r.logger.Debug().
		Uint64(FieldIndex, index).
		Interface(FieldElement, elem).
		Msg(r.msg)

	res, err := r.rf.Step(elem)
	if err == nil && res == Stop {
		r.logger.Debug().Uint64(FieldElements, r.count).Msg(r.msg + ": stop")
	}

	return res, err
}

func (r *logReducer[T]) Complete() error {
	err := r.rf.Complete()

	r.logger.Debug().Err(err).Uint64(FieldElements, r.count).Msg(r.msg + ": complete")

	return err
}

func (r *meterReducer[T]) Step(elem T) (StepResult, error) {
	r.counter.Add(r.ctx, 1, r.opts...)

	return r.rf.Step(elem)
}
