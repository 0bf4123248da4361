package transducers

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Log field keys used by Pipe.
const (
	FieldPipeID   = "pipe_id"
	FieldPipe     = "pipe"
	FieldElements = "elements"
)

var (
	// ErrPipeClosed is returned by Pipe.Send and Pipe.Close after Pipe.Close has been called.
	ErrPipeClosed = errors.New("pipe closed")

	// ErrPipeDone is returned by Pipe.Send after the pipeline has ended, because a stage returned
	// Stop or failed.
	ErrPipeDone = errors.New("pipe done")
)

// Pipe runs a pipeline on its own goroutine, for elements sent from other goroutines.
//
// Elements passed to Send are fed into the pipeline in the order in which they were sent.
// The resulting elements are delivered through the channel returned by Out, which is closed once the
// pipeline has completed or failed. Receivers must drain Out, or the pipeline blocks.
type Pipe[T any, U any] struct {
	id     string
	logger zerolog.Logger

	in   chan T
	out  chan U
	done chan struct{}

	grp *errgroup.Group

	mu     sync.RWMutex
	closed bool
}

// PipeOption configures a Pipe.
type PipeOption func(*pipeOptions)

type pipeOptions struct {
	cfg    PipeConfig
	logger zerolog.Logger
}

// WithConfig returns an option that configures a Pipe using cfg.
func WithConfig(cfg PipeConfig) PipeOption {
	return func(o *pipeOptions) {
		o.cfg = cfg
	}
}

// WithLogger returns an option that makes a Pipe log to logger.
// By default, a Pipe does not log.
func WithLogger(logger zerolog.Logger) PipeOption {
	return func(o *pipeOptions) {
		o.logger = logger
	}
}

// NewPipe returns a new Pipe that feeds elements through xf, and starts its goroutine.
// The pipeline fails with the cause of ctx's cancelation if ctx is canceled before it has completed.
func NewPipe[T any, U any](ctx context.Context, xf Transducer[T, U], opts ...PipeOption) (*Pipe[T, U], error) {
	o := pipeOptions{
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	o.cfg.ApplyDefaults()

	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	grp, ctx := errgroup.WithContext(ctx)

	p := &Pipe[T, U]{
		id: id,
		logger: o.logger.With().
			Str(FieldPipeID, id).
			Str(FieldPipe, o.cfg.Name).
			Logger(),
		in:   make(chan T, o.cfg.InputBuffer),
		out:  make(chan U, o.cfg.OutputBuffer),
		done: make(chan struct{}),
		grp:  grp,
	}

	rf := xf(&ReducerFuncs[U]{
		StepFunc: func(elem U) (StepResult, error) {
			select {
			case p.out <- elem:
				return Continue, nil

			case <-ctx.Done():
				return Stop, context.Cause(ctx)
			}
		},
	})

	grp.Go(func() error {
		defer close(p.done)

		defer close(p.out)

		return p.run(ctx, rf)
	})

	return p, nil
}

// ID returns the random ID of p, which is also used in log messages.
func (p *Pipe[T, U]) ID() string {
	return p.id
}

// Send feeds elem into the pipeline.
// It blocks until the pipeline has accepted elem, or ctx is canceled.
// It returns ErrPipeClosed if p has been closed, and ErrPipeDone if the pipeline has ended.
func (p *Pipe[T, U]) Send(ctx context.Context, elem T) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPipeClosed
	}

	select {
	case <-p.done:
		return ErrPipeDone

	default:
	}

	select {
	case p.in <- elem:
		return nil

	case <-p.done:
		return ErrPipeDone

	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close signals that no more elements will be sent. The pipeline completes after it has consumed
// all elements sent before.
// It returns ErrPipeClosed if p has already been closed.
func (p *Pipe[T, U]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPipeClosed
	}

	p.closed = true

	close(p.in)

	return nil
}

// Out returns the channel through which the elements produced by the pipeline are delivered.
func (p *Pipe[T, U]) Out() <-chan U {
	return p.out
}

// Wait waits for the pipeline to end, and returns the error of the stage that failed, if any.
func (p *Pipe[T, U]) Wait() error {
	return p.grp.Wait()
}

func (p *Pipe[T, U]) run(ctx context.Context, rf Reducer[T]) error {
	p.logger.Debug().Msg("pipe started")

	rf.Init()

	count := uint64(0)

	for {
		select {
		case elem, ok := <-p.in:
			if !ok {
				return p.complete(rf, count)
			}

			count++

			res, err := rf.Step(elem)
			if err != nil {
				p.logger.Error().Err(err).Uint64(FieldElements, count).Msg("pipe failed")
				return err
			}

			if res == Stop {
				p.logger.Debug().Uint64(FieldElements, count).Msg("pipe stopped early")
				return p.complete(rf, count)
			}

		case <-ctx.Done():
			err := context.Cause(ctx)
			p.logger.Error().Err(err).Uint64(FieldElements, count).Msg("pipe canceled")

			return err
		}
	}
}

func (p *Pipe[T, U]) complete(rf Reducer[T], count uint64) error {
	if err := rf.Complete(); err != nil {
		p.logger.Error().Err(err).Uint64(FieldElements, count).Msg("pipe failed to complete")
		return err
	}

	p.logger.Debug().Uint64(FieldElements, count).Msg("pipe completed")

	return nil
}
