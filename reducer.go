package transducers

// StepResult tells a driver whether a Reducer wants more elements.
type StepResult int

const (
	// Continue requests more elements.
	Continue StepResult = iota

	// Stop requests that no more elements are fed into the Reducer.
	// The driver must still call Complete.
	Stop
)

// Reducer consumes elements of type T.
//
// Init is called once before the first element. Step is called for each element, in order.
// Complete is called at most once, after the last element has been fed, or after Step returned
// Stop. Complete is not called after Step or Complete returned an error.
//
// Reducers that wrap another Reducer must forward Init and Complete to it, must return Stop as soon
// as the wrapped Reducer returns Stop, and must return errors of the wrapped Reducer unchanged.
type Reducer[T any] interface {
	Init()
	Step(elem T) (StepResult, error)
	Complete() error
}

// ReducerFuncs implements Reducer using functions. Nil functions are no-ops.
type ReducerFuncs[T any] struct {
	InitFunc     func()
	StepFunc     func(elem T) (StepResult, error)
	CompleteFunc func() error
}

// wrapped holds the inner Reducer of a stage, and forwards Init and Complete to it.
type wrapped[U any] struct {
	rf Reducer[U]
}

var _ Reducer[int] = &ReducerFuncs[int]{}

// String implements fmt.Stringer.
func (r StepResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Init implements Reducer.
func (r *ReducerFuncs[T]) Init() {
	if r.InitFunc != nil {
		r.InitFunc()
	}
}

// Step implements Reducer.
func (r *ReducerFuncs[T]) Step(elem T) (StepResult, error) {
	if r.StepFunc == nil {
		return Continue, nil
	}

	return r.StepFunc(elem)
}

// Complete implements Reducer.
func (r *ReducerFuncs[T]) Complete() error {
	if r.CompleteFunc == nil {
		return nil
	}

	return r.CompleteFunc()
}

func (w *wrapped[U]) Init() {
	w.rf.Init()
}

func (w *wrapped[U]) Complete() error {
	return w.rf.Complete()
}
