package transducers

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestProduce(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints := []int{}
	for i := range Produce([]int{1, 2}, []int{3, 4, 5})(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestProduceSeq_Cancel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	pulled := 0

	ints := []int{}
	for i := range ProduceSeq(naturals(&pulled))(ctx, cancel) {
		ints = append(ints, i)

		if i == 3 {
			cancel(ErrStopped)
			break
		}
	}

	is.Equal(ints, []int{0, 1, 2, 3})
}

func TestProduceChannel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	intsCh1 := Produce([]int{1, 2})(ctx, cancel)
	intsCh2 := Produce([]int{3, 4, 5})(ctx, cancel)

	ints := []int{}
	for i := range ProduceChannel(intsCh1, intsCh2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ints1 := Produce([]int{1, 2})
	ints2 := Produce([]int{3, 4, 5})

	ints := []int{}
	for i := range Join(ints1, ints2)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestTransduceProducer(t *testing.T) {
	is := is.New(t)

	ints := TransduceProducer(Produce([]int{1, 2, 3, 4, 5}), Compose(Map(double), Interpose(0)))

	result, err := Collect(context.Background(), ints)

	is.NoErr(err)
	is.Equal(result, []int{2, 0, 4, 0, 6, 0, 8, 0, 10})
}

func TestTransduceProducer_Stop(t *testing.T) {
	is := is.New(t)

	pulled := 0

	ints := TransduceProducer(ProduceSeq(naturals(&pulled)), Compose(Filter(FuncPredicate(even)), Take[int](3)))

	result, err := Collect(context.Background(), ints)

	is.NoErr(err)
	is.Equal(result, []int{0, 2, 4})
}

func TestTransduceProducer_Complete(t *testing.T) {
	is := is.New(t)

	groups := TransduceProducer(Produce([]int{1, 2, 3, 4, 5}), PartitionAll[int](2))

	result, err := Collect(context.Background(), groups)

	is.NoErr(err)
	is.Equal(result, [][]int{{1, 2}, {3, 4}, {5}})
}

func TestTransduceProducer_Error(t *testing.T) {
	is := is.New(t)

	ints := TransduceProducer(Produce([]int{1, 2, 3, 4, 5}), Map(func(elem int) (int, error) {
		if elem == 3 {
			return 0, errTest
		}

		return elem, nil
	}))

	result, err := Collect(context.Background(), ints)

	is.True(errors.Is(err, errTest))
	is.Equal(result, []int{1, 2})
}

func TestTransduceProducer_Chained(t *testing.T) {
	is := is.New(t)

	ints := TransduceProducer(Produce([]int{1, 1, 2, 3, 3, 4}), Dedupe[int]())
	groups := TransduceProducer(ints, Partition[int](2))

	result, err := Collect(context.Background(), groups)

	is.NoErr(err)
	is.Equal(result, [][]int{{1, 2}, {3, 4}})
}

func TestTransduceProducer_StopMidChain(t *testing.T) {
	is := is.New(t)

	for i := 0; i < 1000; i++ {
		ints := TransduceProducer(Produce([]int{1, 2, 3, 4, 5, 6, 7, 8}), Map(addOne))
		taken := TransduceProducer(ints, Take[int](3))
		groups := TransduceProducer(taken, PartitionAll[int](2))

		result, err := Collect(context.Background(), groups)

		is.NoErr(err)
		is.Equal(result, [][]int{{2, 3}, {4}})
	}
}

func TestEach(t *testing.T) {
	is := is.New(t)

	indexes := []uint64{}
	ints := []int{}

	err := Each(context.Background(), Produce([]int{5, 6, 7}), func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) {
		indexes = append(indexes, index)
		ints = append(ints, elem)
	})

	is.NoErr(err)
	is.Equal(indexes, []uint64{0, 1, 2})
	is.Equal(ints, []int{5, 6, 7})
}

func TestEach_Cancel(t *testing.T) {
	is := is.New(t)

	ints := []int{}

	err := Each(context.Background(), Produce([]int{1, 2, 3, 4}), func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) {
		ints = append(ints, elem)

		if elem == 2 {
			cancel(errTest)
		}
	})

	is.True(errors.Is(err, errTest))
	is.Equal(ints, []int{1, 2})
}

func TestEach_Stopped(t *testing.T) {
	is := is.New(t)

	ints := []int{}

	err := Each(context.Background(), Produce([]int{1, 2, 3, 4}), func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) {
		ints = append(ints, elem)

		if elem == 2 {
			cancel(ErrStopped)
		}
	})

	is.NoErr(err)
	is.Equal(ints, []int{1, 2})
}
