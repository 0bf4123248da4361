package transducers

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/matryer/is"
)

func TestTransduceSeq(t *testing.T) {
	is := is.New(t)

	result, err := CollectSeq(TransduceSeq(slices.Values([]int{1, 2, 3}), FlatMap(duplicate)))

	is.NoErr(err)
	is.Equal(result, []int{1, 1, 2, 2, 3, 3})
}

func TestTransduceSeq_Lazy(t *testing.T) {
	is := is.New(t)

	pulled := 0

	seq := TransduceSeq(naturals(&pulled), Compose(Filter(FuncPredicate(even)), Take[int](3)))

	for elem, err := range seq {
		is.NoErr(err)

		if elem == 2 {
			break
		}
	}

	is.Equal(pulled, 3)
}

func TestTransduceSeq_Infinite(t *testing.T) {
	is := is.New(t)

	pulled := 0

	result, err := CollectSeq(TransduceSeq(naturals(&pulled), Compose(Filter(FuncPredicate(even)), Take[int](3))))

	is.NoErr(err)
	is.Equal(result, []int{0, 2, 4})
	is.Equal(pulled, 5)
}

func TestTransduceSeq_Complete(t *testing.T) {
	is := is.New(t)

	result, err := CollectSeq(TransduceSeq(slices.Values([]int{1, 2, 3, 4, 5}), PartitionAll[int](2)))

	is.NoErr(err)
	is.Equal(result, [][]int{{1, 2}, {3, 4}, {5}})
}

func TestTransduceSeq_Error(t *testing.T) {
	is := is.New(t)

	seq := TransduceSeq(slices.Values([]int{1, 2, 3}), FlatMap(func(elem int) ([]int, error) {
		if elem == 2 {
			return nil, errTest
		}

		return []int{elem}, nil
	}))

	result := []int{}
	errs := 0

	for elem, err := range seq {
		if err != nil {
			is.True(errors.Is(err, errTest))
			errs++

			continue
		}

		result = append(result, elem)
	}

	is.Equal(result, []int{1})
	is.Equal(errs, 1)
}

func naturals(pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			*pulled++

			if !yield(i) {
				return
			}
		}
	}
}
