// Package transducers provides composable transformations of elements that are independent of
// where the elements come from and where they go.
//
// A Reducer consumes elements one at a time and is finalized once using Complete.
// A Transducer wraps a Reducer of output elements into a Reducer of input elements, so that
// mapping, filtering, partitioning and similar operations can be described once, and then be
// applied to slices, iter.Seq sequences, or channels without change.
//
// Transducers are composed using Compose and Chain. In Compose(first, second), raw input
// elements are seen by first, whose output is seen by second.
//
// Any stage may end a pipeline early by returning Stop from Step. Stop is not an error: the driver
// stops feeding elements, and still calls Complete exactly once, allowing stages such as
// PartitionAll to flush buffered state. Errors returned by Step or Complete abort the pipeline.
//
// The package provides drivers for slices (Into, Drain, Reduce), sequences (TransduceSeq),
// channel producers (TransduceProducer), and a Pipe that runs a pipeline on its own goroutine
// for elements sent from other goroutines.
package transducers
