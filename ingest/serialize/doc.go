// Package serialize provides the execution strategies under comparison for
// encoding record batches into byte buffers. It defines a common interface
// and three implementations that differ only in how the work is scheduled.
//
// The package focuses on:
//   - Providing a consistent interface for different execution strategies
//   - Keeping the encoded output index-aligned with the input batch
//   - Failing whole batches on the first unencodable record
//
// Key Components:
//
//   - ISerializeStrategy: Core interface that all strategy implementations
//     must satisfy.
//
//   - sequentialStrategyImpl: Encodes records one at a time on the calling
//     goroutine, in input order. Serves as the baseline measurement.
//
//   - parallelStrategyImpl: Partitions the batch into contiguous chunks and
//     encodes them on one goroutine per logical CPU. The input is borrowed
//     read-only; results are collected back into input order.
//
//   - consumingStrategyImpl: Identical fan-out, but takes ownership of the
//     input slice and clears each record once encoded. Included specifically
//     to measure whether ownership transfer changes throughput versus shared
//     borrowing.
//
// Error Handling:
//
//	A record the encoder cannot represent (e.g. a non-finite number) aborts
//	the whole batch with an *EncodeError carrying the record index. No
//	partial output is ever returned; sibling results are discarded. The
//	benchmark suites compare strategies only on uniformly well-formed
//	payloads, so a failed encode invalidates the measurement rather than
//	being recovered from.
//
// Thread Safety:
//
//	All strategy implementations are stateless and safe for concurrent use.
//	The input batch must not be mutated while a parallel pass is running,
//	and a batch handed to the consuming strategy must not be used afterwards.
package serialize
