package serialize

import (
	"context"
	"encoding/json"
	"runtime"

	"github.com/jhenke/ingestbench/ingest/payload"
	"golang.org/x/sync/errgroup"
)

// NewParallelStrategy creates a strategy that partitions the input across one
// goroutine per logical CPU. The input is treated as read-only for the
// duration of the pass; the caller keeps ownership of the slice
func NewParallelStrategy() ISerializeStrategy {
	return &parallelStrategyImpl{workers: runtime.GOMAXPROCS(0)}
}

// parallelStrategyImpl implements the ISerializeStrategy interface with a
// fork/join fan-out over contiguous chunks of the input
type parallelStrategyImpl struct {
	workers int
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serialize.ISerializeStrategy)
// --------------------------------------------------------------------------

func (p parallelStrategyImpl) SerializeAll(records []payload.Record) ([][]byte, error) {
	return encodeChunked(records, p.workers, nil)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// encodeChunked partitions records into contiguous chunks and encodes each
// chunk on its own goroutine. Every goroutine writes a disjoint index range
// of the result slice, so the output is index-aligned with the input without
// any synchronization beyond the group wait. Encoding each record must be a
// pure function of that record alone; this independence is what makes the
// partitioning safe.
//
// onEncoded, if non-nil, is invoked with the index of every record after it
// has been encoded, from the goroutine owning that index.
func encodeChunked(records []payload.Record, workers int, onEncoded func(i int)) ([][]byte, error) {
	if len(records) == 0 {
		return [][]byte{}, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(records) {
		workers = len(records)
	}

	buffers := make([][]byte, len(records))
	g, ctx := errgroup.WithContext(context.Background())

	chunk := (len(records) + workers - 1) / workers
	for start := 0; start < len(records); start += chunk {
		start, end := start, min(start+chunk, len(records))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					// a sibling chunk failed; its error wins
					return nil
				}
				b, err := json.Marshal(&records[i])
				if err != nil {
					return &EncodeError{Index: i, Err: err}
				}
				buffers[i] = b
				if onEncoded != nil {
					onEncoded(i)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buffers, nil
}
