package serialize

import (
	"runtime"

	"github.com/jhenke/ingestbench/ingest/payload"
)

// NewConsumingStrategy creates a data-parallel strategy that takes ownership
// of the input slice instead of borrowing it: every record is cleared as soon
// as it has been encoded, and the caller must not reuse the slice afterwards.
// It exists to measure whether transferring ownership of the input changes
// throughput compared to the shared read-only pass of NewParallelStrategy
func NewConsumingStrategy() ISerializeStrategy {
	return &consumingStrategyImpl{workers: runtime.GOMAXPROCS(0)}
}

// consumingStrategyImpl implements the ISerializeStrategy interface; same
// fan-out as parallelStrategyImpl but with ownership transfer of the input
type consumingStrategyImpl struct {
	workers int
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serialize.ISerializeStrategy)
// --------------------------------------------------------------------------

func (c consumingStrategyImpl) SerializeAll(records []payload.Record) ([][]byte, error) {
	// Each index is cleared by the goroutine that owns it, so the writes
	// never overlap
	return encodeChunked(records, c.workers, func(i int) {
		records[i] = payload.Record{}
	})
}
