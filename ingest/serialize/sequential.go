package serialize

import (
	"encoding/json"

	"github.com/jhenke/ingestbench/ingest/payload"
)

// NewSequentialStrategy creates the baseline strategy that encodes records
// one at a time on the calling goroutine, in input order
func NewSequentialStrategy() ISerializeStrategy {
	return &sequentialStrategyImpl{}
}

// sequentialStrategyImpl implements the ISerializeStrategy interface without
// any parallelism
type sequentialStrategyImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serialize.ISerializeStrategy)
// --------------------------------------------------------------------------

func (s sequentialStrategyImpl) SerializeAll(records []payload.Record) ([][]byte, error) {
	buffers := make([][]byte, len(records))
	for i := range records {
		b, err := json.Marshal(&records[i])
		if err != nil {
			return nil, &EncodeError{Index: i, Err: err}
		}
		buffers[i] = b
	}
	return buffers, nil
}
