package serialize

import (
	"testing"

	"github.com/jhenke/ingestbench/ingest/payload"
)

// benchmarkBatches returns payload batches for targeted benchmarking.
// Scales are kept below the CLI defaults so `go test -bench` stays snappy;
// the bench command runs the full-size batches.
func benchmarkBatches(b *testing.B) map[string][]payload.Record {
	b.Helper()

	arrayBatch, err := payload.Generate(payload.ShapeArray, 100, 50)
	if err != nil {
		b.Fatalf("Failed to generate array batch: %v", err)
	}
	blobBatch, err := payload.Generate(payload.ShapeBlob, 10000, 20)
	if err != nil {
		b.Fatalf("Failed to generate blob batch: %v", err)
	}

	return map[string][]payload.Record{
		"ArrayShape": arrayBatch,
		"BlobShape":  blobBatch,
	}
}

// BenchmarkSerializeAll benchmarks every strategy against both payload shapes
func BenchmarkSerializeAll(b *testing.B) {
	batches := benchmarkBatches(b)

	for name, factory := range testStrategies {
		for batchName, batch := range batches {
			b.Run(name+"_"+batchName, func(b *testing.B) {
				strategy := factory()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					input := batch
					if consumesInput(name) {
						// the consuming strategy destroys its input;
						// exclude the copy from the timed region
						b.StopTimer()
						input = payload.Clone(batch)
						b.StartTimer()
					}
					if _, err := strategy.SerializeAll(input); err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}
