package bench

import (
	"fmt"
	"testing"
	"time"

	"github.com/jhenke/ingestbench/cmd/util"
	"github.com/jhenke/ingestbench/ingest/payload"
	"github.com/jhenke/ingestbench/ingest/serialize"
	"github.com/spf13/cobra"
)

var serializeCmd = &cobra.Command{
	Use:     "serialize",
	Short:   "Measure serialization strategy throughput",
	Long:    "Compares sequential, data-parallel and consuming data-parallel serialization of identical record batches, for both payload shapes.",
	RunE:    runSerialize,
	PreRunE: func(cmd *cobra.Command, _ []string) error { return util.BindCommandFlags(cmd) },
}

func runSerialize(_ *cobra.Command, _ []string) error {
	config := util.GetBenchConfig()

	fmt.Println("Serialization throughput benchmark")
	fmt.Println(config.String())
	fmt.Println("starting benchmarks...")
	fmt.Println()

	shapes := []struct {
		name  string
		shape payload.Shape
		scale int
	}{
		{"array", payload.ShapeArray, config.ArrayScale},
		{"blob", payload.ShapeBlob, config.BlobScale},
	}

	strategies := []struct {
		name      string
		strategy  serialize.ISerializeStrategy
		consuming bool
	}{
		{"sequential", serialize.NewSequentialStrategy(), false},
		{"parallel", serialize.NewParallelStrategy(), false},
		{"parallel-consuming", serialize.NewConsumingStrategy(), true},
	}

	results := make([]caseResult, 0, len(shapes)*len(strategies))

	for _, sh := range shapes {
		// The payload batch is built once per shape, outside every timed region
		records, err := payload.Generate(sh.shape, sh.scale, config.Records)
		if err != nil {
			return err
		}

		for _, st := range strategies {
			caseName := st.name + "/" + sh.name

			if shouldSkip(config, st.name) {
				result := skippedCase(caseName)
				results = append(results, result)
				printResult(result)
				continue
			}

			result, err := runCase(caseName, func(b *testing.B) (time.Duration, error) {
				input := records
				if st.consuming {
					// the consuming strategy destroys its input;
					// exclude the copy from the timed region
					b.StopTimer()
					input = payload.Clone(records)
					b.StartTimer()
				}

				start := time.Now()
				_, err := st.strategy.SerializeAll(input)
				return time.Since(start), err
			})
			if err != nil {
				return err
			}

			results = append(results, result)
			printResult(result)
		}
	}

	return exportResults(config, results)
}
