package bench

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jhenke/ingestbench/cmd/util"
	"github.com/jhenke/ingestbench/ingest/common"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

var (
	// BenchCommands represents the bench command group
	BenchCommands = &cobra.Command{
		Use:   "bench",
		Short: "Run the benchmark suites",
		Long:  "Benchmark suites comparing serialization execution strategies and multipart upload clients.",
	}
)

func init() {
	cobra.OnInitialize(util.InitEnvConfig)

	// Add shared flags to the bench command group
	util.SetupBenchFlags(BenchCommands)

	// Add subcommands
	BenchCommands.AddCommand(serializeCmd)
	BenchCommands.AddCommand(uploadCmd)
}

// --------------------------------------------------------------------------
// Benchmark driver helpers
// --------------------------------------------------------------------------

// caseResult bundles the driver output for one benchmark case
type caseResult struct {
	name    string
	result  testing.BenchmarkResult
	hist    gometrics.Histogram
	skipped bool
}

// runCase drives one benchmark case through testing.Benchmark. The thunk
// performs one timed unit of work and reports the duration of the timed
// region itself, so per-iteration setup (e.g. cloning a batch for a consuming
// strategy) stays out of the latency samples. The thunk may use the
// StopTimer/StartTimer of the passed b to exclude that setup from the
// aggregate result as well.
func runCase(name string, thunk func(b *testing.B) (time.Duration, error)) (caseResult, error) {
	hist := gometrics.NewHistogram(gometrics.NewExpDecaySample(1028, 0.015))

	var thunkErr error
	result := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			elapsed, err := thunk(b)
			if err != nil {
				// Fail loudly; a masked failure would silently
				// invalidate the measurement
				thunkErr = err
				b.Fatalf("%s: %v", name, err)
			}
			hist.Update(elapsed.Nanoseconds())
		}
	})
	if thunkErr != nil {
		return caseResult{}, fmt.Errorf("benchmark case %s failed: %v", name, thunkErr)
	}

	return caseResult{name: name, result: result, hist: hist}, nil
}

// shouldSkip checks if the case is in the configured skip list
func shouldSkip(config *common.BenchConfig, name string) bool {
	for _, skip := range config.Skip {
		if name == skip {
			return true
		}
	}
	return false
}

// skippedCase returns a placeholder result for a skipped case
func skippedCase(name string) caseResult {
	return caseResult{name: name, skipped: true}
}

// printResult prints the result of a benchmark case in a formatted way
func printResult(r caseResult) {
	if r.skipped || r.result.NsPerOp() == 0 {
		fmt.Printf("%-32sskipped\n", r.name)
		return
	}

	nsPerOp := math.Max(float64(r.result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)
	ps := r.hist.Percentiles([]float64{0.5, 0.95, 0.99})

	fmt.Printf("%-32s%.0fns/op (%s/op)\t%.0f ops/sec\tp50=%s p95=%s p99=%s\n",
		r.name, nsPerOp, time.Duration(nsPerOp), opsPerSec,
		time.Duration(int64(ps[0])), time.Duration(int64(ps[1])), time.Duration(int64(ps[2])))
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results []caseResult, config *common.BenchConfig) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Case", "NsPerOp", "DurationPerOp", "OpsPerSec",
		"P50Ns", "P95Ns", "P99Ns", "Iterations", "Skipped",
		"Records", "ArrayScale", "BlobScale",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write case results
	for _, r := range results {
		var row []string
		if r.skipped || r.result.NsPerOp() == 0 {
			row = []string{r.name, "0", "0s", "0", "0", "0", "0", "0", "true",
				strconv.Itoa(config.Records), strconv.Itoa(config.ArrayScale), strconv.Itoa(config.BlobScale)}
		} else {
			nsPerOp := math.Max(float64(r.result.NsPerOp()), 1)
			opsPerSec := 1.0 / (nsPerOp / 1e9)
			ps := r.hist.Percentiles([]float64{0.5, 0.95, 0.99})

			row = []string{
				r.name,
				fmt.Sprintf("%.0f", nsPerOp),
				time.Duration(nsPerOp).String(),
				fmt.Sprintf("%.0f", opsPerSec),
				fmt.Sprintf("%.0f", ps[0]),
				fmt.Sprintf("%.0f", ps[1]),
				fmt.Sprintf("%.0f", ps[2]),
				strconv.Itoa(r.result.N),
				"false",
				strconv.Itoa(config.Records),
				strconv.Itoa(config.ArrayScale),
				strconv.Itoa(config.BlobScale),
			}
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for case %s: %v", r.name, err)
		}
	}

	return nil
}

// exportResults writes the CSV export if a path is configured
func exportResults(config *common.BenchConfig, results []caseResult) error {
	if config.CSVPath == "" {
		return nil
	}

	fmt.Printf("\nExporting results to CSV: %s\n", config.CSVPath)
	if err := writeResultsToCSV(config.CSVPath, results, config); err != nil {
		return fmt.Errorf("failed to export results to CSV: %v", err)
	}
	fmt.Println("Export complete")
	return nil
}
