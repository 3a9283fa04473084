package bench

import (
	"fmt"
	"testing"
	"time"

	"github.com/jhenke/ingestbench/cmd/util"
	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/jhenke/ingestbench/ingest/payload"
	"github.com/jhenke/ingestbench/ingest/serialize"
	"github.com/jhenke/ingestbench/ingest/upload"
	"github.com/jhenke/ingestbench/ingest/upload/httpclient"
	"github.com/jhenke/ingestbench/ingest/upload/mock"
	"github.com/jhenke/ingestbench/ingest/upload/socket"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:     "upload",
	Short:   "Measure multipart upload latency",
	Long:    "Compares the high-level (net/http) and low-level (raw socket) upload clients posting identical multipart bodies against a deterministic mock endpoint.",
	RunE:    runUpload,
	PreRunE: func(cmd *cobra.Command, _ []string) error { return util.BindCommandFlags(cmd) },
}

func init() {
	util.SetupUploadFlags(uploadCmd)
}

func runUpload(_ *cobra.Command, _ []string) error {
	config := util.GetBenchConfig()
	clientConfig := util.GetClientConfig()

	fmt.Println("Multipart upload latency benchmark")
	fmt.Println(config.String())

	// Start a scoped mock endpoint unless an external endpoint is configured.
	// The server lives for this benchmark group and is torn down at the end
	if clientConfig.Endpoint == "" {
		srv := mock.NewServer(common.MockConfig{})
		if err := srv.Start(); err != nil {
			return fmt.Errorf("failed to start mock endpoint: %v", err)
		}
		defer func() {
			if err := srv.Stop(); err != nil {
				fmt.Printf("failed to stop mock endpoint: %v\n", err)
			}
		}()
		clientConfig.Endpoint = srv.URL()
	}

	fmt.Println(clientConfig.String())
	fmt.Println("starting benchmarks...")
	fmt.Println()

	// Fixed, untimed serialization pass: the upload benchmarks time the send
	// only, never the encoding
	records, err := payload.Generate(payload.ShapeArray, config.ArrayScale, config.Records)
	if err != nil {
		return err
	}
	buffers, err := serialize.NewParallelStrategy().SerializeAll(records)
	if err != nil {
		return err
	}
	parts := upload.NewParts(buffers)

	clients := []struct {
		name   string
		client upload.IUploadClient
	}{
		{"http", httpclient.NewHTTPUploadClient()},
		{"socket", socket.NewSocketUploadClient()},
	}

	results := make([]caseResult, 0, len(clients))

	for _, cl := range clients {
		if shouldSkip(config, cl.name) {
			result := skippedCase(cl.name)
			results = append(results, result)
			printResult(result)
			continue
		}

		if err := cl.client.Connect(*clientConfig); err != nil {
			return fmt.Errorf("failed to connect %s client: %v", cl.name, err)
		}

		result, err := runCase(cl.name, func(_ *testing.B) (time.Duration, error) {
			start := time.Now()
			status, err := cl.client.Upload(parts)
			if err != nil {
				return 0, fmt.Errorf("upload failed with status %d: %v", status, err)
			}
			return time.Since(start), nil
		})

		if closeErr := cl.client.Close(); closeErr != nil {
			fmt.Printf("failed to close %s client: %v\n", cl.name, closeErr)
		}
		if err != nil {
			return err
		}

		results = append(results, result)
		printResult(result)
	}

	return exportResults(config, results)
}
