package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Upload client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the upload clients
type ClientConfig struct {
	// Endpoint is the base URL of the ingestion endpoint (e.g. http://127.0.0.1:8080)
	Endpoint string
	// TimeoutSecond is the dial/request timeout of the client
	TimeoutSecond int
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Upload Client")
	addField("Endpoint", c.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	return sb.String()
}

// --------------------------------------------------------------------------
// Mock endpoint configuration struct
// --------------------------------------------------------------------------

// MockConfig holds all configuration parameters for the mock ingestion endpoint
type MockConfig struct {
	// Endpoint is the listen address (host:port). If empty, the server binds
	// to an ephemeral port on 127.0.0.1
	Endpoint string
	// Status is the response status returned for every upload request.
	// If zero, the server responds with 202 Accepted
	Status int
	// LogLevel, if non-empty, is applied to the shared logger factory when
	// the server is created
	LogLevel string
}

// --------------------------------------------------------------------------
// Benchmark configuration struct
// --------------------------------------------------------------------------

// BenchConfig holds all configuration parameters shared by the benchmark suites
type BenchConfig struct {
	// Records is the number of records generated per payload batch
	Records int
	// ArrayScale is the element count for array-shape records
	ArrayScale int
	// BlobScale is the string length for blob-shape records
	BlobScale int
	// Skip lists the benchmark cases to skip
	Skip []string
	// CSVPath is an optional path to export results as CSV
	CSVPath string
}

// String returns a formatted string representation of the benchmark configuration
func (c *BenchConfig) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Payload")
	addField("Records", strconv.Itoa(c.Records))
	addField("Array Scale (N)", strconv.Itoa(c.ArrayScale))
	addField("Blob Scale (L)", strconv.Itoa(c.BlobScale))

	addSection("Benchmark")
	if len(c.Skip) > 0 {
		addField("Skip", strings.Join(c.Skip, ", "))
	} else {
		addField("Skip", "none")
	}
	if c.CSVPath != "" {
		addField("CSV Export", c.CSVPath)
	}

	return sb.String()
}
