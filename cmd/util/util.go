package util

import (
	"strings"

	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupBenchFlags adds the payload and benchmark flags shared by all suites
func SetupBenchFlags(cmd *cobra.Command) {
	key := "records"
	cmd.PersistentFlags().Int(key, 300, WrapString("How many records to generate per payload batch"))

	key = "array-scale"
	cmd.PersistentFlags().Int(key, 3000, WrapString("Element count for array-shape records"))

	key = "blob-scale"
	cmd.PersistentFlags().Int(key, 100000, WrapString("String length for blob-shape records"))

	key = "skip"
	cmd.PersistentFlags().String(key, "", WrapString("Benchmark cases to skip (comma separated - e.g. sequential,socket)"))

	key = "csv"
	cmd.PersistentFlags().String(key, "", WrapString("Optional path to save benchmark results as CSV"))
}

// SetupUploadFlags adds the upload client flags
func SetupUploadFlags(cmd *cobra.Command) {
	key := "endpoint"
	cmd.PersistentFlags().String(key, "", WrapString("Address of an already running ingestion endpoint. If empty, an in-process mock endpoint is started for the duration of the run"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds of the upload clients"))
}

// InitEnvConfig initializes configuration from environment variables
func InitEnvConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("ingestbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetBenchConfig reads the benchmark configuration from viper
func GetBenchConfig() *common.BenchConfig {
	var skip []string
	if s := viper.GetString("skip"); s != "" {
		skip = strings.Split(s, ",")
	}

	return &common.BenchConfig{
		Records:    viper.GetInt("records"),
		ArrayScale: viper.GetInt("array-scale"),
		BlobScale:  viper.GetInt("blob-scale"),
		Skip:       skip,
		CSVPath:    viper.GetString("csv"),
	}
}

// GetClientConfig reads the upload client configuration from viper
func GetClientConfig() *common.ClientConfig {
	return &common.ClientConfig{
		Endpoint:      viper.GetString("endpoint"),
		TimeoutSecond: viper.GetInt("timeout"),
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
