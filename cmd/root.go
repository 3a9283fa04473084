package cmd

import (
	"fmt"
	"os"

	"github.com/jhenke/ingestbench/cmd/bench"
	"github.com/jhenke/ingestbench/cmd/util"
	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.4.2"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "ingestbench",
		Short: "serialization and upload micro-benchmarks",
		Long: fmt.Sprintf(`ingestbench (v%s)

A micro-benchmark harness comparing execution strategies for serializing
large structured records and client implementations for uploading the
resulting buffers as multipart form data.`, Version),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			common.SetLogLevel(viper.GetString("log-level"))
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ingestbench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ingestbench v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(bench.BenchCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
