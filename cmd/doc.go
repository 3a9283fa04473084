// Package cmd implements the command-line interface for the ingestbench
// micro-benchmark harness. It provides a hierarchical command structure with
// the benchmark suites as subcommands.
//
// The package is organized into several subpackages:
//
//   - bench: Benchmark suites (serialize, upload)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See ingestbench -help for a list of all commands.
package cmd
