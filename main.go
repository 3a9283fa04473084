package main

import (
	"github.com/jhenke/ingestbench/cmd"
)

func main() {
	cmd.Execute()
}
