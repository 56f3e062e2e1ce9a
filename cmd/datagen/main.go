package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ecm-digital/bankingapp-sub000/internal/fixtures"
)

func main() {
	var (
		outputDir   = flag.String("output-dir", "data", "directory to write one JSON file per entity")
		writeStdout = flag.Bool("stdout", false, "write the combined dataset to stdout instead of files")
	)
	flag.Parse()

	dataset := fixtures.Full()

	if *writeStdout {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := fixtures.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Wrote %d customers, %d transactions and %d queue tickets into %s\n",
		len(dataset.Customers), len(dataset.Transactions), len(dataset.QueueItems), *outputDir)
}
