// Package main is the entry point for the json2reqif CLI.
//
// json2reqif converts JSON requirement exports into ReqIF documents
// according to a declarative mapping file:
//
//	json2reqif convert export.json export.reqif mapping.yaml
//	json2reqif validate mapping.yaml
package main

import (
	"fmt"
	"os"
)

// Version information, injected at build time.
var Version = "dev"

func main() {
	rootCmd := NewRootCmd()
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
