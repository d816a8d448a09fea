// Package main implements the entry point for the HBnB API server. It serves
// the REST API by default and also exposes operator commands for database
// migrations and bootstrapping the first administrator.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
