// Package main is the entry point for the solmock CLI.
package main

import "solmock.dev/pkg/solmock/cmd"

func main() {
	cmd.Execute()
}
