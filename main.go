// Package main is the entry point for the hostcheck CLI application.
package main

import (
	"hostcheck/cli/cmd"
)

func main() {
	cmd.Execute()
}
