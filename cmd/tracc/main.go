package main

import "github.com/tracc-cli/tracc/internal/cli"

// main delegates to [cli.Execute], which runs the command tree and exits
// non-zero when a command fails.
func main() {
	cli.Execute()
}
