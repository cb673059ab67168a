// filepath: cmd/navhub/main.go
package main

import "navhub/internal/cli"

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
