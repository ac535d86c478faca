// Command patterns runs the design pattern demos.
package main

import (
	"os"

	"github.com/sghaida/patterns/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(cli.Execute(version))
}
