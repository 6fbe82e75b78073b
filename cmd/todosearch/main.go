package main

import (
	"fmt"
	"os"

	"github.com/Makepad-fr/todosearch/internal/cli"
)

// set by -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// No arguments opens the interactive search; subcommands are handled by the runner.
	code := cli.Run(os.Args[1:], cli.Options{Version: version})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
