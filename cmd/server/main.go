// Command server starts the fintrack API without the CLI wrapper.
// Equivalent to `fintrack serve`.
package main

import (
	"fmt"
	"os"

	"github.com/shashiranjanraj/fintrack/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
