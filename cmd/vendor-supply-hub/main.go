// Package main boots the Vendor Supply Hub CLI and HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fairyhunter13/vendor-supply-hub/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
