// Command gohill encrypts a plaintext file with the Hill cipher.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gohill/internal/commands"
	"github.com/idelchi/gohill/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown" //nolint:gochecknoglobals

func main() {
	var cfg config.Config

	root := commands.NewRootCommand(&cfg, version)

	if err := root.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
