package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/gohill/internal/config"
	"github.com/idelchi/gohill/internal/ctxlog"
	"github.com/idelchi/gohill/internal/format"
	"github.com/idelchi/gohill/internal/hill"
	"github.com/idelchi/gohill/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, readConfigFile)

	root.Use = "gohill [flags] key_file plaintext_file"
	root.Short = "Hill cipher encryption utility"
	root.Long = `Encrypts a plaintext file with the Hill cipher.

The key file holds the matrix size N (2-9) on its first line,
followed by N lines of N whitespace separated integers.
The plaintext is reduced to the letters a-z, padded with 'x' to a multiple
of N and encrypted block by block modulo 26.`

	root.Args = exactFiles
	root.PreRunE = func(_ *cobra.Command, args []string) error {
		if len(args) == 2 { //nolint:mnd
			cfg.KeyFile, cfg.PlaintextFile = args[0], args[1]
		}

		return cobraext.Validate(cfg, cfg)
	}
	root.RunE = func(cmd *cobra.Command, _ []string) error {
		ctx := ctxlog.WithLogger(cmd.Context(), ctxlog.New(cmd.ErrOrStderr(), cfg.Verbose))

		return logic.Run(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	root.Flags().BoolP("show", "s", false, "Show the configuration and exit")
	root.Flags().BoolP("quiet", "q", false, "Suppress the report on stdout")
	root.Flags().BoolP("verbose", "v", false, "Log debug information to stderr")
	root.Flags().Bool("stats", false, "Print run statistics to stderr")
	root.Flags().StringP("config", "c", "", "Path to a JSONC configuration file")

	root.Flags().IntP("max-length", "m", hill.DefaultMaxLength, "Maximum number of letters after sanitizing the plaintext")
	root.Flags().StringP("padding", "p", string(rune(hill.DefaultPadding)), "Letter used to pad the last block")
	root.Flags().IntP("line-width", "w", format.LineWidth, "Letters per line of plaintext and ciphertext")
	root.Flags().Int("field-width", format.FieldWidth, "Column width of key matrix entries")
	root.Flags().StringP("output", "o", "", "Also write the ciphertext to this file")

	return root
}

// exactFiles requires the key file and the plaintext file as the only positional arguments.
// With --show the arguments are optional, so the configuration can be inspected on its own.
func exactFiles(cmd *cobra.Command, args []string) error {
	const want = 2

	if show, _ := cmd.Flags().GetBool("show"); show && len(args) <= want {
		return nil
	}

	if len(args) != want {
		return fmt.Errorf("%w: %s (got %d arguments, want %d)", hill.ErrUsage, cmd.UseLine(), len(args), want)
	}

	return nil
}

// readConfigFile merges the JSONC file named by --config into the bound configuration.
func readConfigFile(_ *cobra.Command, _ []string) error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}

	return config.ReadFile(viper.GetViper(), path)
}
