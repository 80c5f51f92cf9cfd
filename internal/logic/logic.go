// Package logic runs the encryption pipeline and renders its report.
package logic

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/idelchi/gohill/internal/config"
	"github.com/idelchi/gohill/internal/ctxlog"
	"github.com/idelchi/gohill/internal/fileutil"
	"github.com/idelchi/gohill/internal/format"
	"github.com/idelchi/gohill/internal/hill"
)

// Result holds everything produced by a single run.
type Result struct {
	// Key is the validated key matrix
	Key *hill.Key

	// Plaintext is the sanitized input before padding
	Plaintext hill.Plaintext

	// Padded is the plaintext after padding to the block size
	Padded string

	// Ciphertext has the same length as Padded
	Ciphertext string
}

// Encrypt loads the key and plaintext named in cfg and encrypts.
// All validation happens before encryption, so a failed run produces no result.
func Encrypt(ctx context.Context, cfg *config.Config) (Result, error) {
	log := ctxlog.FromContext(ctx)

	key, err := hill.LoadKey(cfg.KeyFile)
	if err != nil {
		return Result{}, fmt.Errorf("loading key: %w", err)
	}

	log.Debug("loaded key matrix", "path", cfg.KeyFile, "size", key.Size())

	text, err := hill.LoadPlaintext(cfg.PlaintextFile, cfg.MaxLength)
	if err != nil {
		return Result{}, fmt.Errorf("loading plaintext: %w", err)
	}

	log.Debug("sanitized plaintext", "path", cfg.PlaintextFile, "letters", len(text.Letters), "skipped", text.Skipped)

	if text.Letters == "" {
		return Result{}, fmt.Errorf("plaintext file %q: %w", cfg.PlaintextFile, hill.ErrEmptyPlaintext)
	}

	cipher, err := hill.NewCipher(key, hill.WithPadding(cfg.PaddingLetter()))
	if err != nil {
		return Result{}, fmt.Errorf("creating cipher: %w", err)
	}

	padded, ciphertext, err := cipher.Encrypt(text.Letters)
	if err != nil {
		return Result{}, fmt.Errorf("encrypting: %w", err)
	}

	log.Debug("encrypted", "blocks", len(padded)/cipher.Size(), "padding", len(padded)-len(text.Letters))

	return Result{Key: key, Plaintext: text, Padded: padded, Ciphertext: ciphertext}, nil
}

// Render formats the result as the three report sections.
// Each section is preceded by a blank line.
func Render(res Result, cfg *config.Config) string {
	var out strings.Builder

	section := func(title, body string) {
		fmt.Fprintf(&out, "\n%s:\n%s\n", title, body)
	}

	section("Key matrix", format.Matrix(res.Key, cfg.FieldWidth))
	section("Plaintext", format.Wrap(res.Padded, cfg.LineWidth))
	section("Ciphertext", format.Wrap(res.Ciphertext, cfg.LineWidth))

	return out.String()
}

// Run is the main logic of the application.
// The report is written to stdout only once every step has succeeded.
func Run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	start := time.Now()

	res, err := Encrypt(ctx, cfg)
	if err != nil {
		return err
	}

	var written int64

	if cfg.Output != "" {
		const ownerReadWrite = 0o600

		written, err = fileutil.WriteFile(cfg.Output, []byte(res.Ciphertext+"\n"), ownerReadWrite)
		if err != nil {
			return fmt.Errorf("writing ciphertext to %q: %w", cfg.Output, err)
		}

		ctxlog.FromContext(ctx).Debug("wrote ciphertext", "path", cfg.Output, "bytes", written)
	}

	if !cfg.Quiet {
		if _, err := io.WriteString(stdout, Render(res, cfg)); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if cfg.Stats {
		printStats(stderr, res, written, time.Since(start))
	}

	return nil
}
