package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

func printStats(w io.Writer, res Result, written int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Key size:  %dx%d\n", res.Key.Size(), res.Key.Size())
	fmt.Fprintf(w, "  Letters:   %s\n", humanize.Comma(int64(len(res.Plaintext.Letters))))
	fmt.Fprintf(w, "  Skipped:   %s\n", humanize.Comma(int64(res.Plaintext.Skipped)))
	fmt.Fprintf(w, "  Padding:   %d\n", len(res.Padded)-len(res.Plaintext.Letters))
	fmt.Fprintf(w, "  Blocks:    %s\n", humanize.Comma(int64(len(res.Padded)/res.Key.Size())))

	if written > 0 {
		//nolint:gosec // written is a file size, never negative
		fmt.Fprintf(w, "  Written:   %s\n", humanize.IBytes(uint64(written)))
	}

	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
