package hill

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMaxLength is the default cap on the number of sanitized letters.
const DefaultMaxLength = 10000

// Plaintext is the result of sanitizing an input text.
type Plaintext struct {
	// Letters holds the retained characters, lowercased, in input order
	Letters string

	// Skipped counts the input characters that were dropped
	Skipped int
}

// LoadPlaintext reads the file at path and sanitizes it.
// See Sanitize for the rules.
func LoadPlaintext(path string, maxLength int) (Plaintext, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Plaintext{}, &PlaintextFileError{Path: path, Err: err}
	}

	text, err := sanitize(data, maxLength)
	if err != nil {
		return Plaintext{}, &PlaintextFileError{Path: path, Err: err}
	}

	return text, nil
}

// Sanitize reduces the text read from r to the lowercase letters a-z.
// A character is kept when it is a letter whose lowercase form is a single rune in a-z.
// It fails when more than maxLength letters remain; the text is never truncated.
// An input without letters yields an empty Plaintext and no error.
func Sanitize(r io.Reader, maxLength int) (Plaintext, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Plaintext{}, &PlaintextFileError{Err: fmt.Errorf("reading plaintext: %w", err)}
	}

	text, err := sanitize(data, maxLength)
	if err != nil {
		return Plaintext{}, &PlaintextFileError{Err: err}
	}

	return text, nil
}

// SanitizeString applies the sanitization rules to s without a length cap.
func SanitizeString(s string) string {
	return filter([]byte(s)).Letters
}

func sanitize(data []byte, maxLength int) (Plaintext, error) {
	text := filter(data)

	if len(text.Letters) > maxLength {
		return Plaintext{}, fmt.Errorf("%w: %d letters, limit is %d", ErrPlaintextTooLong, len(text.Letters), maxLength)
	}

	return text, nil
}

func filter(data []byte) Plaintext {
	var (
		letters strings.Builder
		skipped int
	)

	letters.Grow(len(data))

	lower := cases.Lower(language.Und)

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if l, ok := toLetter(lower, r); ok {
			letters.WriteByte(l)
		} else {
			skipped++
		}
	}

	return Plaintext{Letters: letters.String(), Skipped: skipped}
}

// toLetter returns the a-z letter r folds to, if any.
func toLetter(lower cases.Caser, r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r), true
	case r >= 'A' && r <= 'Z':
		return byte(r - 'A' + 'a'), true
	case r < utf8.RuneSelf, r == utf8.RuneError, !unicode.IsLetter(r):
		return 0, false
	}

	folded := lower.String(string(r))
	if len(folded) == 1 && folded[0] >= 'a' && folded[0] <= 'z' {
		return folded[0], true
	}

	return 0, false
}
