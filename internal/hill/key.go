package hill

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// MinKeySize is the smallest supported key matrix dimension.
	MinKeySize = 2
	// MaxKeySize is the largest supported key matrix dimension.
	MaxKeySize = 9
)

// Key is an immutable square matrix of signed integers.
// Entries carry no range restriction and are kept at full precision.
type Key struct {
	rows [][]*big.Int
}

// NewKey builds a key from row-major entries.
// The rows are copied, later changes to the arguments do not affect the key.
func NewKey(rows [][]*big.Int) (*Key, error) {
	size := len(rows)
	if size < MinKeySize || size > MaxKeySize {
		return nil, fmt.Errorf("%w: %d outside [%d,%d]", ErrKeySize, size, MinKeySize, MaxKeySize)
	}

	key := &Key{rows: make([][]*big.Int, size)}

	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrKeyRow, i+1, len(row), size)
		}

		key.rows[i] = make([]*big.Int, size)

		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("%w: row %d column %d is nil", ErrKeyToken, i+1, j+1)
			}

			key.rows[i][j] = new(big.Int).Set(v)
		}
	}

	return key, nil
}

// Size returns the dimension N of the N×N matrix.
func (k *Key) Size() int {
	return len(k.rows)
}

// At returns a copy of the entry at row i, column j.
func (k *Key) At(i, j int) *big.Int {
	return new(big.Int).Set(k.rows[i][j])
}

// Rows returns a deep copy of the matrix in row-major order.
func (k *Key) Rows() [][]*big.Int {
	out := make([][]*big.Int, len(k.rows))

	for i := range k.rows {
		out[i] = make([]*big.Int, len(k.rows[i]))

		for j := range k.rows[i] {
			out[i][j] = k.At(i, j)
		}
	}

	return out
}

// LoadKey reads and validates the key matrix file at path.
func LoadKey(path string) (*Key, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &KeyFileError{Path: path, Err: err}
	}

	return parseKey(data, path)
}

// ParseKey reads a key matrix from r.
// The first line holds the size N, followed by N lines of N whitespace separated integers.
// Anything after row N is ignored.
func ParseKey(r io.Reader) (*Key, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &KeyFileError{Err: fmt.Errorf("reading key: %w", err)}
	}

	return parseKey(data, "")
}

func parseKey(data []byte, path string) (*Key, error) {
	fail := func(line int, err error) (*Key, error) {
		return nil, &KeyFileError{Path: path, Line: line, Err: err}
	}

	if len(data) == 0 {
		return fail(0, ErrKeyEmpty)
	}

	lines := splitLines(string(data))

	size, err := parseSize(lines[0])
	if err != nil {
		return fail(1, err)
	}

	if len(lines) < size+1 {
		return fail(0, fmt.Errorf("%w: size %d needs %d rows, found %d", ErrKeyRows, size, size, len(lines)-1))
	}

	rows := make([][]*big.Int, size)

	for i := range size {
		row, err := parseRow(lines[i+1], size)
		if err != nil {
			return fail(i+2, err)
		}

		rows[i] = row
	}

	return &Key{rows: rows}, nil
}

// splitLines splits text into lines, treating "\r\n" and a lone "\r" as line breaks.
// A trailing newline terminates the last line instead of starting an empty one.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}

func parseSize(line string) (int, error) {
	line = strings.TrimSpace(line)

	if !isDigits(line) {
		return 0, fmt.Errorf("%w: first line %q is not an integer", ErrKeySize, line)
	}

	size, err := strconv.Atoi(line)
	if err != nil || size < MinKeySize || size > MaxKeySize {
		return 0, fmt.Errorf("%w: %s outside [%d,%d]", ErrKeySize, line, MinKeySize, MaxKeySize)
	}

	return size, nil
}

func parseRow(line string, size int) ([]*big.Int, error) {
	fields := strings.Fields(line)
	if len(fields) != size {
		return nil, fmt.Errorf("%w: found %d entries, want %d", ErrKeyRow, len(fields), size)
	}

	row := make([]*big.Int, size)

	for j, field := range fields {
		if !isDigits(strings.TrimPrefix(field, "-")) {
			return nil, fmt.Errorf("%w: %q", ErrKeyToken, field)
		}

		v, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyToken, field)
		}

		row[j] = v
	}

	return row, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
