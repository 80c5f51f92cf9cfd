package hill

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage is returned when the command line does not name exactly a key file and a plaintext file.
	ErrUsage = errors.New("usage")
	// ErrEmptyPlaintext is returned when no letters survive sanitization.
	ErrEmptyPlaintext = errors.New("no valid letters in plaintext")
	// ErrPlaintextTooLong is returned when the sanitized plaintext exceeds the configured cap.
	ErrPlaintextTooLong = errors.New("sanitized plaintext exceeds maximum length")
	// ErrNilKey is returned when a cipher is created without a key.
	ErrNilKey = errors.New("nil key")
	// ErrInvalidLetter is returned when text handed to the cipher contains characters outside a-z.
	ErrInvalidLetter = errors.New("text contains characters outside a-z")

	// ErrKeyEmpty is returned for a key file without content.
	ErrKeyEmpty = errors.New("key file is empty")
	// ErrKeySize is returned when the size line is not an integer in the allowed range.
	ErrKeySize = errors.New("invalid key matrix size")
	// ErrKeyRows is returned when fewer rows than the declared size follow the size line.
	ErrKeyRows = errors.New("not enough key matrix rows")
	// ErrKeyRow is returned when a row does not hold exactly size integers.
	ErrKeyRow = errors.New("malformed key matrix row")
	// ErrKeyToken is returned when a row entry is not a signed base-10 integer.
	ErrKeyToken = errors.New("invalid key matrix entry")
)

// KeyFileError describes a failure to load the key matrix.
type KeyFileError struct {
	// Path of the key file, empty when parsed from a reader
	Path string

	// Line is the 1-based line number the failure refers to, 0 if not line specific
	Line int

	// Err is the underlying cause
	Err error
}

func (e *KeyFileError) Error() string {
	msg := "key file"

	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}

	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}

	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *KeyFileError) Unwrap() error {
	return e.Err
}

// PlaintextFileError describes a failure to load or sanitize the plaintext.
type PlaintextFileError struct {
	// Path of the plaintext file, empty when sanitized from a reader
	Path string

	// Err is the underlying cause
	Err error
}

func (e *PlaintextFileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("plaintext: %v", e.Err)
	}

	return fmt.Sprintf("plaintext file %q: %v", e.Path, e.Err)
}

func (e *PlaintextFileError) Unwrap() error {
	return e.Err
}
