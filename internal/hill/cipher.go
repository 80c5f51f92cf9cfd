package hill

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	// Modulus is the alphabet size all arithmetic is reduced by.
	Modulus = 26
	// DefaultPadding is the letter appended to fill the last block.
	DefaultPadding = 'x'
)

// Cipher encrypts letter sequences with a fixed key.
// A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	// size is the key dimension and block length
	size int

	// reduced holds the key entries reduced into [0, Modulus)
	reduced [][]int

	// padding fills the final block
	padding byte
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithPadding sets the letter used to pad the final block.
func WithPadding(letter byte) Option {
	return func(c *Cipher) {
		c.padding = letter
	}
}

// NewCipher prepares a cipher for key.
// The key is not checked for invertibility modulo 26; a singular key still encrypts,
// it just cannot be decrypted.
func NewCipher(key *Key, opts ...Option) (*Cipher, error) {
	if key == nil {
		return nil, ErrNilKey
	}

	c := &Cipher{
		size:    key.Size(),
		reduced: make([][]int, key.Size()),
		padding: DefaultPadding,
	}

	for _, opt := range opts {
		opt(c)
	}

	if !isLetter(c.padding) {
		return nil, fmt.Errorf("%w: padding %q", ErrInvalidLetter, c.padding)
	}

	modulus := big.NewInt(Modulus)

	for i := range c.reduced {
		c.reduced[i] = make([]int, c.size)

		for j := range c.reduced[i] {
			// big.Int.Mod is Euclidean, so negative entries land in [0, Modulus).
			c.reduced[i][j] = int(new(big.Int).Mod(key.rows[i][j], modulus).Int64())
		}
	}

	return c, nil
}

// Size returns the block length.
func (c *Cipher) Size() int {
	return c.size
}

// PaddingLength returns how many letters extend a text of the given length
// to a multiple of size. The result is in [0, size-1].
func PaddingLength(length, size int) int {
	return (size - length%size) % size
}

// Pad appends padding letters until the length of text is a multiple of the block size.
func (c *Cipher) Pad(text string) string {
	return text + strings.Repeat(string(c.padding), PaddingLength(len(text), c.size))
}

// Encrypt pads text and encrypts it block by block.
// Each block of N letters forms a column vector v, encrypted as K·v mod 26.
// It returns the padded plaintext and the ciphertext, which have equal length.
func (c *Cipher) Encrypt(text string) (padded, ciphertext string, err error) {
	for i := range len(text) {
		if !isLetter(text[i]) {
			return "", "", fmt.Errorf("%w: %q at offset %d", ErrInvalidLetter, text[i], i)
		}
	}

	padded = c.Pad(text)

	out := make([]byte, len(padded))
	block := make([]int, c.size)

	for start := 0; start < len(padded); start += c.size {
		for k := range block {
			block[k] = int(padded[start+k] - 'a')
		}

		for i, row := range c.reduced {
			sum := 0

			for k, v := range block {
				sum += row[k] * v
			}

			out[start+i] = byte('a' + sum%Modulus)
		}
	}

	return padded, string(out), nil
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}
