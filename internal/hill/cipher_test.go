package hill_test

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gohill/internal/hill"
)

// Case is a single encryption case from a YAML golden file.
type Case struct {
	Description string    `yaml:"description"`
	Key         [][]int64 `yaml:"key"`
	Plaintext   string    `yaml:"plaintext"`
	Padded      string    `yaml:"padded"`
	Ciphertext  string    `yaml:"ciphertext"`
}

// Group is a named collection of test cases.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

func loadGroups(t *testing.T, name string) []Group {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}

	if len(groups) == 0 {
		t.Fatalf("no groups in %s", name)
	}

	return groups
}

func mustKey(t *testing.T, rows [][]int64) *hill.Key {
	t.Helper()

	entries := make([][]*big.Int, len(rows))

	for i, row := range rows {
		entries[i] = make([]*big.Int, len(row))

		for j, v := range row {
			entries[i][j] = big.NewInt(v)
		}
	}

	key, err := hill.NewKey(entries)
	if err != nil {
		t.Fatalf("NewKey(%v) error: %v", rows, err)
	}

	return key
}

func mustCipher(t *testing.T, key *hill.Key, opts ...hill.Option) *hill.Cipher {
	t.Helper()

	cipher, err := hill.NewCipher(key, opts...)
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}

	return cipher
}

// TestEncryptGolden runs the golden cases from testdata/cipher.yml.
func TestEncryptGolden(t *testing.T) {
	t.Parallel()

	for _, g := range loadGroups(t, "cipher.yml") {
		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range g.Cases {
				desc := tc.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()

					cipher := mustCipher(t, mustKey(t, tc.Key))

					padded, ciphertext, err := cipher.Encrypt(tc.Plaintext)
					if err != nil {
						t.Fatalf("Encrypt(%q) error: %v", tc.Plaintext, err)
					}

					if padded != tc.Padded {
						t.Errorf("Encrypt(%q) padded = %q, want %q", tc.Plaintext, padded, tc.Padded)
					}

					if ciphertext != tc.Ciphertext {
						t.Errorf("Encrypt(%q) ciphertext = %q, want %q", tc.Plaintext, ciphertext, tc.Ciphertext)
					}
				})
			}
		})
	}
}

func TestPaddingLength(t *testing.T) {
	t.Parallel()

	for size := hill.MinKeySize; size <= hill.MaxKeySize; size++ {
		for length := range 40 {
			pad := hill.PaddingLength(length, size)

			if pad < 0 || pad > size-1 {
				t.Fatalf("PaddingLength(%d, %d) = %d, outside [0,%d]", length, size, pad, size-1)
			}

			if (length+pad)%size != 0 {
				t.Fatalf("PaddingLength(%d, %d) = %d, total not a multiple of size", length, size, pad)
			}
		}
	}
}

func TestWithPadding(t *testing.T) {
	t.Parallel()

	key := mustKey(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	padded, ciphertext, err := mustCipher(t, key, hill.WithPadding('q')).Encrypt("a")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if padded != "aqq" || ciphertext != "aqq" {
		t.Errorf("Encrypt(%q) = %q, %q, want %q, %q", "a", padded, ciphertext, "aqq", "aqq")
	}

	if _, err := hill.NewCipher(key, hill.WithPadding('X')); !errors.Is(err, hill.ErrInvalidLetter) {
		t.Errorf("NewCipher with padding 'X' error = %v, want %v", err, hill.ErrInvalidLetter)
	}
}

func TestEncryptRejectsNonLetters(t *testing.T) {
	t.Parallel()

	cipher := mustCipher(t, mustKey(t, [][]int64{{1, 0}, {0, 1}}))

	for _, text := range []string{"Ab", "a b", "a1", "é"} {
		if _, _, err := cipher.Encrypt(text); !errors.Is(err, hill.ErrInvalidLetter) {
			t.Errorf("Encrypt(%q) error = %v, want %v", text, err, hill.ErrInvalidLetter)
		}
	}
}

func TestNewCipherNilKey(t *testing.T) {
	t.Parallel()

	if _, err := hill.NewCipher(nil); !errors.Is(err, hill.ErrNilKey) {
		t.Errorf("NewCipher(nil) error = %v, want %v", err, hill.ErrNilKey)
	}
}

// reference encrypts with unreduced big integer arithmetic and a floor modulo.
func reference(key *hill.Key, padded string) string {
	size := key.Size()
	out := make([]byte, len(padded))
	modulus := big.NewInt(hill.Modulus)

	for start := 0; start < len(padded); start += size {
		for i := range size {
			sum := new(big.Int)

			for k := range size {
				term := new(big.Int).Mul(key.At(i, k), big.NewInt(int64(padded[start+k]-'a')))
				sum.Add(sum, term)
			}

			out[start+i] = byte('a' + sum.Mod(sum, modulus).Int64())
		}
	}

	return string(out)
}

// TestEncryptProperties checks the length and alphabet invariants for random keys
// of every size and compares against an unreduced big integer computation.
func TestEncryptProperties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test data

	huge, _ := new(big.Int).SetString("-98765432109876543210987654321", 10)

	for size := hill.MinKeySize; size <= hill.MaxKeySize; size++ {
		t.Run(fmt.Sprintf("size_%d", size), func(t *testing.T) {
			rows := make([][]*big.Int, size)

			for i := range rows {
				rows[i] = make([]*big.Int, size)

				for j := range rows[i] {
					rows[i][j] = big.NewInt(rng.Int64N(2001) - 1000)
				}
			}

			rows[0][0] = huge

			key, err := hill.NewKey(rows)
			if err != nil {
				t.Fatalf("NewKey error: %v", err)
			}

			cipher := mustCipher(t, key)

			for length := 1; length <= 3*size+1; length++ {
				var text strings.Builder

				for range length {
					text.WriteByte(byte('a' + rng.IntN(hill.Modulus)))
				}

				padded, ciphertext, err := cipher.Encrypt(text.String())
				if err != nil {
					t.Fatalf("Encrypt error: %v", err)
				}

				if len(padded)%size != 0 {
					t.Errorf("len(padded) = %d, not a multiple of %d", len(padded), size)
				}

				if pad := len(padded) - length; pad < 0 || pad > size-1 {
					t.Errorf("padding = %d, outside [0,%d]", pad, size-1)
				}

				if !strings.HasPrefix(padded, text.String()) || strings.Trim(padded[length:], "x") != "" {
					t.Errorf("padded = %q, want %q followed by x", padded, text.String())
				}

				if len(ciphertext) != len(padded) {
					t.Errorf("len(ciphertext) = %d, want %d", len(ciphertext), len(padded))
				}

				if strings.Trim(ciphertext, "abcdefghijklmnopqrstuvwxyz") != "" {
					t.Errorf("ciphertext %q has characters outside a-z", ciphertext)
				}

				if want := reference(key, padded); ciphertext != want {
					t.Errorf("ciphertext = %q, want %q", ciphertext, want)
				}
			}
		})
	}
}
