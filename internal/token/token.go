// Package token produces subscription confirmation tokens.
package token

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Length of every generated token.
const Length = 25

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// bytes at or above this bound are discarded to keep the distribution uniform
const maxByte = 256 - (256 % len(alphabet))

// Generator draws tokens from an entropy source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator reading from r.
func New(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Default returns a Generator backed by crypto/rand.
func Default() *Generator {
	return New(rand.Reader)
}

// Generate returns a fresh alphanumeric token of Length characters.
// It panics if the entropy source fails.
func (g *Generator) Generate() string {
	out := make([]byte, 0, Length)
	buf := make([]byte, Length*2)
	for len(out) < Length {
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			panic(fmt.Errorf("token: read entropy: %w", err))
		}
		for _, b := range buf {
			if int(b) >= maxByte {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out)
}
