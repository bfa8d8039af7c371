// Package cipher implements the reversible symbol-substitution transform
// used to obfuscate stored passwords. It is an obfuscation, not a secrecy
// mechanism: anyone holding the alphabet can invert it.
package cipher

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mykeychain/internal/common"
)

// DefaultCharset is the alphabet written to storage on first use: digits,
// lowercase, uppercase, then a fixed run of punctuation.
const DefaultCharset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Alphabet is an ordered, duplicate-free set of runes. The position of a
// rune in the sequence is its numeric value for the substitution transform.
// An Alphabet is immutable after construction.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// NewAlphabet builds an Alphabet from s. The string must be non-empty and
// contain no repeated runes.
func NewAlphabet(s string) (*Alphabet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("alphabet is empty: %w", common.ErrInvalidInput)
	}

	runes := []rune(s)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return nil, fmt.Errorf("alphabet has duplicate symbol %q: %w", r, common.ErrInvalidInput)
		}
		index[r] = i
	}

	return &Alphabet{runes: runes, index: index}, nil
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.runes)
}

// Contains reports whether r is inside the transform's domain.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// String returns the alphabet symbols in order.
func (a *Alphabet) String() string {
	return string(a.runes)
}
