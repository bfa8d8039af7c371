package cipher

import (
	"strings"
	"unicode/utf8"
)

// Transform shifts every alphabet symbol of text by shift positions,
// wrapping around the alphabet. Runes outside the alphabet pass through
// unchanged. With decrypt=true the shift is applied in the opposite
// direction, so for any text and shift:
//
//	a.Transform(a.Transform(s, k, false), k, true) == s
//
// The transform is character-for-character: the output always has the same
// rune count as the input.
func (a *Alphabet) Transform(text string, shift int, decrypt bool) string {
	if text == "" {
		return text
	}

	direction := 1
	if decrypt {
		direction = -1
	}

	l := len(a.runes)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		idx, ok := a.index[r]
		if !ok {
			b.WriteRune(r)
			continue
		}
		next := ((idx+direction*shift)%l + l) % l
		b.WriteRune(a.runes[next])
	}
	return b.String()
}

// Encrypt obfuscates plain using its own rune count as the shift. The shift
// is not stored anywhere: because the transform preserves length, Decrypt
// recovers the same value from the ciphertext.
func (a *Alphabet) Encrypt(plain string) string {
	return a.Transform(plain, utf8.RuneCountInString(plain), false)
}

// Decrypt inverts Encrypt, deriving the shift from the ciphertext length.
func (a *Alphabet) Decrypt(encrypted string) string {
	return a.Transform(encrypted, utf8.RuneCountInString(encrypted), true)
}
