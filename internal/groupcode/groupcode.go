// Package groupcode generates and validates the short codes members share
// to join a group.
package groupcode

import (
	"math/rand/v2"
	"strings"
)

// Length is the fixed size of a group code.
const Length = 6

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a pseudo-random uppercase alphanumeric code. Codes are
// not checked for uniqueness against existing groups; with 36^6 possible
// values collisions are accepted as rare.
func Generate() string {
	var b strings.Builder
	b.Grow(Length)
	for i := 0; i < Length; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

// Valid reports whether s has the shape of a group code: exactly Length
// uppercase alphanumeric characters.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Normalize uppercases and trims a user-entered code before validation.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
