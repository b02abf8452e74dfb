package shortener

import "github.com/jaevor/go-nanoid"

// Alphabet is the character set for generated short codes.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultCodeLength is the default length for generated short codes.
// 62^6 candidate codes keep collision probability low without aiming for
// guaranteed uniqueness; collisions are retried, not prevented.
const DefaultCodeLength = 6

// CodeGenerator produces candidate short codes.
type CodeGenerator func() string

// NewGenerator returns a CodeGenerator drawing uniform samples from
// Alphabet.
func NewGenerator(length int) (CodeGenerator, error) {
	if length <= 0 {
		length = DefaultCodeLength
	}

	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, err
	}

	return CodeGenerator(gen), nil
}

// ValidCode reports whether a code consists solely of Alphabet characters.
func ValidCode(code string) bool {
	if code == "" {
		return false
	}

	for _, c := range code {
		if !isAlphanumeric(c) {
			return false
		}
	}

	return true
}

func isAlphanumeric(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
