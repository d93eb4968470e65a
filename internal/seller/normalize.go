package seller

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxEmailLength     = 128
	PasswordHashLength = 128
	PasswordSaltLength = 64
)

// ValidateID accepts nil (unset) or a strictly positive id.
func ValidateID(id *int64) error {
	if id != nil && *id <= 0 {
		return newError(KindOutOfRange, "validate id", "seller id is not positive")
	}
	return nil
}

// NormalizeEmail trims the address and checks it is a bare, well-formed
// addr-spec that fits the sellerEmail column.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if !isEmail(email) {
		return "", newError(KindInvalidArgument, "normalize email", "seller email is empty or insecure")
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return "", newError(KindOutOfRange, "normalize email", "seller email is too large")
	}
	return email, nil
}

// NormalizePasswordHash trims and lowercases a hex encoded 512-bit digest.
func NormalizePasswordHash(hash string) (string, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return "", newError(KindInvalidArgument, "normalize password hash", "seller password hash is empty or insecure")
	}
	if !isHex(hash) {
		return "", newError(KindInvalidArgument, "normalize password hash", "seller password hash is not hexadecimal")
	}
	if len(hash) != PasswordHashLength {
		return "", newError(KindOutOfRange, "normalize password hash", "seller password hash must be 128 characters")
	}
	return hash, nil
}

// NormalizePasswordSalt trims and lowercases a hex encoded 256-bit salt.
func NormalizePasswordSalt(salt string) (string, error) {
	salt = strings.ToLower(strings.TrimSpace(salt))
	if !isHex(salt) {
		return "", newError(KindInvalidArgument, "normalize password salt", "seller password salt is empty or insecure")
	}
	if len(salt) != PasswordSaltLength {
		return "", newError(KindOutOfRange, "normalize password salt", "seller password salt must be 64 characters")
	}
	return salt, nil
}

func isEmail(s string) bool {
	if s == "" {
		return false
	}
	// net/mail accepts RFC 6532 UTF-8 addresses, the column only takes ASCII
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	addr, err := mail.ParseAddress(s)
	// reject display names and angle brackets, only a bare address is stored
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isDomainLabel(label) {
			return false
		}
	}
	return true
}

// isDomainLabel reports whether label is a hostname label: letters and
// digits, with hyphens allowed only inside.
func isDomainLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

// isHex reports whether s is non-empty and made only of hex digits.
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
