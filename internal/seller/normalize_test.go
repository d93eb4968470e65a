package seller

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	validHash = strings.Repeat("ab", 64)
	validSalt = strings.Repeat("0f", 32)
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID(nil))
	assert.NoError(t, ValidateID(int64Ptr(1)))

	for _, id := range []int64{0, -5} {
		err := ValidateID(int64Ptr(id))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfRange), "id %d", id)
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Run("Trims", func(t *testing.T) {
		got, err := NormalizeEmail("  user@example.com  ")
		assert.NoError(t, err)
		assert.Equal(t, "user@example.com", got)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, in := range []string{
			"",
			"   ",
			"not-an-email",
			"user@",
			"@example.com",
			"user@localhost",
			"user@example..com",
			"John <john@example.com>",
			"üser@example.com",
			"user@exämple.com",
			"user@-example.com",
			"user@example-.com",
			"user@exa_mple.com",
			"user@.example.com",
			"user@example.com.",
		} {
			_, err := NormalizeEmail(in)
			assert.Equal(t, KindInvalidArgument, KindOf(err), "input %q", in)
		}
	})

	t.Run("HyphenatedDomain", func(t *testing.T) {
		got, err := NormalizeEmail("first.last+tag@mail-relay.example.co")
		assert.NoError(t, err)
		assert.Equal(t, "first.last+tag@mail-relay.example.co", got)
	})

	t.Run("TooLong", func(t *testing.T) {
		email := strings.Repeat("a", 117) + "@example.com"
		assert.Len(t, email, 129)

		_, err := NormalizeEmail(email)
		assert.True(t, errors.Is(err, ErrOutOfRange))
	})

	t.Run("MaxLength", func(t *testing.T) {
		email := strings.Repeat("a", 116) + "@example.com"
		got, err := NormalizeEmail(email)
		assert.NoError(t, err)
		assert.Equal(t, email, got)
	})
}

func TestNormalizePasswordHash(t *testing.T) {
	t.Run("AcceptsLowercaseHex", func(t *testing.T) {
		got, err := NormalizePasswordHash(validHash)
		assert.NoError(t, err)
		assert.Equal(t, validHash, got)
	})

	t.Run("TrimsAndLowercases", func(t *testing.T) {
		got, err := NormalizePasswordHash(" " + strings.ToUpper(validHash) + "\n")
		assert.NoError(t, err)
		assert.Equal(t, validHash, got)
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := NormalizePasswordHash(validHash[:127])
		assert.Equal(t, KindOutOfRange, KindOf(err))

		_, err = NormalizePasswordHash(validHash + "a")
		assert.Equal(t, KindOutOfRange, KindOf(err))
	})

	t.Run("NotHex", func(t *testing.T) {
		_, err := NormalizePasswordHash("g" + validHash[1:])
		assert.Equal(t, KindInvalidArgument, KindOf(err))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NormalizePasswordHash("   ")
		assert.Equal(t, KindInvalidArgument, KindOf(err))
	})
}

func TestNormalizePasswordSalt(t *testing.T) {
	got, err := NormalizePasswordSalt(validSalt)
	assert.NoError(t, err)
	assert.Equal(t, validSalt, got)

	got, err = NormalizePasswordSalt(strings.ToUpper(validSalt))
	assert.NoError(t, err)
	assert.Equal(t, validSalt, got)

	_, err = NormalizePasswordSalt(validSalt[:63])
	assert.Equal(t, KindOutOfRange, KindOf(err))

	_, err = NormalizePasswordSalt(validSalt + "0")
	assert.Equal(t, KindOutOfRange, KindOf(err))

	_, err = NormalizePasswordSalt("")
	assert.Equal(t, KindInvalidArgument, KindOf(err))

	_, err = NormalizePasswordSalt("z" + validSalt[1:])
	assert.Equal(t, KindInvalidArgument, KindOf(err))
}
