package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var tokenPattern = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestUUIDGeneratorFormat(t *testing.T) {
	gen := NewUUIDGenerator()

	token, err := gen.NewToken()
	require.NoError(t, err)

	assert.Len(t, token, TokenLength)
	assert.Regexp(t, tokenPattern, token)
}

func TestUUIDGeneratorVersion4(t *testing.T) {
	token, err := NewUUIDGenerator().NewToken()
	require.NoError(t, err)

	// Version nibble is the 13th hex digit, variant bits lead the 17th.
	assert.Equal(t, byte('4'), token[12])
	assert.Contains(t, "89AB", string(token[16]))
}

func TestUUIDGeneratorUnique(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		token, err := gen.NewToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token %s", token)
		seen[token] = struct{}{}
	}
}

// Every generated token is 32 uppercase hex characters, however many are drawn.
func TestPropertyTokenFormat(t *testing.T) {
	gen := NewUUIDGenerator()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(t, "count")
		for i := 0; i < n; i++ {
			token, err := gen.NewToken()
			if err != nil {
				t.Fatalf("token generation failed: %v", err)
			}
			if !tokenPattern.MatchString(token) {
				t.Fatalf("token %q does not match %s", token, tokenPattern)
			}
		}
	})
}
