package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUsesInjectedCommit(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() {
		Version, Commit = origVersion, origCommit
	})

	Version = "v9.9.9"
	Commit = "abc1234"

	assert.Equal(t, "abc1234", Revision())
	assert.Equal(t, "v9.9.9 (abc1234)", String())
}

func TestRevisionFallback(t *testing.T) {
	origCommit := Commit
	t.Cleanup(func() { Commit = origCommit })

	Commit = ""
	rev := Revision()

	assert.NotEmpty(t, rev)
	assert.LessOrEqual(t, len(rev), len("unknown"))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "0123456", shorten("0123456789abcdef"))
	assert.Equal(t, "abc", shorten("abc"))
}
