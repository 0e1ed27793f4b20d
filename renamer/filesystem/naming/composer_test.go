package naming

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fixedGenerator returns the same token every time
type fixedGenerator struct {
	token string
	err   error
}

func (g *fixedGenerator) NewToken() (string, error) {
	return g.token, g.err
}

const fixedToken = "0123456789ABCDEF0123456789ABCDEF"

func TestComposeKeepsExtension(t *testing.T) {
	c := NewComposer(&fixedGenerator{token: fixedToken})

	testCases := []struct {
		name     string
		original string
		want     string
	}{
		{name: "simple", original: "photo.jpg", want: fixedToken + ".jpg"},
		{name: "multi_dot", original: "backup.tar.gz", want: fixedToken + ".gz"},
		{name: "no_extension", original: "README", want: fixedToken + "."},
		{name: "hidden", original: ".env", want: fixedToken + "."},
		{name: "hidden_with_extension", original: ".env.local", want: fixedToken + ".local"},
		{name: "trailing_dot", original: "draft.", want: fixedToken + "."},
		{name: "unicode", original: "报告.docx", want: fixedToken + ".docx"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Compose(tc.original)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestComposePropagatesGeneratorError(t *testing.T) {
	boom := errors.New("entropy exhausted")
	c := NewComposer(&fixedGenerator{err: boom})

	_, err := c.Compose("a.txt")
	assert.ErrorIs(t, err, boom)
}

// A name with extension ext always becomes TOKEN.ext, one without becomes TOKEN.
func TestPropertyComposedNameFormat(t *testing.T) {
	c := NewComposer(NewUUIDGenerator())
	stem := rapid.StringMatching(`[A-Za-z0-9_\- ]{1,20}`)
	ext := rapid.StringMatching(`[A-Za-z0-9]{1,8}`)

	rapid.Check(t, func(t *rapid.T) {
		s := stem.Draw(t, "stem")
		e := ext.Draw(t, "ext")

		withExt, err := c.Compose(s + "." + e)
		if err != nil {
			t.Fatalf("compose failed: %v", err)
		}
		want := regexp.MustCompile(`^[0-9A-F]{32}\.` + regexp.QuoteMeta(e) + `$`)
		if !want.MatchString(withExt) {
			t.Fatalf("%q does not match %s", withExt, want)
		}

		bare, err := c.Compose(s)
		if err != nil {
			t.Fatalf("compose failed: %v", err)
		}
		if !regexp.MustCompile(`^[0-9A-F]{32}\.$`).MatchString(bare) {
			t.Fatalf("%q does not end in a bare dot", bare)
		}
	})
}
