package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	keys, err := validate(map[string]string{
		KeySiteTagline: "Books, mostly",
		KeySiteName:    "Bookshelf",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{KeySiteName, KeySiteTagline}, keys)

	_, err = validate(map[string]string{KeySiteName: "x", "theme": "dark"})
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "theme")

	_, err = validate(nil)
	assert.ErrorIs(t, err, ErrNoSettings)
}

func TestIsKnown(t *testing.T) {
	for _, k := range KnownKeys {
		assert.True(t, isKnown(k))
	}
	assert.False(t, isKnown("SITE_NAME"))
}
