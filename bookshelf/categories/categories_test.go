package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	in, err := normalize(CategoryInput{Name: "  Science Fiction "})
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", in.Name)
	assert.Equal(t, "science-fiction", in.Slug)

	in, err = normalize(CategoryInput{Name: "Sci-Fi", Slug: "SF & Fantasy"})
	require.NoError(t, err)
	assert.Equal(t, "sf-fantasy", in.Slug)

	_, err = normalize(CategoryInput{Name: "!!"})
	assert.ErrorIs(t, err, ErrEmptySlug)
}
