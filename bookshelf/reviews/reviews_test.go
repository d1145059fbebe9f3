package reviews

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"The Name of the Wind", "the-name-of-the-wind"},
		{"  Dune: Part One!  ", "dune-part-one"},
		{"Gödel, Escher, Bach", "g-del-escher-bach"},
		{"1984", "1984"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestNormalize(t *testing.T) {
	empty := ""
	blank := "  "

	in, err := normalize(ReviewInput{
		Title:      "  A Wizard of Earthsea ",
		CoverImage: &blank,
		CategoryID: &empty,
	})
	require.NoError(t, err)

	assert.Equal(t, "A Wizard of Earthsea", in.Title)
	assert.Equal(t, "a-wizard-of-earthsea", in.Slug)
	assert.Equal(t, DefaultAuthorName, in.AuthorName)
	assert.Nil(t, in.CoverImage)
	assert.Nil(t, in.CategoryID)
}

func TestNormalize_ExplicitSlugIsCleaned(t *testing.T) {
	in, err := normalize(ReviewInput{Title: "Whatever", Slug: "My Custom Slug", AuthorName: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "my-custom-slug", in.Slug)
	assert.Equal(t, "Ana", in.AuthorName)
}

func TestNormalize_EmptySlug(t *testing.T) {
	_, err := normalize(ReviewInput{Title: "???"})
	assert.ErrorIs(t, err, ErrEmptySlug)
}
