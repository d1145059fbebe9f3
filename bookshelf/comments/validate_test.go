package comments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateCommentRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     CreateCommentRequest{AuthorName: "   ", Content: "Loved it"},
			wantMsg: ErrMissingFields.Error(),
		},
		{
			name:    "missing content",
			req:     CreateCommentRequest{AuthorName: "Ana", Content: "\n"},
			wantMsg: ErrMissingFields.Error(),
		},
		{
			name:    "long name",
			req:     CreateCommentRequest{AuthorName: strings.Repeat("a", 101), Content: "x"},
			wantMsg: msgAuthorNameTooLong,
		},
		{
			name:    "long content",
			req:     CreateCommentRequest{AuthorName: "Ana", Content: strings.Repeat("x", 5001)},
			wantMsg: msgContentTooLong,
		},
		{
			name:    "long email",
			req:     CreateCommentRequest{AuthorName: "Ana", Content: "x", AuthorEmail: strings.Repeat("a", 250) + "@example.com"},
			wantMsg: msgEmailTooLong,
		},
		{
			name:    "bad email",
			req:     CreateCommentRequest{AuthorName: "Ana", Content: "x", AuthorEmail: "ana@"},
			wantMsg: msgInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	req, err := Validate(CreateCommentRequest{
		AuthorName:  "  Ana  ",
		AuthorEmail: " ana@example.com ",
		Content:     strings.Repeat("é", MaxContentLength),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana", req.AuthorName)
	assert.Equal(t, "ana@example.com", req.AuthorEmail)

	_, err = Validate(CreateCommentRequest{AuthorName: "Ana", Content: "No email given"})
	assert.NoError(t, err)
}
