package comments

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxAuthorNameLength = 100
	MaxContentLength    = 5000
	MaxEmailLength      = 255
)

// the messages match the ones raised by the comments table triggers
const (
	msgAuthorNameTooLong = "Author name must be 100 characters or less"
	msgContentTooLong    = "Comment must be 5000 characters or less"
	msgEmailTooLong      = "Email must be 255 characters or less"
	msgInvalidEmail      = "Please enter a valid email address"
)

var ErrMissingFields = errors.New("Please fill in your name and comment") //nolint:staticcheck // shown to commenters as is

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// trims the request and checks it against the comment limits
func Validate(req CreateCommentRequest) (CreateCommentRequest, error) {
	req.AuthorName = strings.TrimSpace(req.AuthorName)
	req.AuthorEmail = strings.TrimSpace(req.AuthorEmail)
	req.Content = strings.TrimSpace(req.Content)

	if req.AuthorName == "" || req.Content == "" {
		return req, ErrMissingFields
	}

	if utf8.RuneCountInString(req.AuthorName) > MaxAuthorNameLength {
		return req, &ValidationError{Message: msgAuthorNameTooLong}
	}

	if utf8.RuneCountInString(req.Content) > MaxContentLength {
		return req, &ValidationError{Message: msgContentTooLong}
	}

	if req.AuthorEmail != "" {
		if utf8.RuneCountInString(req.AuthorEmail) > MaxEmailLength {
			return req, &ValidationError{Message: msgEmailTooLong}
		}

		if !emailPattern.MatchString(req.AuthorEmail) {
			return req, &ValidationError{Message: msgInvalidEmail}
		}
	}

	return req, nil
}
