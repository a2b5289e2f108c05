// Package validation holds request input checks that run before any
// database or AI gateway work.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"wathiq/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if an account password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateURL checks that a URL is well-formed http(s) with a host. This
// runs before any network or AI call is made for the URL.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ValidationError{Field: "url", Message: "url is required"}
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ValidationError{Field: "url", Message: "invalid url format"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ValidationError{Field: "url", Message: "url must use http or https"}
	}
	if parsed.Host == "" {
		return ValidationError{Field: "url", Message: "url must include a host"}
	}
	return nil
}

// ValidateMediaType maps a MIME type to the broad media category it belongs
// to, rejecting anything that is not image, video or audio.
func ValidateMediaType(mimeType string) (models.FileType, error) {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.FileTypeImage, nil
	case strings.HasPrefix(mimeType, "video/"):
		return models.FileTypeVideo, nil
	case strings.HasPrefix(mimeType, "audio/"):
		return models.FileTypeAudio, nil
	default:
		return "", ValidationError{Field: "file", Message: "unsupported file type"}
	}
}
