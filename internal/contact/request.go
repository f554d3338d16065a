package contact

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrMissingFields indicates a required field was left empty.
	ErrMissingFields = errors.New("required field is missing")

	// ErrInvalidEmail indicates the email failed the syntax check.
	ErrInvalidEmail = errors.New("email address is malformed")
)

// emailPattern accepts local@domain.tld: no whitespace or extra @ on either
// side of the @, and at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Request is a single contact form submission. It exists only for the
// duration of one Submit call; nothing is persisted.
type Request struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

// ParseRequest builds a Request from named form fields, trimming
// surrounding whitespace from every value.
func ParseRequest(form url.Values) Request {
	return Request{
		Name:    strings.TrimSpace(form.Get("name")),
		Email:   strings.TrimSpace(form.Get("email")),
		Company: strings.TrimSpace(form.Get("company")),
		Service: strings.TrimSpace(form.Get("service")),
		Message: strings.TrimSpace(form.Get("message")),
	}
}

// Validate runs the fail-fast checks in order: required fields first, then
// email syntax. The first failing check wins.
func (r Request) Validate() error {
	if r.Name == "" || r.Email == "" || r.Message == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}
