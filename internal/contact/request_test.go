package contact

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"name":    {"  Jane Doe  "},
		"email":   {" jane@example.com "},
		"company": {"Acme"},
		"service": {"cloud-solutions"},
		"message": {"  Hello there  "},
	}

	req := ParseRequest(form)
	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "jane@example.com", req.Email)
	assert.Equal(t, "Acme", req.Company)
	assert.Equal(t, "cloud-solutions", req.Service)
	assert.Equal(t, "Hello there", req.Message)
}

func TestParseRequest_MissingFields(t *testing.T) {
	t.Parallel()

	req := ParseRequest(url.Values{})
	assert.Equal(t, Request{}, req)
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := Request{Name: "Jane", Email: "jane@example.com", Message: "Hi"}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "valid", mutate: func(*Request) {}, wantErr: nil},
		{name: "missing name", mutate: func(r *Request) { r.Name = "" }, wantErr: ErrMissingFields},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }, wantErr: ErrMissingFields},
		{name: "missing message", mutate: func(r *Request) { r.Message = "" }, wantErr: ErrMissingFields},
		{name: "no at sign", mutate: func(r *Request) { r.Email = "bad-email" }, wantErr: ErrInvalidEmail},
		{name: "no tld dot", mutate: func(r *Request) { r.Email = "jane@example" }, wantErr: ErrInvalidEmail},
		{name: "double at", mutate: func(r *Request) { r.Email = "jane@@example.com" }, wantErr: ErrInvalidEmail},
		{name: "whitespace in email", mutate: func(r *Request) { r.Email = "jane doe@example.com" }, wantErr: ErrInvalidEmail},
		{name: "minimal valid email", mutate: func(r *Request) { r.Email = "a@b.c" }, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequest_Validate_RequiredBeforeSyntax(t *testing.T) {
	t.Parallel()

	// Missing message wins over a malformed email: first failing check.
	req := Request{Name: "Jane", Email: "not-an-email"}
	require.ErrorIs(t, req.Validate(), ErrMissingFields)
}
