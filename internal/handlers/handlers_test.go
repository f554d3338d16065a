package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetechcm/website/internal/contact"
	"github.com/onetechcm/website/internal/handlers"
	"github.com/onetechcm/website/internal/views"
	"github.com/onetechcm/website/pkg/logger"
)

type stubSubmitter struct {
	result contact.Result
	calls  []contact.Request
}

func (s *stubSubmitter) Submit(_ context.Context, req contact.Request) contact.Result {
	s.calls = append(s.calls, req)
	return s.result
}

func newTestServer(t *testing.T, svc contact.Submitter) *httptest.Server {
	t.Helper()

	v, err := views.New()
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.NewRouter(v, svc, logger.NewNope()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(body)
}

func TestRouter_Pages(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubSubmitter{})

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "One Tech"},
		{path: "/about", want: "About"},
		{path: "/services", want: "Custom Software Development"},
		{path: "/training", want: "Web Development Bootcamp"},
		{path: "/work", want: "One Market"},
		{path: "/work/ecommerce-platform", want: "Major African Retailer"},
		{path: "/privacy", want: "Privacy Policy"},
		{path: "/terms", want: "Terms of Service"},
		{path: "/contact", want: "Contact Us"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			resp, body := get(t, srv, tt.path)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubSubmitter{})

	for _, path := range []string{"/nope", "/work/unknown-project"} {
		resp, _ := get(t, srv, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubSubmitter{})

	resp, body := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubSubmitter{})

	resp, _ := get(t, srv, "/health")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestContact_SubmitSuccess(t *testing.T) {
	t.Parallel()

	svc := &stubSubmitter{result: contact.Result{Success: true, Message: contact.MsgSuccess}}
	srv := newTestServer(t, svc)

	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"message": {"Hello there"},
	}
	resp, err := srv.Client().PostForm(srv.URL+"/contact", form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), contact.MsgSuccess)
	// A successful submission clears the form.
	assert.NotContains(t, string(body), "Jane Doe")

	require.Len(t, svc.calls, 1)
	assert.Equal(t, "jane@example.com", svc.calls[0].Email)
}

func TestContact_SubmitFailureRetainsFields(t *testing.T) {
	t.Parallel()

	svc := &stubSubmitter{result: contact.Result{Success: false, Message: contact.MsgInvalidEmail}}
	srv := newTestServer(t, svc)

	form := url.Values{
		"name":    {"Jane Doe"},
		"email":   {"not-an-email"},
		"message": {"Hello there"},
	}
	resp, err := srv.Client().PostForm(srv.URL+"/contact", form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), contact.MsgInvalidEmail)
	assert.Contains(t, string(body), "Jane Doe")
	assert.Contains(t, string(body), "not-an-email")
}

func TestContact_MalformedBody(t *testing.T) {
	t.Parallel()

	svc := &stubSubmitter{}
	srv := newTestServer(t, svc)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/contact", strings.NewReader("%zz"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, svc.calls)
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &stubSubmitter{})

	resp, body := get(t, srv, "/static/styles.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body)
}
