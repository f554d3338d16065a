package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&amp;", EscapeHTML("&"))
	assert.Equal(t, "&lt;b&gt;", EscapeHTML("<b>"))
	assert.Equal(t, "&quot;hi&quot;", EscapeHTML(`"hi"`))
	assert.Equal(t, "it&#039;s", EscapeHTML("it's"))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))
}

func TestRenderNotification_OptionalFields(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)

	t.Run("all fields present", func(t *testing.T) {
		t.Parallel()

		html, text, err := renderNotification(Request{
			Name:    "Jane",
			Email:   "jane@example.com",
			Company: "Acme",
			Service: "ui-ux-design",
			Message: "hello",
		}, at)
		require.NoError(t, err)

		assert.Contains(t, html, "Acme")
		assert.Contains(t, html, "UI/UX Design")
		assert.Contains(t, text, "Company: Acme")
		assert.Contains(t, text, "Service of Interest: UI/UX Design")
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		t.Parallel()

		html, text, err := renderNotification(Request{
			Name:    "Jane",
			Email:   "jane@example.com",
			Message: "hello",
		}, at)
		require.NoError(t, err)

		assert.NotContains(t, html, "Company:")
		assert.NotContains(t, html, "Service of Interest:")
		assert.NotContains(t, text, "Company:")
		assert.NotContains(t, text, "Service of Interest:")
	})
}

func TestRenderNotification_MessageLineBreaks(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	html, text, err := renderNotification(Request{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "line one\nline two",
	}, at)
	require.NoError(t, err)

	assert.Contains(t, html, "line one<br>\nline two")
	assert.Contains(t, text, "line one\nline two")
}
