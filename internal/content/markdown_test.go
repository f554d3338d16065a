package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	t.Parallel()

	t.Run("document with frontmatter", func(t *testing.T) {
		t.Parallel()

		fm, body, err := splitFrontmatter([]byte("---\ntitle: Hello\n---\n# Heading\n"))
		require.NoError(t, err)
		assert.Equal(t, "title: Hello\n", string(fm))
		assert.Equal(t, "# Heading\n", string(body))
	})

	t.Run("document without frontmatter", func(t *testing.T) {
		t.Parallel()

		fm, body, err := splitFrontmatter([]byte("# Just markdown\n"))
		require.NoError(t, err)
		assert.Nil(t, fm)
		assert.Equal(t, "# Just markdown\n", string(body))
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()

		fm, body, err := splitFrontmatter([]byte("---\r\ntitle: Hello\r\n---\r\nbody\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "title: Hello\r\n", string(fm))
		assert.Equal(t, "body\r\n", string(body))
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		t.Parallel()

		_, _, err := splitFrontmatter([]byte("---\ntitle: Hello\n"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("nothing after opening delimiter", func(t *testing.T) {
		t.Parallel()

		_, _, err := splitFrontmatter([]byte("---\n"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		out, err := renderMarkdown([]byte("## The Challenge\n\nScaling was hard.\n"))
		require.NoError(t, err)
		assert.Contains(t, string(out), "The Challenge")
		assert.Contains(t, string(out), "<p>Scaling was hard.</p>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		t.Parallel()

		out, err := renderMarkdown([]byte("hello <script>alert(1)</script> world\n"))
		require.NoError(t, err)
		assert.NotContains(t, string(out), "<script>")
		assert.NotContains(t, string(out), "alert(1)")
	})
}
