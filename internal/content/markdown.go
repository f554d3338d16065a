package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// ErrInvalidFrontmatter indicates a malformed YAML frontmatter block.
var ErrInvalidFrontmatter = errors.New("invalid frontmatter")

var (
	md = goldmark.New()

	// Authored content is trusted, but it still passes through a sanitizer
	// before being marked as safe HTML for the page templates.
	htmlPolicy = bluemonday.UGCPolicy()
)

// splitFrontmatter separates a document into its YAML frontmatter bytes and
// markdown body. Documents without a leading --- delimiter have no
// frontmatter; the whole content is the body.
func splitFrontmatter(content []byte) (frontmatter, body []byte, err error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, nil
	}

	afterFirst := bytes.TrimPrefix(content, delimiter)
	afterFirst = bytes.TrimLeft(afterFirst, "\n\r")
	if len(afterFirst) == 0 {
		return nil, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	endIdx := bytes.Index(afterFirst, delimiter)
	if endIdx == -1 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	frontmatter = afterFirst[:endIdx]
	bodyStart := endIdx + len(delimiter)
	if bodyStart < len(afterFirst) {
		if afterFirst[bodyStart] == '\r' && bodyStart+1 < len(afterFirst) && afterFirst[bodyStart+1] == '\n' {
			bodyStart += 2
		} else if afterFirst[bodyStart] == '\n' {
			bodyStart++
		}
	}

	return frontmatter, afterFirst[bodyStart:], nil
}

// renderMarkdown converts a markdown body to sanitized HTML.
func renderMarkdown(body []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(htmlPolicy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized above
}
