package content

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed casestudies/*.md legal/*.md
var contentFS embed.FS

// CaseStudy is a full portfolio case study, authored as a markdown file
// with YAML frontmatter under casestudies/.
type CaseStudy struct {
	Slug         string
	Title        string
	Category     string
	Client       string
	Duration     string
	Team         string
	Icon         string
	Description  string
	Results      []string
	Technologies []string
	Body         template.HTML
}

type caseStudyMeta struct {
	Title        string   `yaml:"title"`
	Category     string   `yaml:"category"`
	Client       string   `yaml:"client"`
	Duration     string   `yaml:"duration"`
	Team         string   `yaml:"team"`
	Icon         string   `yaml:"icon"`
	Description  string   `yaml:"description"`
	Results      []string `yaml:"results"`
	Technologies []string `yaml:"technologies"`
}

var loadCaseStudies = sync.OnceValues(func() (map[string]CaseStudy, error) {
	entries, err := fs.Glob(contentFS, "casestudies/*.md")
	if err != nil {
		return nil, err
	}

	studies := make(map[string]CaseStudy, len(entries))
	for _, name := range entries {
		raw, err := contentFS.ReadFile(name)
		if err != nil {
			return nil, err
		}

		frontmatter, body, err := splitFrontmatter(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		var meta caseStudyMeta
		if err := yaml.Unmarshal(frontmatter, &meta); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidFrontmatter, err)
		}

		rendered, err := renderMarkdown(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		slug := strings.TrimSuffix(path.Base(name), ".md")
		studies[slug] = CaseStudy{
			Slug:         slug,
			Title:        meta.Title,
			Category:     meta.Category,
			Client:       meta.Client,
			Duration:     meta.Duration,
			Team:         meta.Team,
			Icon:         meta.Icon,
			Description:  meta.Description,
			Results:      meta.Results,
			Technologies: meta.Technologies,
			Body:         rendered,
		}
	}
	return studies, nil
})

// CaseStudies returns all case studies sorted by slug.
func CaseStudies() ([]CaseStudy, error) {
	bySlug, err := loadCaseStudies()
	if err != nil {
		return nil, err
	}

	studies := make([]CaseStudy, 0, len(bySlug))
	for _, cs := range bySlug {
		studies = append(studies, cs)
	}
	sort.Slice(studies, func(i, j int) bool { return studies[i].Slug < studies[j].Slug })
	return studies, nil
}

// CaseStudyBySlug looks up one case study. The second return value is false
// for unknown slugs.
func CaseStudyBySlug(slug string) (CaseStudy, bool, error) {
	bySlug, err := loadCaseStudies()
	if err != nil {
		return CaseStudy{}, false, err
	}
	cs, ok := bySlug[slug]
	return cs, ok, nil
}

// LegalPage is a legal document (privacy policy, terms of service) authored
// as markdown under legal/.
type LegalPage struct {
	Slug  string
	Title string
	Body  template.HTML
}

type legalMeta struct {
	Title string `yaml:"title"`
}

var loadLegalPages = sync.OnceValues(func() (map[string]LegalPage, error) {
	entries, err := fs.Glob(contentFS, "legal/*.md")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]LegalPage, len(entries))
	for _, name := range entries {
		raw, err := contentFS.ReadFile(name)
		if err != nil {
			return nil, err
		}

		frontmatter, body, err := splitFrontmatter(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		var meta legalMeta
		if err := yaml.Unmarshal(frontmatter, &meta); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidFrontmatter, err)
		}

		rendered, err := renderMarkdown(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		slug := strings.TrimSuffix(path.Base(name), ".md")
		pages[slug] = LegalPage{Slug: slug, Title: meta.Title, Body: rendered}
	}
	return pages, nil
})

// LegalPageBySlug looks up a legal page by slug ("privacy", "terms").
func LegalPageBySlug(slug string) (LegalPage, bool, error) {
	pages, err := loadLegalPages()
	if err != nil {
		return LegalPage{}, false, err
	}
	p, ok := pages[slug]
	return p, ok, nil
}
