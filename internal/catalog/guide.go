package catalog

import (
	"sort"
	"strings"
)

// GuidePage is one static guide article, stored as markdown.
type GuidePage struct {
	Slug     string
	Title    string
	Markdown string
}

const placeholderGuide = "# Guide\n\nThis guide is still being written. Check back soon.\n"

// Guide returns the page for slug. Unknown slugs return a placeholder
// page and ok=false, mirroring the original site's fallback.
func Guide(slug string) (GuidePage, bool) {
	raw, err := dataFiles.ReadFile("data/guide/" + slug + ".md")
	if err != nil {
		return GuidePage{Slug: slug, Title: "Guide", Markdown: placeholderGuide}, false
	}
	md := string(raw)
	return GuidePage{Slug: slug, Title: guideTitle(md), Markdown: md}, true
}

// GuideSlugs lists the available guide pages.
func GuideSlugs() []string {
	entries, err := dataFiles.ReadDir("data/guide")
	if err != nil {
		return nil
	}
	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".md") {
			slugs = append(slugs, strings.TrimSuffix(name, ".md"))
		}
	}
	sort.Strings(slugs)
	return slugs
}

func guideTitle(md string) string {
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return "Guide"
}
