package alloydoc

import (
	"fmt"
	"strings"
)

// PreviewLines is the number of section lines shown in search results.
const PreviewLines = 40

// FormatMatches formats lookup results for display or LLM context.
// bodies maps entry IDs to section text appended under each match; it may
// be nil.
func FormatMatches(query string, matches []MatchResult, bodies map[string]string) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No types found matching '%s'.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Results for '%s'\n", query)
	for _, m := range matches {
		fmt.Fprintf(&b, "\n---\n**%s** (%s match, score %.2f)\nID: %s\nDocs: %s\n\n%s\n",
			m.Name, m.MatchedField, m.Score, m.EntryID, m.BodyRef, m.Summary)
		if body := bodies[m.EntryID]; body != "" {
			b.WriteString("\n")
			b.WriteString(body)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatSearchResults formats section search results. Long sections are
// cut to PreviewLines lines with a pointer to the full document.
func FormatSearchResults(query string, results []SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results for '%s'.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Search results for '%s'\n", query)
	for _, r := range results {
		s := r.Section
		fmt.Fprintf(&b, "\n---\n**%s** (%s)\nURI: %s#%s\n\n%s\n",
			strings.TrimSpace(strings.TrimLeft(s.Heading, "#")), s.ResourceName, s.URI, s.Anchor,
			preview(s.Content, s.URI))
	}

	return b.String()
}

func preview(content, uri string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= PreviewLines {
		return content
	}
	return fmt.Sprintf("%s\n\n... (%d more lines, fetch full resource: %s)",
		strings.Join(lines[:PreviewLines], "\n"), len(lines)-PreviewLines, uri)
}

// FormatDocumentList formats a listing of available documents.
func FormatDocumentList(docs []*Document) string {
	if len(docs) == 0 {
		return "No resources available."
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, fmt.Sprintf("- **%s**\n  URI: `%s`\n  %s", doc.Name, doc.URI, doc.Description))
	}

	return "# Available Resources\n\n" + strings.Join(parts, "\n\n")
}

// FormatEntry formats a resolved catalog entry followed by its section body.
func FormatEntry(e *Entry, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nID: %s\nDocs: %s\n", e.Name, e.ID, e.BodyRef)
	if len(e.Aliases) > 0 {
		fmt.Fprintf(&b, "Aliases: %s\n", strings.Join(e.Aliases, ", "))
	}
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(e.Tags, ", "))
	}
	if e.Summary != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Summary)
	}
	if body != "" {
		fmt.Fprintf(&b, "\n%s\n", body)
	}
	return b.String()
}

// FormatResourceIndex formats a compact URI listing appended to not-found
// replies so callers can pick a valid resource.
func FormatResourceIndex(docs []*Document) string {
	var b strings.Builder
	b.WriteString("Available resources:")
	for _, doc := range docs {
		fmt.Fprintf(&b, "\n  - %s (%s)", doc.URI, doc.Name)
	}
	return b.String()
}
