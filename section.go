package alloydoc

import (
	"context"
	"strconv"
	"strings"
	"unicode"
)

// IntroHeading names the text before a document's first section heading.
const IntroHeading = "(intro)"

// Section represents one headed part of a markdown document.
type Section struct {
	URI          string    `json:"uri"`
	ResourceName string    `json:"resource_name"`
	Heading      string    `json:"heading"`
	Anchor       string    `json:"anchor"`
	Content      string    `json:"content"`
	Snippets     []Snippet `json:"snippets,omitempty"`
}

// Snippet is a fenced code block found in a section.
type Snippet struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// SectionParser splits a document into sections.
type SectionParser interface {
	ParseSections(doc *Document) ([]Section, error)
}

// SectionService reads the sections of stored documents.
type SectionService interface {
	// FindSections returns the sections of the document with the given URI
	// in document order. Returns ENOTFOUND if the document is unknown.
	FindSections(ctx context.Context, uri string) ([]Section, error)
}

// FindBody returns the section a body reference points to. A reference
// without an anchor resolves to the document's first section.
// Returns ENOTFOUND if the document or the anchor no longer exists.
func FindBody(ctx context.Context, sections SectionService, ref string) (*Section, error) {
	uri, anchor := SplitBodyRef(ref)
	all, err := sections.FindSections(ctx, uri)
	if err != nil {
		return nil, err
	}
	if anchor == "" {
		if len(all) == 0 {
			return nil, Errorf(ENOTFOUND, "document %q has no sections", uri)
		}
		return &all[0], nil
	}
	return FindSection(all, anchor)
}

// FindSection returns the section with the given anchor.
// Returns ENOTFOUND if no section has that anchor.
func FindSection(sections []Section, anchor string) (*Section, error) {
	for i := range sections {
		if sections[i].Anchor == anchor {
			return &sections[i], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "section %q not found", anchor)
}

// Anchors generates URL-safe anchors for titles in order, suffixing
// duplicates with -1, -2 and so on.
type Anchors struct {
	counts map[string]int
}

// Next returns the anchor for title.
func (a *Anchors) Next(title string) string {
	if a.counts == nil {
		a.counts = make(map[string]int)
	}

	base := GenerateAnchor(title)
	count, exists := a.counts[base]
	a.counts[base] = count + 1
	if !exists {
		return base
	}
	return base + "-" + strconv.Itoa(count)
}

// GenerateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
