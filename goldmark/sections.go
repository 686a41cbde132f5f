// Package goldmark splits markdown documents into sections using the
// goldmark parser.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/alloydoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure SectionParser implements alloydoc.SectionParser at compile time.
var _ alloydoc.SectionParser = (*SectionParser)(nil)

// SectionLevel is the heading level that starts a new section.
const SectionLevel = 2

// SectionParser implements alloydoc.SectionParser. Each call builds its own
// goldmark parser, so it is safe for concurrent use.
type SectionParser struct{}

// NewSectionParser creates a new SectionParser.
func NewSectionParser() *SectionParser {
	return &SectionParser{}
}

type sectionStart struct {
	offset  int
	heading string
	title   string
}

type codeBlock struct {
	offset  int
	snippet alloydoc.Snippet
}

// ParseSections splits doc on level-2 headings. Text before the first heading
// becomes the intro section when it is not blank. Headings inside code
// fences are not section boundaries.
func (p *SectionParser) ParseSections(doc *alloydoc.Document) ([]alloydoc.Section, error) {
	if doc == nil || strings.TrimSpace(doc.Content) == "" {
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "empty markdown input")
	}

	source := []byte(doc.Content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var starts []sectionStart
	var blocks []codeBlock

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Heading:
			if n.Level != SectionLevel || n.Lines().Len() == 0 {
				return ast.WalkSkipChildren, nil
			}
			start := lineStart(source, n.Lines().At(0).Start)
			starts = append(starts, sectionStart{
				offset:  start,
				heading: strings.TrimSpace(string(source[start:lineEnd(source, start)])),
				title:   strings.TrimSpace(string(n.Text(source))),
			})
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lines := n.Lines()
			if lines.Len() == 0 {
				return ast.WalkSkipChildren, nil
			}
			var code bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				code.Write(seg.Value(source))
			}
			blocks = append(blocks, codeBlock{
				offset: lines.At(0).Start,
				snippet: alloydoc.Snippet{
					Language: string(n.Language(source)),
					Code:     strings.TrimRight(code.String(), "\n"),
				},
			})
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return buildSections(doc, source, starts, blocks), nil
}

func buildSections(doc *alloydoc.Document, source []byte, starts []sectionStart, blocks []codeBlock) []alloydoc.Section {
	var anchors alloydoc.Anchors
	sections := make([]alloydoc.Section, 0, len(starts)+1)

	// Index of the section owning each start, -1 for a dropped intro.
	owners := make([]int, 0, len(starts)+1)

	introEnd := len(source)
	if len(starts) > 0 {
		introEnd = starts[0].offset
	}
	if intro := strings.TrimSpace(string(source[:introEnd])); intro != "" {
		sections = append(sections, alloydoc.Section{
			URI:          doc.URI,
			ResourceName: doc.Name,
			Heading:      alloydoc.IntroHeading,
			Anchor:       anchors.Next(alloydoc.IntroHeading),
			Content:      intro,
		})
		owners = append(owners, 0)
	} else {
		owners = append(owners, -1)
	}

	for i, s := range starts {
		end := len(source)
		if i+1 < len(starts) {
			end = starts[i+1].offset
		}
		owners = append(owners, len(sections))
		sections = append(sections, alloydoc.Section{
			URI:          doc.URI,
			ResourceName: doc.Name,
			Heading:      s.heading,
			Anchor:       anchors.Next(s.title),
			Content:      strings.TrimSpace(string(source[s.offset:end])),
		})
	}

	for _, b := range blocks {
		// owners[0] is the intro; owners[i+1] belongs to starts[i].
		slot := 0
		for i, s := range starts {
			if s.offset <= b.offset {
				slot = i + 1
			}
		}
		if idx := owners[slot]; idx >= 0 {
			sections[idx].Snippets = append(sections[idx].Snippets, b.snippet)
		}
	}

	return sections
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(source []byte, pos int) int {
	for pos > 0 && source[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the offset of the newline ending the line starting at pos.
func lineEnd(source []byte, pos int) int {
	if i := bytes.IndexByte(source[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(source)
}
