package mock

import (
	"context"

	"github.com/fwojciec/alloydoc"
)

var _ alloydoc.SectionParser = (*SectionParser)(nil)

// SectionParser is a mock implementation of alloydoc.SectionParser.
type SectionParser struct {
	ParseSectionsFn func(doc *alloydoc.Document) ([]alloydoc.Section, error)
}

func (p *SectionParser) ParseSections(doc *alloydoc.Document) ([]alloydoc.Section, error) {
	return p.ParseSectionsFn(doc)
}

var _ alloydoc.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of alloydoc.SectionService.
type SectionService struct {
	FindSectionsFn func(ctx context.Context, uri string) ([]alloydoc.Section, error)
}

func (s *SectionService) FindSections(ctx context.Context, uri string) ([]alloydoc.Section, error) {
	return s.FindSectionsFn(ctx, uri)
}
