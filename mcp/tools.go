package mcp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fwojciec/alloydoc"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListURI asks get_resource for the document listing.
const ListURI = "list"

// HandleLookupType ranks catalog entries against type_name and appends each
// match's documentation section.
func (s *Server) HandleLookupType(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, err := stringArg(args, "type_name")
	if err != nil {
		return toolError(err)
	}
	limit, err := intArg(args, "limit")
	if err != nil {
		return toolError(err)
	}

	matches, err := s.LookupService.LookupType(ctx, alloydoc.LookupRequest{Query: query, Limit: limit})
	if err != nil {
		return toolError(err)
	}
	if len(matches) == 0 {
		return s.withResourceIndex(ctx, alloydoc.FormatMatches(query, nil, nil))
	}

	bodies := make(map[string]string, len(matches))
	for _, m := range matches {
		section, err := alloydoc.FindBody(ctx, s.SectionService, m.BodyRef)
		if alloydoc.ErrorCode(err) == alloydoc.ENOTFOUND {
			s.Logger.Warn("entry body missing", "id", m.EntryID, "ref", m.BodyRef)
			continue
		} else if err != nil {
			return nil, err
		}
		bodies[m.EntryID] = section.Content
	}

	return mcp.NewToolResultText(alloydoc.FormatMatches(query, matches, bodies)), nil
}

// HandleSearchResources runs a full-text section search.
func (s *Server) HandleSearchResources(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, err := stringArg(args, "query")
	if err != nil {
		return toolError(err)
	}
	limit, err := intArg(args, "max_results")
	if err != nil {
		return toolError(err)
	}

	var opts alloydoc.SearchOptions
	if limit != nil {
		if *limit < 1 {
			return toolError(alloydoc.Errorf(alloydoc.EINVALID, "max_results must be a positive integer, got %d", *limit))
		}
		opts.Limit = *limit
	}

	results, err := s.SearchService.Search(ctx, query, opts)
	if err != nil {
		return toolError(err)
	}
	if len(results) == 0 {
		return s.withResourceIndex(ctx, alloydoc.FormatSearchResults(query, nil))
	}
	return mcp.NewToolResultText(alloydoc.FormatSearchResults(query, results)), nil
}

// HandleGetResource returns a document, a single section (uri#anchor) or a
// catalog entry with its section. "list" enumerates documents. Unknown URIs
// are answered with the available ones rather than an error.
func (s *Server) HandleGetResource(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uri, err := stringArg(req.GetArguments(), "uri")
	if err != nil {
		return toolError(err)
	}
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return toolError(alloydoc.Errorf(alloydoc.EINVALID, "uri required"))
	}

	if uri == ListURI {
		docs, err := s.DocumentService.FindDocuments(ctx, alloydoc.DocumentFilter{})
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(alloydoc.FormatDocumentList(docs)), nil
	}

	text, err := s.resource(ctx, uri)
	if alloydoc.ErrorCode(err) == alloydoc.ENOTFOUND {
		return s.withResourceIndex(ctx, fmt.Sprintf("Resource not found: '%s'", uri))
	} else if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}

// resource resolves uri to text. Returns ENOTFOUND for unknown URIs.
func (s *Server) resource(ctx context.Context, uri string) (string, error) {
	if strings.HasPrefix(uri, alloydoc.TypeURIPrefix) {
		return s.entryText(ctx, uri)
	}

	docURI, anchor := alloydoc.SplitBodyRef(uri)
	if anchor != "" {
		section, err := alloydoc.FindBody(ctx, s.SectionService, uri)
		if err != nil {
			return "", err
		}
		return section.Content, nil
	}

	doc, err := s.DocumentService.FindDocumentByURI(ctx, docURI)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// entryText formats the entry with the given id and its section body. A
// retired section still yields the entry metadata.
func (s *Server) entryText(ctx context.Context, id string) (string, error) {
	entry, err := s.LookupService.Resolve(ctx, id)
	if err != nil {
		return "", err
	}

	var body string
	section, err := alloydoc.FindBody(ctx, s.SectionService, entry.BodyRef)
	switch {
	case err == nil:
		body = section.Content
	case alloydoc.ErrorCode(err) != alloydoc.ENOTFOUND:
		return "", err
	}
	return alloydoc.FormatEntry(entry, body), nil
}

func (s *Server) withResourceIndex(ctx context.Context, text string) (*mcp.CallToolResult, error) {
	docs, err := s.DocumentService.FindDocuments(ctx, alloydoc.DocumentFilter{})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text + "\n\n" + alloydoc.FormatResourceIndex(docs)), nil
}

// toolError reports caller mistakes as tool results so the model can
// correct the call. Anything else is a protocol-level failure.
func toolError(err error) (*mcp.CallToolResult, error) {
	if alloydoc.ErrorCode(err) == alloydoc.EINVALID {
		return mcp.NewToolResultError(alloydoc.ErrorMessage(err)), nil
	}
	return nil, err
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", alloydoc.Errorf(alloydoc.EINVALID, "%s required", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", alloydoc.Errorf(alloydoc.EINVALID, "%s must be a string", name)
	}
	return s, nil
}

// intArg returns nil when the argument is absent. JSON numbers arrive as
// float64 and must be integral.
func intArg(args map[string]any, name string) (*int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "%s must be an integer", name)
	}
	if f != math.Trunc(f) {
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "%s must be an integer, got %v", name, v)
	}

	// Large limits are clamped like any limit above MaxLimit.
	i := int(max(min(f, alloydoc.MaxLimit), math.MinInt32))
	return &i, nil
}
