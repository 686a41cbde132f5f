package mcp

import (
	"context"

	"github.com/fwojciec/alloydoc"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ReadDocument returns the stored markdown of a document resource.
func (s *Server) ReadDocument(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	doc, err := s.DocumentService.FindDocumentByURI(ctx, req.Params.URI)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      doc.URI,
			MIMEType: doc.MimeType,
			Text:     doc.Content,
		},
	}, nil
}

// ReadType resolves alloy://type/{type_name} to the catalog entry and its
// documentation section.
func (s *Server) ReadType(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	text, err := s.entryText(ctx, req.Params.URI)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: alloydoc.DefaultMimeType,
			Text:     text,
		},
	}, nil
}

// PromptHandler answers a prompt request with the canned user request and
// assistant reply.
func PromptHandler(p *alloydoc.Prompt) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return mcp.NewGetPromptResult(p.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(p.Request)),
			mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(p.Response)),
		}), nil
	}
}
