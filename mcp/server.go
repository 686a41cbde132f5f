// Package mcp serves alloydoc over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/alloydoc"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server identity and the type lookup resource template.
const (
	DefaultName     = "alloydoc"
	DefaultVersion  = "0.1.0"
	TypeURITemplate = alloydoc.TypeURIPrefix + "{type_name}"

	instructions = "Provides curated documentation for alloy.rs Ethereum library types."
)

// Server exposes lookup, search and documents as MCP tools, resources and
// prompts.
type Server struct {
	LookupService   alloydoc.LookupService
	SearchService   alloydoc.SearchService
	DocumentService alloydoc.DocumentService
	SectionService  alloydoc.SectionService
	Prompts         []*alloydoc.Prompt
	Logger          *slog.Logger

	Name    string
	Version string
}

// NewServer returns a Server with the default identity.
func NewServer() *Server {
	return &Server{
		Name:    DefaultName,
		Version: DefaultVersion,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// MCPServer builds the protocol server. Documents are listed once here, so
// the resource list reflects the store at startup.
func (s *Server) MCPServer(ctx context.Context) (*server.MCPServer, error) {
	srv := server.NewMCPServer(s.Name, s.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
		server.WithInstructions(instructions),
	)

	srv.AddTool(mcp.NewTool("lookup_type",
		mcp.WithDescription("Look up alloy type information by name. Returns ranked catalog matches with their documentation sections."),
		mcp.WithString("type_name",
			mcp.Required(),
			mcp.Description("Type name to search for (e.g., 'TxEip1559', 'BlockId', 'Address', 'PrivateKeySigner')"),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of matches to return (default %d, at most %d)", alloydoc.DefaultLimit, alloydoc.MaxLimit)),
			mcp.Min(1),
		),
	), s.HandleLookupType)

	srv.AddTool(mcp.NewTool("search_resources",
		mcp.WithDescription("Full-text search across all alloy documentation. Accepts type names, concepts, or error messages."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text query: type name, concept, or error message"),
		),
		mcp.WithNumber("max_results",
			mcp.Description(fmt.Sprintf("Maximum number of results to return (default %d)", alloydoc.DefaultLimit)),
			mcp.Min(1),
		),
	), s.HandleSearchResources)

	srv.AddTool(mcp.NewTool("get_resource",
		mcp.WithDescription("Fetch a specific alloy documentation resource by URI. Pass uri='list' to see all available resources."),
		mcp.WithString("uri",
			mcp.Required(),
			mcp.Description("Resource URI to fetch (e.g., 'alloy://consensus/transactions'). Pass 'list' to see all available URIs."),
		),
	), s.HandleGetResource)

	docs, err := s.DocumentService.FindDocuments(ctx, alloydoc.DocumentFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	for _, doc := range docs {
		srv.AddResource(mcp.NewResource(doc.URI, doc.Name,
			mcp.WithResourceDescription(doc.Description),
			mcp.WithMIMEType(doc.MimeType),
		), s.ReadDocument)
	}

	srv.AddResourceTemplate(mcp.NewResourceTemplate(TypeURITemplate, "Type Lookup",
		mcp.WithTemplateDescription("Look up a specific alloy type by name"),
		mcp.WithTemplateMIMEType(alloydoc.DefaultMimeType),
	), s.ReadType)

	for _, p := range s.Prompts {
		srv.AddPrompt(mcp.NewPrompt(p.Name, mcp.WithPromptDescription(p.Description)), PromptHandler(p))
	}

	s.Logger.Info("mcp server ready",
		"tools", 3,
		"resources", len(docs),
		"prompts", len(s.Prompts),
	)
	return srv, nil
}

// Serve answers MCP requests read from in until ctx is done or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	srv, err := s.MCPServer(ctx)
	if err != nil {
		return err
	}

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(slog.NewLogLogger(s.Logger.Handler(), slog.LevelError))
	return stdio.Listen(ctx, in, out)
}
