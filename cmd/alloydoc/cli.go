package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/alloydoc"
	"github.com/fwojciec/alloydoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Lookup    alloydoc.LookupService
	Search    alloydoc.SearchService
	Sections  alloydoc.SectionService
	Documents alloydoc.DocumentService
	Prompts   []*alloydoc.Prompt
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB            string  `name:"db" help:"Database path (default ~/.alloydoc/alloydoc.db)" env:"ALLOYDOC_DB"`
	Corpus        string  `help:"Corpus directory replacing the embedded corpus" env:"ALLOYDOC_CORPUS"`
	LogLevel      string  `help:"Log level" default:"info" enum:"debug,info,warn,error" env:"ALLOYDOC_LOG_LEVEL"`
	MinSimilarity float64 `help:"Edit-distance similarity a name must exceed to match" default:"0.5"`

	Serve   ServeCmd   `cmd:"" help:"Serve documentation over MCP on stdio"`
	Lookup  LookupCmd  `cmd:"" help:"Look up alloy types by name"`
	Resolve ResolveCmd `cmd:"" help:"Show a catalog entry by id or type name"`
	Search  SearchCmd  `cmd:"" help:"Full-text search across documentation sections"`
	Docs    DocsCmd    `cmd:"" help:"List documentation resources or print one"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Query string `arg:"" help:"Type name, alias or topic"`
	Limit int    `short:"n" default:"5" help:"Maximum number of results (1-50)"`
	JSON  bool   `name:"json" help:"Print results as JSON"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	ID   string `arg:"" help:"Entry id (alloy://type/Name) or type name"`
	Full bool   `help:"Include the documentation section"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Free-text query"`
	Limit int    `short:"n" default:"5" help:"Maximum number of results (1-50)"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	URI string `arg:"" optional:"" help:"Resource URI to print"`
}
