package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/alloydoc"
	"github.com/fwojciec/alloydoc/corpus"
	"github.com/fwojciec/alloydoc/goldmark"
	"github.com/fwojciec/alloydoc/lookup"
	"github.com/fwojciec/alloydoc/search"
	adslog "github.com/fwojciec/alloydoc/slog"
	"github.com/fwojciec/alloydoc/sqlite"
	"github.com/fwojciec/alloydoc/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// Corpus used when --corpus is not given. Defaults to the embedded corpus.
	CorpusFS fs.FS

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CorpusFS: corpus.FS,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("alloydoc"),
		kong.Description("Curated alloy.rs type documentation for humans and MCP clients."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'alloydoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel)
	deps.Logger = logger

	// A corpus that fails to load or yields an invalid catalog must stop the
	// process before anything is served.
	fsys := m.CorpusFS
	if cli.Corpus != "" {
		fsys = os.DirFS(cli.Corpus)
	}
	manifest, err := yaml.LoadManifest(fsys, yaml.DefaultManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	catalog, err := alloydoc.NewCatalog(manifest.Entries)
	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ALLOYDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	documents := adslog.NewLoggingDocumentService(sqlite.NewDocumentService(m.DB), logger)
	retired, err := SyncDocuments(ctx, documents, manifest.Documents)
	if err != nil {
		return fmt.Errorf("failed to sync documents: %w", err)
	}

	stored, err := documents.FindDocuments(ctx, alloydoc.DocumentFilter{})
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	index, err := search.Build(ctx, goldmark.NewSectionParser(), stored)
	if err != nil {
		return fmt.Errorf("failed to index documents: %w", err)
	}

	cfg := alloydoc.DefaultMatchConfig()
	cfg.MinSimilarity = cli.MinSimilarity
	lookupService, err := lookup.NewService(catalog, cfg)
	if err != nil {
		return err
	}

	logger.Debug("corpus loaded",
		"entries", catalog.Len(),
		"documents", len(stored),
		"retired", retired,
		"prompts", len(manifest.Prompts),
	)

	deps.DB = m.DB
	deps.Lookup = adslog.NewLoggingLookupService(lookupService, logger)
	deps.Search = adslog.NewLoggingSearchService(index, logger)
	deps.Sections = index
	deps.Documents = documents
	deps.Prompts = manifest.Prompts

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func defaultDBPath() string {
	if path := os.Getenv("ALLOYDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "alloydoc.db"
	}
	dir := filepath.Join(home, ".alloydoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "alloydoc.db")
}

// entryID accepts either a full entry id or a bare type name.
func entryID(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "://") {
		return s
	}
	return alloydoc.TypeURIPrefix + s
}
