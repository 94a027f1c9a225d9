package corpus

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/linkrank/internal/model"
)

// ErrNoPages is returned when the corpus directory contains no HTML
// pages. Ranking a degenerate corpus is rejected before the estimators
// ever run.
var ErrNoPages = errors.New("corpus contains no HTML pages")

// Loader builds a link graph from a directory of HTML documents.
type Loader struct {
	parser *Parser
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a corpus loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		parser: NewParser(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every .html file directly under dir and returns the link
// graph over those pages. Pages are identified by filename. Self-links
// and links to targets outside the corpus are dropped, so the returned
// graph satisfies the intra-corpus invariant.
//
// Subdirectories are not descended into; a corpus is a flat directory
// of documents.
func (l *Loader) Load(dir string) (*model.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	g := model.NewGraph()
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			continue
		}

		links, err := l.loadPage(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to load page %s: %w", entry.Name(), err)
		}

		g.AddPage(entry.Name())
		for _, target := range links {
			g.AddLink(entry.Name(), target)
		}
		l.logger.Debug("loaded page", "page", entry.Name(), "links", len(links))
	}

	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, dir)
	}

	g.PruneExternal()
	l.logger.Debug("corpus loaded", "dir", dir, "pages", g.Len())
	return g, nil
}

// loadPage parses a single HTML file and returns its link targets.
func (l *Loader) loadPage(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // Corpus paths are user-provided by design
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return l.parser.Links(f)
}
