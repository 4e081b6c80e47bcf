// Package fs provides filesystem adapters that implement lint service interfaces.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eykd/adoclint-go/internal/columns"
	"github.com/eykd/adoclint-go/internal/doctree"
	"github.com/eykd/adoclint-go/internal/domain"
	"github.com/eykd/adoclint-go/internal/frontmatter"
	"github.com/eykd/adoclint-go/internal/lint"
)

// ErrConfigNotFound is returned by FindConfig when no rules file exists in
// the starting directory or any parent.
var ErrConfigNotFound = errors.New("no rules file found")

// OSFinder implements lint.DocumentFinder by walking the filesystem.
type OSFinder struct{}

// FindDocuments expands paths into document-tree export files. Files are
// returned as given; directories are walked for export files, skipping
// hidden directories. The result is sorted and free of duplicates.
func (OSFinder) FindDocuments(ctx context.Context, paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var found []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			found = append(found, p)
		}
	}

	for _, root := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if doctree.IsExport(d.Name()) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	sort.Strings(found)
	return found, nil
}

// DocTreeLoader implements lint.DocumentLoader using the doctree package.
type DocTreeLoader struct{}

// LoadDocument reads and decodes the export at path.
func (DocTreeLoader) LoadDocument(ctx context.Context, path string) (*lint.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := doctree.Load(path)
	if err != nil {
		return nil, err
	}
	return &lint.Document{
		Root:       doc,
		Filename:   doc.Filename,
		SourcePath: doc.SourcePath,
	}, nil
}

// OSSourceReader implements lint.SourceReader using os.ReadFile.
type OSSourceReader struct{}

// ReadSource reads the full raw source at path.
func (OSSourceReader) ReadSource(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FMAdapter implements lint.FrontMatterReader using the frontmatter package.
type FMAdapter struct{}

// Suppressions returns the rule ids a document suppresses in its front matter.
func (FMAdapter) Suppressions(source string) ([]string, error) {
	return frontmatter.Suppressions(source)
}

// ColumnAdapter implements lint.ColumnEnricher using the columns package.
type ColumnAdapter struct{}

// Enrich sets exact columns on messages whose value appears in source.
func (ColumnAdapter) Enrich(source string, msgs []domain.Message) []domain.Message {
	return columns.Enrich(source, msgs)
}

// OSWriter writes files, creating parent directories as needed.
type OSWriter struct{}

// WriteFile writes content to path.
func (OSWriter) WriteFile(_ context.Context, path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// Exists reports whether path exists.
func (OSWriter) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FindConfig walks up from dir looking for a file called name.
func FindConfig(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, name)
		}
		dir = parent
	}
}
