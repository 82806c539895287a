package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/metrics"
	"github.com/quantity262/Myweb/internal/models"
	repo "github.com/quantity262/Myweb/internal/repository"
)

const markdownSuffix = ".md"

// FileSource is the filesystem side of the document catalog. Injected so
// the merge logic is testable without a real directory.
type FileSource interface {
	// ListMarkdown returns the markdown filenames in the document
	// directory, base names only.
	ListMarkdown() ([]string, error)
	// Read returns the content of one document file by base name.
	Read(filename string) (string, error)
}

// CatalogService merges the filesystem document set with the database
// document set into one logical catalog. It owns neither source; it only
// writes to the database, and only when told to (upsert, sync, delete).
type CatalogService struct {
	files FileSource
	docs  repo.Documents
}

func NewCatalogService(files FileSource, docs repo.Documents) *CatalogService {
	return &CatalogService{files: files, docs: docs}
}

// ListCatalog returns the merged catalog sorted by filename. When both
// sources carry the same filename the database row wins. A failing source
// contributes an empty set; the call itself never fails, degrading to an
// empty catalog when both sources are unreachable.
func (s *CatalogService) ListCatalog(ctx context.Context) []models.CatalogEntry {
	var entries []models.CatalogEntry

	names, err := s.files.ListMarkdown()
	if err != nil {
		slog.Warn("reading document directory failed", "err", err)
	}
	for _, name := range names {
		entries = append(entries, models.CatalogEntry{
			ID:       "file_" + name,
			Title:    strings.TrimSuffix(name, markdownSuffix),
			Filename: name,
			Source:   models.SourceFile,
		})
	}

	docs, err := s.docs.List(ctx)
	if err != nil {
		slog.Warn("reading document table failed", "err", err)
	}
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Filename] = i
	}
	for _, d := range docs {
		e := models.CatalogEntry{
			ID:        strconv.FormatInt(d.ID, 10),
			Title:     d.Title,
			Filename:  d.Filename,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
			Source:    models.SourceDatabase,
		}
		if i, ok := index[d.Filename]; ok {
			entries[i] = e
		} else {
			index[d.Filename] = len(entries)
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Filename < entries[j].Filename })
	return entries
}

// GetDocument reads a document by filename, filesystem first, database as
// fallback. Filenames are used as path segments, so anything that is not
// a plain base name is rejected before touching the filesystem.
func (s *CatalogService) GetDocument(ctx context.Context, filename string) (content, source string, err error) {
	if !validFilename(filename) {
		return "", "", apperr.ErrInvalidFilename
	}

	if c, err := s.files.Read(filename); err == nil {
		return c, models.SourceFile, nil
	}

	d, err := s.docs.GetByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", "", apperr.ErrNotFound
		}
		return "", "", fmt.Errorf("document lookup: %w", err)
	}
	return d.Content, models.SourceDatabase, nil
}

// UpsertDocument updates the row matching filename in place, or inserts a
// new one. Returns the affected row id and whether an existing row was
// updated.
func (s *CatalogService) UpsertDocument(ctx context.Context, title, filename, content string) (id int64, updated bool, err error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(filename) == "" {
		return 0, false, apperr.ErrMissingFields
	}

	existing, err := s.docs.GetByFilename(ctx, filename)
	switch {
	case err == nil:
		if err := s.docs.UpdateByFilename(ctx, title, filename, content); err != nil {
			return 0, false, err
		}
		return existing.ID, true, nil
	case errors.Is(err, apperr.ErrNotFound):
		id, err := s.docs.Insert(ctx, title, filename, content)
		return id, false, err
	default:
		return 0, false, fmt.Errorf("document lookup: %w", err)
	}
}

// SyncResult reports the outcome for a single file of a sync run.
type SyncResult struct {
	File   string `json:"file"`
	Status string `json:"status"`
	Action string `json:"action,omitempty"`
	Error  string `json:"error,omitempty"`
}

// SyncFromFilesystem upserts every markdown file in the document
// directory into the database, using the stripped filename as title. One
// file failing does not abort the batch; each file gets its own result.
func (s *CatalogService) SyncFromFilesystem(ctx context.Context) ([]SyncResult, error) {
	names, err := s.files.ListMarkdown()
	if err != nil {
		return nil, fmt.Errorf("reading document directory: %w", err)
	}

	results := make([]SyncResult, 0, len(names))
	for _, name := range names {
		content, err := s.files.Read(name)
		if err != nil {
			results = append(results, SyncResult{File: name, Status: "error", Error: err.Error()})
			continue
		}
		title := strings.TrimSuffix(name, markdownSuffix)
		_, updated, err := s.UpsertDocument(ctx, title, name, content)
		if err != nil {
			results = append(results, SyncResult{File: name, Status: "error", Error: err.Error()})
			continue
		}
		action := "created"
		if updated {
			action = "updated"
		}
		metrics.DocumentsSynced.Inc()
		results = append(results, SyncResult{File: name, Status: "success", Action: action})
	}
	return results, nil
}

// ListStored returns the raw database document set, newest first
// (administrative view; no filesystem merge).
func (s *CatalogService) ListStored(ctx context.Context) ([]models.Document, error) {
	return s.docs.List(ctx)
}

// DeleteStored removes a database document row by id.
func (s *CatalogService) DeleteStored(ctx context.Context, id int64) error {
	return s.docs.Delete(ctx, id)
}

// validFilename accepts plain base names only: no separators, no parent
// references, no empty string.
func validFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return true
}
