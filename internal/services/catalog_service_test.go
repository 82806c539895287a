package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/models"
)

// --- fakes ---

type fakeFileSource struct {
	names    []string
	contents map[string]string
	listErr  error
	readErr  map[string]error
}

func (f *fakeFileSource) ListMarkdown() ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.names, nil
}

func (f *fakeFileSource) Read(filename string) (string, error) {
	if err := f.readErr[filename]; err != nil {
		return "", err
	}
	c, ok := f.contents[filename]
	if !ok {
		return "", errors.New("no such file")
	}
	return c, nil
}

type fakeDocs struct {
	docs    []models.Document
	nextID  int64
	listErr error
}

func (f *fakeDocs) List(ctx context.Context) ([]models.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.docs, nil
}

func (f *fakeDocs) GetByFilename(ctx context.Context, filename string) (models.Document, error) {
	for _, d := range f.docs {
		if d.Filename == filename {
			return d, nil
		}
	}
	return models.Document{}, apperr.ErrNotFound
}

func (f *fakeDocs) Insert(ctx context.Context, title, filename, content string) (int64, error) {
	f.nextID++
	f.docs = append(f.docs, models.Document{ID: f.nextID, Title: title, Filename: filename, Content: content})
	return f.nextID, nil
}

func (f *fakeDocs) UpdateByFilename(ctx context.Context, title, filename, content string) error {
	for i, d := range f.docs {
		if d.Filename == filename {
			f.docs[i].Title = title
			f.docs[i].Content = content
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakeDocs) Delete(ctx context.Context, id int64) error {
	for i, d := range f.docs {
		if d.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

// --- tests ---

func TestListCatalog_DatabaseWins(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{names: []string{"a.md"}}
	docs := &fakeDocs{docs: []models.Document{{ID: 7, Title: "A (edited)", Filename: "a.md"}}}
	svc := NewCatalogService(fs, docs)

	got := svc.ListCatalog(context.Background())

	require.Len(t, got, 1)
	require.Equal(t, "a.md", got[0].Filename)
	require.Equal(t, models.SourceDatabase, got[0].Source)
	require.Equal(t, "7", got[0].ID)
	require.Equal(t, "A (edited)", got[0].Title)
}

func TestListCatalog_DisjointSortedByFilename(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{names: []string{"b.md"}}
	docs := &fakeDocs{docs: []models.Document{{ID: 1, Title: "c", Filename: "c.md"}}}
	svc := NewCatalogService(fs, docs)

	got := svc.ListCatalog(context.Background())

	require.Len(t, got, 2)
	require.Equal(t, "b.md", got[0].Filename)
	require.Equal(t, models.SourceFile, got[0].Source)
	require.Equal(t, "file_b.md", got[0].ID)
	require.Equal(t, "b", got[0].Title)
	require.Equal(t, "c.md", got[1].Filename)
	require.Equal(t, models.SourceDatabase, got[1].Source)
}

func TestListCatalog_DegradesToEmpty(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{listErr: errors.New("directory gone")}
	docs := &fakeDocs{listErr: errors.New("db down")}
	svc := NewCatalogService(fs, docs)

	got := svc.ListCatalog(context.Background())
	require.Empty(t, got)
}

func TestGetDocument_FileWinsOverDatabase(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{contents: map[string]string{"a.md": "# from disk"}}
	docs := &fakeDocs{docs: []models.Document{{ID: 1, Filename: "a.md", Content: "# from db"}}}
	svc := NewCatalogService(fs, docs)

	content, source, err := svc.GetDocument(context.Background(), "a.md")
	require.NoError(t, err)
	require.Equal(t, "# from disk", content)
	require.Equal(t, models.SourceFile, source)
}

func TestGetDocument_DatabaseFallback(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{}
	docs := &fakeDocs{docs: []models.Document{{ID: 1, Filename: "a.md", Content: "# from db"}}}
	svc := NewCatalogService(fs, docs)

	content, source, err := svc.GetDocument(context.Background(), "a.md")
	require.NoError(t, err)
	require.Equal(t, "# from db", content)
	require.Equal(t, models.SourceDatabase, source)
}

func TestGetDocument_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(&fakeFileSource{}, &fakeDocs{})

	_, _, err := svc.GetDocument(context.Background(), "missing.md")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetDocument_RejectsUnsafeFilenames(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{contents: map[string]string{"../secret.md": "leaked"}}
	svc := NewCatalogService(fs, &fakeDocs{})

	for _, name := range []string{"", ".", "..", "../secret.md", "/etc/passwd", `..\secret.md`, "sub/doc.md"} {
		_, _, err := svc.GetDocument(context.Background(), name)
		require.ErrorIs(t, err, apperr.ErrInvalidFilename, "filename %q", name)
	}
}

func TestUpsertDocument_CreateThenUpdate(t *testing.T) {
	t.Parallel()

	docs := &fakeDocs{}
	svc := NewCatalogService(&fakeFileSource{}, docs)
	ctx := context.Background()

	id, updated, err := svc.UpsertDocument(ctx, "Notes", "notes.md", "v1")
	require.NoError(t, err)
	require.False(t, updated)

	id2, updated, err := svc.UpsertDocument(ctx, "Notes", "notes.md", "v2")
	require.NoError(t, err)
	require.True(t, updated)
	require.Equal(t, id, id2)

	require.Len(t, docs.docs, 1)
	require.Equal(t, "v2", docs.docs[0].Content)
}

func TestUpsertDocument_RequiresTitleAndFilename(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(&fakeFileSource{}, &fakeDocs{})

	_, _, err := svc.UpsertDocument(context.Background(), "", "a.md", "")
	require.ErrorIs(t, err, apperr.ErrMissingFields)

	_, _, err = svc.UpsertDocument(context.Background(), "A", "  ", "")
	require.ErrorIs(t, err, apperr.ErrMissingFields)
}

func TestSyncFromFilesystem_PerFileIsolation(t *testing.T) {
	t.Parallel()

	fs := &fakeFileSource{
		names:    []string{"a.md", "broken.md", "c.md"},
		contents: map[string]string{"a.md": "A", "c.md": "C"},
		readErr:  map[string]error{"broken.md": errors.New("permission denied")},
	}
	docs := &fakeDocs{docs: []models.Document{{ID: 1, Title: "old", Filename: "a.md", Content: "old"}}}
	svc := NewCatalogService(fs, docs)

	results, err := svc.SyncFromFilesystem(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, SyncResult{File: "a.md", Status: "success", Action: "updated"}, results[0])
	require.Equal(t, "error", results[1].Status)
	require.Contains(t, results[1].Error, "permission denied")
	require.Equal(t, SyncResult{File: "c.md", Status: "success", Action: "created"}, results[2])

	// a.md updated in place with the stripped filename as title
	d, err := docs.GetByFilename(context.Background(), "a.md")
	require.NoError(t, err)
	require.Equal(t, "a", d.Title)
	require.Equal(t, "A", d.Content)
}

func TestSyncFromFilesystem_DirectoryFailure(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(&fakeFileSource{listErr: errors.New("no dir")}, &fakeDocs{})

	_, err := svc.SyncFromFilesystem(context.Background())
	require.Error(t, err)
}
