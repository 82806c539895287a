package models

import "time"

// Document provenance: which backing source currently supplies it.
const (
	SourceFile     = "file"
	SourceDatabase = "database"
)

type Document struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Filename  string     `json:"filename"`
	Content   string     `json:"content,omitempty"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CatalogEntry is one item of the merged filesystem+database catalog.
// Entries synthesized from the filesystem have no row id, so the catalog
// carries a string id: "file_<filename>" for file entries, the decimal row
// id for database entries.
type CatalogEntry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Filename  string     `json:"filename"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Source    string     `json:"source"`
}
