package services

import (
	"os"
	"path/filepath"
	"strings"
)

// DirSource is the FileSource over a real directory of markdown files.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource { return &DirSource{dir: dir} }

func (d *DirSource) ListMarkdown() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), markdownSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (d *DirSource) Read(filename string) (string, error) {
	b, err := os.ReadFile(filepath.Join(d.dir, filename))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
