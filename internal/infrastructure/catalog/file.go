package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"lingotree/internal/domain"
	"lingotree/internal/domain/entities"
	"lingotree/internal/ports/output"
)

// Ensure FileRepository implements the output.CatalogRepository port.
var _ output.CatalogRepository = (*FileRepository)(nil)

// FileRepository reads the source and output documents from disk and
// writes the output document back with two-space indentation, sorted
// keys and a trailing newline, so saves diff cleanly.
type FileRepository struct {
	sourcePath string
	targetPath string
}

func NewFileRepository(sourcePath, targetPath string) *FileRepository {
	return &FileRepository{
		sourcePath: sourcePath,
		targetPath: targetPath,
	}
}

// LoadSource reads and flattens the source document. Any failure is a
// LoadError; callers treat it as fatal.
func (r *FileRepository) LoadSource() (map[string]string, error) {
	doc, err := readDocument(r.sourcePath)
	if err != nil {
		return nil, &domain.LoadError{Path: r.sourcePath, Err: err}
	}
	return Flatten(doc), nil
}

// LoadTarget reads and flattens the output document. A missing file
// is an empty target set; a malformed one is a LoadError like the
// source.
func (r *FileRepository) LoadTarget() (map[string]string, error) {
	doc, err := readDocument(r.targetPath)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, &domain.LoadError{Path: r.targetPath, Err: err}
	}
	return Flatten(doc), nil
}

// Save unflattens the set targets and writes the output document.
func (r *FileRepository) Save(items []*entities.TranslationItem) error {
	doc := Unflatten(items)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.SaveError{Path: r.targetPath, Err: err}
	}
	data = append(data, '\n')
	if err := os.WriteFile(r.targetPath, data, 0o644); err != nil {
		return &domain.SaveError{Path: r.targetPath, Err: err}
	}
	return nil
}

func readDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, domain.ErrUnsupportedValue) {
			return nil, err
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: got %s", domain.ErrNotAnObject, typeErr.Value)
		}
		return nil, err
	}
	// Unmarshal accepts a root "null" as a nil map without error.
	if doc == nil {
		return nil, fmt.Errorf("%w: got null", domain.ErrNotAnObject)
	}
	return doc, nil
}
