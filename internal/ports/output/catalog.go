package output

import "lingotree/internal/domain/entities"

// CatalogRepository loads the two catalog documents and writes the
// output document back. All document/file fallibility lives behind
// this port; the in-memory core is total.
type CatalogRepository interface {
	// LoadSource reads the source document as a flat key -> text map.
	LoadSource() (map[string]string, error)
	// LoadTarget reads the output document if present. A missing file
	// is not an error: it yields an empty map.
	LoadTarget() (map[string]string, error)
	// Save writes the nested output document for every item whose
	// target is set.
	Save(items []*entities.TranslationItem) error
}
