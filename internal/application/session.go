package application

import (
	"lingotree/internal/domain"
	"lingotree/internal/domain/entities"
	"lingotree/internal/ports/input"
	"lingotree/internal/ports/output"
)

// Ensure Session implements the input.Editor port.
var _ input.Editor = (*Session)(nil)

// Session is the editing session over one catalog: the store, the
// forest built from it, the visible projection, and the selection.
// Every transition is pure in-memory work except Save and the
// clipboard operations, which go through the injected ports.
type Session struct {
	store    *Store
	forest   []*entities.TreeNode
	visible  []entities.Row
	selected int

	repo output.CatalogRepository
	clip output.Clipboard
}

// NewSession builds the forest from the store, propagates completion
// and projects the initial visible list (everything collapsed).
func NewSession(store *Store, repo output.CatalogRepository, clip output.Clipboard) *Session {
	s := &Session{
		store: store,
		repo:  repo,
		clip:  clip,
	}
	s.forest = BuildForest(store.Items())
	PropagateCompletion(s.forest, store)
	s.refresh()
	return s
}

// refresh recomputes the visible list and clamps the selection to the
// last valid index (0 when the list is empty).
func (s *Session) refresh() {
	s.visible = VisibleRows(s.forest)
	if s.selected >= len(s.visible) {
		s.selected = len(s.visible) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Rows returns the current visible projection.
func (s *Session) Rows() []entities.Row { return s.visible }

// SelectedIndex returns the selection's index in the visible list.
func (s *Session) SelectedIndex() int { return s.selected }

// SelectedRow returns the selected row, if the list is non-empty.
func (s *Session) SelectedRow() (entities.Row, bool) {
	if s.selected < 0 || s.selected >= len(s.visible) {
		return entities.Row{}, false
	}
	return s.visible[s.selected], true
}

// Node resolves a full path in the forest.
func (s *Session) Node(path string) *entities.TreeNode {
	return FindNode(s.forest, path)
}

// Item returns the store item for key.
func (s *Session) Item(key string) (*entities.TranslationItem, bool) {
	return s.store.Get(key)
}

// Counts reports (translated, total) over the store.
func (s *Session) Counts() (translated, total int) {
	return s.store.Counts()
}

func (s *Session) SelectNext() {
	if s.selected < len(s.visible)-1 {
		s.selected++
	}
}

func (s *Session) SelectPrev() {
	if s.selected > 0 {
		s.selected--
	}
}

// Toggle flips the expand state of the selected node. The selection
// follows the toggled node's path in the recomputed list, so toggling
// never silently moves focus to an unrelated row.
func (s *Session) Toggle() {
	row, ok := s.SelectedRow()
	if !ok {
		return
	}
	node := FindNode(s.forest, row.Path)
	if node == nil || node.IsLeaf() {
		return
	}
	node.Expanded = !node.Expanded
	s.refresh()
	for i, r := range s.visible {
		if r.Path == row.Path {
			s.selected = i
			break
		}
	}
}

// SetText writes the target text of the selected leaf to the store
// and re-propagates completion. Empty text clears the target.
func (s *Session) SetText(text string) {
	row, ok := s.SelectedRow()
	if !ok {
		return
	}
	node := FindNode(s.forest, row.Path)
	if node == nil || !node.HasItem() {
		return
	}
	if text == "" {
		s.store.ClearTarget(node.Key)
	} else {
		s.store.SetTarget(node.Key, text)
	}
	PropagateCompletion(s.forest, s.store)
}

// Save writes the output document through the repository.
func (s *Session) Save() error {
	return s.repo.Save(s.store.Items())
}

// CopySource puts the selected item's source text on the clipboard.
func (s *Session) CopySource() error {
	item, ok := s.selectedItem()
	if !ok {
		return nil
	}
	if err := s.clip.Copy(item.SourceText); err != nil {
		return &domain.ClipboardError{Op: "copy", Err: err}
	}
	return nil
}

// CopyTarget puts the selected item's target text on the clipboard.
func (s *Session) CopyTarget() error {
	item, ok := s.selectedItem()
	if !ok {
		return nil
	}
	if err := s.clip.Copy(item.Target()); err != nil {
		return &domain.ClipboardError{Op: "copy", Err: err}
	}
	return nil
}

// PasteTarget replaces the selected item's target with the clipboard
// text.
func (s *Session) PasteTarget() error {
	if _, ok := s.selectedItem(); !ok {
		return nil
	}
	text, err := s.clip.Paste()
	if err != nil {
		return &domain.ClipboardError{Op: "paste", Err: err}
	}
	s.SetText(text)
	return nil
}

func (s *Session) selectedItem() (*entities.TranslationItem, bool) {
	row, ok := s.SelectedRow()
	if !ok {
		return nil, false
	}
	node := FindNode(s.forest, row.Path)
	if node == nil || !node.HasItem() {
		return nil, false
	}
	return s.store.Get(node.Key)
}
