package input

import "lingotree/internal/domain/entities"

// Editor is the use-case contract the TUI adapter drives. Every
// transition is synchronous and leaves the session consistent; none
// of them touches a terminal.
type Editor interface {
	Rows() []entities.Row
	SelectedIndex() int
	SelectedRow() (entities.Row, bool)
	Node(path string) *entities.TreeNode
	Item(key string) (*entities.TranslationItem, bool)
	Counts() (translated, total int)

	SelectNext()
	SelectPrev()
	Toggle()
	SetText(text string)

	Save() error
	CopySource() error
	CopyTarget() error
	PasteTarget() error
}
