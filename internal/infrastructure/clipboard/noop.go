package clipboard

import (
	"lingotree/internal/domain"
)

// Noop is the always-failing clipboard for environments where no
// system clipboard is available.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Copy(string) error {
	return domain.ErrClipboardUnavailable
}

func (n *Noop) Paste() (string, error) {
	return "", domain.ErrClipboardUnavailable
}
