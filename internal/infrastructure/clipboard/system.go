// Package clipboard provides the concrete backends behind the
// output.Clipboard port: a system backend that shells out to the
// platform utility, and a no-op fallback for environments without one.
package clipboard

import (
	"github.com/atotto/clipboard"

	"lingotree/internal/ports/output"
)

// Ensure both backends implement the output.Clipboard port.
var (
	_ output.Clipboard = (*System)(nil)
	_ output.Clipboard = (*Noop)(nil)
)

// System copies and pastes through the platform clipboard utility
// (pbcopy/pbpaste, xclip/xsel, wl-copy/wl-paste, ...).
type System struct{}

func NewSystem() *System { return &System{} }

// Supported reports whether the platform has a usable clipboard
// utility; callers fall back to Noop when it does not.
func Supported() bool { return !clipboard.Unsupported }

func (s *System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

func (s *System) Paste() (string, error) {
	return clipboard.ReadAll()
}
