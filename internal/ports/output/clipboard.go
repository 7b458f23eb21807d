package output

// Clipboard is the system-clipboard capability the editor session
// depends on. Concrete backends are injected at construction; the
// core never names one.
type Clipboard interface {
	// Copy places text on the clipboard.
	Copy(text string) error
	// Paste returns the clipboard's current text.
	Paste() (string, error)
}
