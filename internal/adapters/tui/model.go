// Package tui is the terminal adapter: a bubbletea program over the
// editor session. It owns rendering and key dispatch only; every
// state transition goes through the input.Editor port.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"lingotree/internal/application"
	"lingotree/internal/config"
	"lingotree/internal/domain/entities"
	"lingotree/internal/ports/input"
	"lingotree/internal/ports/output"
)

type mode int

const (
	modeNormal mode = iota
	modeEditing
)

const statusTTL = 2 * time.Second

// clearStatusMsg expires one status message; the id guards against a
// stale tick clearing a newer message.
type clearStatusMsg struct{ id int }

type Model struct {
	editor input.Editor
	tr     output.T
	cfg    *config.Config

	keys   keyMap
	styles styles
	ta     textarea.Model

	mode     mode
	width    int
	height   int
	offset   int
	policy   application.ScrollPolicy
	status   string
	statusID int
}

func New(editor input.Editor, tr output.T, cfg *config.Config) Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	policy := application.PolicyCentering
	if cfg.ScrollPolicy == config.PolicyMargin {
		policy = application.PolicyMargin
	}

	return Model{
		editor: editor,
		tr:     tr,
		cfg:    cfg,
		keys:   defaultKeyMap(),
		styles: newStyles(cfg.NoColor),
		ta:     ta,
		policy: policy,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(m.rightWidth() - 2)
		m.ta.SetHeight(m.paneHeight()/2 - 2)
		m.syncViewport()
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEditing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		m.editor.SelectNext()
		m.syncViewport()

	case key.Matches(msg, m.keys.Up):
		m.editor.SelectPrev()
		m.syncViewport()

	case key.Matches(msg, m.keys.Toggle):
		m.editor.Toggle()
		m.syncViewport()

	case key.Matches(msg, m.keys.Edit):
		return m.enterEditing()

	case key.Matches(msg, m.keys.Save):
		if err := m.editor.Save(); err != nil {
			return m.withStatus(m.t("status_save_failed", map[string]any{"Error": err.Error()}))
		}
		return m.withStatus(m.t("status_saved", map[string]any{"Path": m.cfg.OutputPath}))

	case key.Matches(msg, m.keys.CopySource):
		if err := m.editor.CopySource(); err != nil {
			return m.withStatus(m.t("status_clipboard_failed", map[string]any{"Error": err.Error()}))
		}
		return m.withStatus(m.t("status_copied_source", nil))

	case key.Matches(msg, m.keys.CopyTarget):
		if err := m.editor.CopyTarget(); err != nil {
			return m.withStatus(m.t("status_clipboard_failed", map[string]any{"Error": err.Error()}))
		}
		return m.withStatus(m.t("status_copied_target", nil))

	case key.Matches(msg, m.keys.Paste):
		if err := m.editor.PasteTarget(); err != nil {
			return m.withStatus(m.t("status_clipboard_failed", map[string]any{"Error": err.Error()}))
		}
		return m.withStatus(m.t("status_pasted", nil))
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Commit) {
		m.editor.SetText(m.ta.Value())
		m.mode = modeNormal
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// enterEditing opens the textarea on the selected leaf; non-leaf rows
// and namespace-only nodes are ignored.
func (m Model) enterEditing() (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	m.ta.SetValue(item.Target())
	m.ta.Placeholder = item.SourceText
	cmd := m.ta.Focus()
	m.mode = modeEditing
	return m, cmd
}

// selectedItem resolves the selected row to its catalog entry, if the
// row is an editable leaf.
func (m Model) selectedItem() (*entities.TranslationItem, bool) {
	row, ok := m.editor.SelectedRow()
	if !ok {
		return nil, false
	}
	node := m.editor.Node(row.Path)
	if node == nil || !node.HasItem() || !node.IsLeaf() {
		return nil, false
	}
	return m.editor.Item(node.Key)
}

func (m Model) withStatus(text string) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusID++
	id := m.statusID
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// syncViewport re-derives the tree pane's scroll offset from the
// selection under the configured policy.
func (m *Model) syncViewport() {
	rows := m.editor.Rows()
	m.offset = application.ScrollOffset(
		m.policy, m.offset, m.editor.SelectedIndex(),
		len(rows), m.treeHeight(), m.cfg.Scrolloff,
	)
}

func (m Model) t(key string, data map[string]any) string {
	return m.tr.T(m.cfg.UILanguage, key, data)
}
