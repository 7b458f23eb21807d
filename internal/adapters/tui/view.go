package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lingotree/internal/domain/entities"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	tree := m.viewTree()
	right := lipgloss.JoinVertical(lipgloss.Left, m.viewSource(), m.viewTarget())
	top := lipgloss.JoinHorizontal(lipgloss.Top, tree, right)
	return lipgloss.JoinVertical(lipgloss.Left, top, m.viewStatusBar())
}

func (m Model) viewTree() string {
	rows := m.editor.Rows()
	height := m.treeHeight()

	lines := make([]string, 0, height)
	for i := m.offset; i < len(rows) && len(lines) < height; i++ {
		lines = append(lines, m.renderRow(rows[i], i == m.editor.SelectedIndex()))
	}
	body := strings.Join(lines, "\n")

	title := m.styles.Title.Render(m.t("tree_title", nil))
	pane := m.styles.Panel
	if m.mode == modeNormal {
		pane = m.styles.ActivePane
	}
	return pane.Width(m.treeWidth()).Height(m.paneHeight()).
		Render(title + "\n" + body)
}

func (m Model) renderRow(row entities.Row, selected bool) string {
	node := m.editor.Node(row.Path)
	if node == nil {
		return ""
	}

	var marker string
	var style lipgloss.Style
	switch {
	case node.IsLeaf():
		if item, ok := m.editor.Item(node.Key); ok && item.IsTranslated() {
			marker, style = "[x]", m.styles.Done
		} else {
			marker, style = "[ ]", m.styles.Pending
		}
	case node.FullyTranslated:
		marker, style = "[x]", m.styles.Done
	case node.Expanded:
		marker, style = "[-]", m.styles.Branch
	default:
		marker, style = "[+]", m.styles.Branch
	}

	line := strings.Repeat("  ", row.Depth) + marker + " " + node.Segment
	if selected {
		return m.styles.Selected.Render(line)
	}
	return style.Render(line)
}

func (m Model) viewSource() string {
	text := m.t("select_hint", nil)
	if row, ok := m.editor.SelectedRow(); ok {
		if node := m.editor.Node(row.Path); node != nil && node.HasItem() {
			if item, ok := m.editor.Item(node.Key); ok {
				text = item.SourceText
			}
		}
	}
	title := m.styles.Title.Render(m.t("source_title", nil))
	return m.styles.Panel.Width(m.rightWidth()).Height(m.paneHeight() / 2).
		Render(title + "\n" + text)
}

func (m Model) viewTarget() string {
	titleKey := "target_title"
	pane := m.styles.Panel
	if m.mode == modeEditing {
		titleKey = "target_title_editing"
		pane = m.styles.ActivePane
	}
	title := m.styles.Title.Render(m.t(titleKey, nil))
	return pane.Width(m.rightWidth()).Height(m.paneHeight() - m.paneHeight()/2).
		Render(title + "\n" + m.ta.View())
}

func (m Model) viewStatusBar() string {
	if m.status != "" {
		return m.styles.Status.Render(m.status)
	}

	helpKey := "help_normal"
	if m.mode == modeEditing {
		helpKey = "help_editing"
	}
	translated, total := m.editor.Counts()
	progress := m.t("progress", map[string]any{
		"Translated": translated,
		"Total":      total,
	})
	return m.styles.Help.Render(fmt.Sprintf("%s · %s", progress, m.t(helpKey, nil)))
}

// Layout. One status line at the bottom; panels split 30/70; the
// border eats two rows and the title one more.

func (m Model) paneHeight() int {
	h := m.height - 1
	if h < 3 {
		return 3
	}
	return h
}

func (m Model) treeWidth() int {
	w := m.width * 3 / 10
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) rightWidth() int {
	w := m.width - m.treeWidth() - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) treeHeight() int {
	h := m.paneHeight() - 3
	if h < 1 {
		return 1
	}
	return h
}
