package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingotree/internal/domain"
	"lingotree/internal/domain/entities"
)

type fakeRepo struct {
	saved   []*entities.TranslationItem
	saveErr error
}

func (r *fakeRepo) LoadSource() (map[string]string, error) { return nil, nil }
func (r *fakeRepo) LoadTarget() (map[string]string, error) { return nil, nil }
func (r *fakeRepo) Save(items []*entities.TranslationItem) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = items
	return nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func (c *fakeClipboard) Paste() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func newTestSession(source, target map[string]string) (*Session, *fakeRepo, *fakeClipboard) {
	store := NewStore()
	store.Merge(source, target)
	repo := &fakeRepo{}
	clip := &fakeClipboard{}
	return NewSession(store, repo, clip), repo, clip
}

func TestLoadScenarioNoTarget(t *testing.T) {
	// Source {"a":{"b":"Hello","c":"World"}}, no output file.
	s, _, _ := newTestSession(map[string]string{"a.b": "Hello", "a.c": "World"}, nil)

	translated, total := s.Counts()
	assert.Equal(t, 0, translated)
	assert.Equal(t, 2, total)

	// Everything starts collapsed: one visible row.
	assert.Equal(t, []entities.Row{{Path: "a", Depth: 0}}, s.Rows())
	assert.False(t, s.Node("a").FullyTranslated)
}

func TestLoadScenarioPartialTarget(t *testing.T) {
	// Same source, output file {"a":{"b":"Bonjour"}}.
	s, _, _ := newTestSession(
		map[string]string{"a.b": "Hello", "a.c": "World"},
		map[string]string{"a.b": "Bonjour"},
	)

	item, ok := s.Item("a.b")
	require.True(t, ok)
	assert.Equal(t, "Bonjour", item.Target())

	item, ok = s.Item("a.c")
	require.True(t, ok)
	assert.False(t, item.HasTarget())

	assert.False(t, s.Node("a").FullyTranslated)
}

func TestSetTextThenSave(t *testing.T) {
	s, repo, _ := newTestSession(
		map[string]string{"a.b": "Hello", "a.c": "World"},
		map[string]string{"a.b": "Bonjour"},
	)

	s.Toggle() // expand "a"
	s.SelectNext()
	s.SelectNext() // a.c
	s.SetText("Monde")

	assert.True(t, s.Node("a").FullyTranslated)

	require.NoError(t, s.Save())
	require.Len(t, repo.saved, 2)
	assert.Equal(t, "Bonjour", repo.saved[0].Target())
	assert.Equal(t, "Monde", repo.saved[1].Target())
}

func TestSetTextEmptyClearsTarget(t *testing.T) {
	s, _, _ := newTestSession(
		map[string]string{"a.b": "Hello"},
		map[string]string{"a.b": "Bonjour"},
	)

	s.Toggle()
	s.SelectNext()
	s.SetText("")

	item, _ := s.Item("a.b")
	assert.False(t, item.HasTarget())
	assert.False(t, s.Node("a.b").FullyTranslated)
}

func TestSetTextIgnoredOnNamespaceRow(t *testing.T) {
	s, _, _ := newTestSession(map[string]string{"a.b": "Hello"}, nil)

	// Selection sits on the collapsed namespace "a".
	s.SetText("nope")
	item, _ := s.Item("a.b")
	assert.False(t, item.HasTarget())
}

func TestSelectionClamping(t *testing.T) {
	s, _, _ := newTestSession(map[string]string{"a.b": "1", "a.c": "2", "d": "3"}, nil)

	s.Toggle() // expand "a": rows a, a.b, a.c, d
	require.Len(t, s.Rows(), 4)
	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	assert.Equal(t, 3, s.SelectedIndex())

	// When the visible list shrinks under the selection, refresh
	// clamps it to the last valid index.
	s.Node("a").Expanded = false
	s.refresh()
	assert.Equal(t, 1, s.SelectedIndex())
	row, _ := s.SelectedRow()
	assert.Equal(t, "d", row.Path)

	// And the selection never moves past the ends.
	s.SelectPrev()
	s.SelectPrev()
	assert.Equal(t, 0, s.SelectedIndex())
	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestToggleKeepsFocusOnToggledNode(t *testing.T) {
	s, _, _ := newTestSession(
		map[string]string{"a.one": "1", "a.two": "2", "b.leaf": "3"}, nil,
	)

	// Expand "a", move to "b", expand it: focus must stay on "b"
	// although two extra rows appeared above it.
	s.Toggle()
	s.SelectNext()
	s.SelectNext()
	s.SelectNext()
	row, _ := s.SelectedRow()
	require.Equal(t, "b", row.Path)

	s.Toggle()
	row, _ = s.SelectedRow()
	assert.Equal(t, "b", row.Path)
	assert.Len(t, s.Rows(), 5)

	// Collapsing it again: still on "b".
	s.Toggle()
	row, _ = s.SelectedRow()
	assert.Equal(t, "b", row.Path)
	assert.Equal(t, 3, s.SelectedIndex())
}

func TestToggleOnLeafIsNoop(t *testing.T) {
	s, _, _ := newTestSession(map[string]string{"a.b": "1"}, nil)

	s.Toggle()
	s.SelectNext()
	rows := len(s.Rows())
	s.Toggle()
	assert.Len(t, s.Rows(), rows)
}

func TestSaveErrorPropagates(t *testing.T) {
	s, repo, _ := newTestSession(map[string]string{"a": "1"}, nil)
	repo.saveErr = &domain.SaveError{Path: "out.json", Err: errors.New("disk full")}

	err := s.Save()
	var saveErr *domain.SaveError
	require.ErrorAs(t, err, &saveErr)
}

func TestClipboardRoundTrip(t *testing.T) {
	s, _, clip := newTestSession(
		map[string]string{"a.b": "Hello"},
		map[string]string{"a.b": "Bonjour"},
	)

	s.Toggle()
	s.SelectNext() // a.b

	require.NoError(t, s.CopySource())
	assert.Equal(t, "Hello", clip.text)

	require.NoError(t, s.CopyTarget())
	assert.Equal(t, "Bonjour", clip.text)

	clip.text = "Pasted"
	require.NoError(t, s.PasteTarget())
	item, _ := s.Item("a.b")
	assert.Equal(t, "Pasted", item.Target())
}

func TestClipboardErrorsAreTyped(t *testing.T) {
	s, _, clip := newTestSession(map[string]string{"a.b": "Hello"}, nil)
	clip.err = domain.ErrClipboardUnavailable

	s.Toggle()
	s.SelectNext()

	var clipErr *domain.ClipboardError
	require.ErrorAs(t, s.CopySource(), &clipErr)
	assert.Equal(t, "copy", clipErr.Op)
	require.ErrorAs(t, s.PasteTarget(), &clipErr)
	assert.Equal(t, "paste", clipErr.Op)
	assert.ErrorIs(t, clipErr, domain.ErrClipboardUnavailable)
}

func TestClipboardNoopOnNamespaceRow(t *testing.T) {
	s, _, clip := newTestSession(map[string]string{"a.b": "Hello"}, nil)
	clip.err = domain.ErrClipboardUnavailable

	// Selection on the namespace "a": nothing to copy, no error.
	assert.NoError(t, s.CopySource())
	assert.NoError(t, s.PasteTarget())
}
