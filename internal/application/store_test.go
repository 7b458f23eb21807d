package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAttachesTargetsByExactKey(t *testing.T) {
	s := NewStore()
	s.Merge(
		map[string]string{"a.b": "Hello", "a.c": "World"},
		map[string]string{"a.b": "Bonjour"},
	)

	require.Equal(t, 2, s.Len())

	item, ok := s.Get("a.b")
	require.True(t, ok)
	assert.True(t, item.IsTranslated())
	assert.Equal(t, "Bonjour", item.Target())

	item, ok = s.Get("a.c")
	require.True(t, ok)
	assert.False(t, item.IsTranslated())
	assert.False(t, item.HasTarget())
}

func TestMergeDropsTargetOnlyKeys(t *testing.T) {
	s := NewStore()
	s.Merge(
		map[string]string{"a.b": "Hello"},
		map[string]string{"a.b": "Bonjour", "gone.key": "Disparu"},
	)

	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("gone.key")
	assert.False(t, ok)
}

func TestEmptyTargetIsSetButNotTranslated(t *testing.T) {
	s := NewStore()
	s.Merge(
		map[string]string{"a.b": "Hello"},
		map[string]string{"a.b": ""},
	)

	item, ok := s.Get("a.b")
	require.True(t, ok)
	assert.True(t, item.HasTarget())
	assert.False(t, item.IsTranslated())

	translated, total := s.Counts()
	assert.Equal(t, 0, translated)
	assert.Equal(t, 1, total)
}

func TestSetAndClearTarget(t *testing.T) {
	s := NewStore()
	s.Merge(map[string]string{"a.b": "Hello"}, nil)

	s.SetTarget("a.b", "Bonjour")
	item, _ := s.Get("a.b")
	assert.Equal(t, "Bonjour", item.Target())

	s.ClearTarget("a.b")
	assert.False(t, item.HasTarget())

	// Unknown keys are ignored, not created.
	s.SetTarget("nope", "x")
	assert.Equal(t, 1, s.Len())
}

func TestItemsSortedByKey(t *testing.T) {
	s := NewStore()
	s.Merge(map[string]string{"b": "2", "a.z": "3", "a.a": "1"}, nil)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "a.a", items[0].Key)
	assert.Equal(t, "a.z", items[1].Key)
	assert.Equal(t, "b", items[2].Key)
}

func TestCounts(t *testing.T) {
	s := NewStore()
	s.Merge(
		map[string]string{"a": "1", "b": "2", "c": "3"},
		map[string]string{"a": "un", "b": ""},
	)

	translated, total := s.Counts()
	assert.Equal(t, 1, translated)
	assert.Equal(t, 3, total)
}
