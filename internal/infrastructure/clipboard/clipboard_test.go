package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingotree/internal/domain"
)

func TestNoopAlwaysFails(t *testing.T) {
	n := NewNoop()

	assert.ErrorIs(t, n.Copy("text"), domain.ErrClipboardUnavailable)

	_, err := n.Paste()
	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
}

func TestSystemRoundTrip(t *testing.T) {
	if !Supported() {
		t.Skip("no system clipboard utility available")
	}

	s := NewSystem()
	require.NoError(t, s.Copy("lingotree clipboard test"))

	text, err := s.Paste()
	require.NoError(t, err)
	assert.Equal(t, "lingotree clipboard test", text)
}
