package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/pyoutline/internal/outline"
)

// Test Plan for OutlineServer:
// - NewOutlineServer requires an outliner
// - A new server starts with empty metrics

func TestNewOutlineServer(t *testing.T) {
	t.Parallel()

	_, err := NewOutlineServer("pyoutline", nil, t.TempDir())
	assert.Error(t, err)

	s, err := NewOutlineServer("pyoutline", outline.New(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, s.Metrics().TotalCalls)
}
