package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/pyoutline/internal/outline"
)

// Test Plan for cached Outliner:
// - ContentKey is a deterministic 64-char hex digest that changes with content
// - Repeated source is served from the cache; hits and misses are counted
// - Errors are returned but never cached
// - Non-positive sizes fall back to DefaultMaxEntries
// - Concurrent callers get the same outline
// - Wraps the real outliner end to end

type countingOutliner struct {
	calls atomic.Int32
	err   error
}

func (c *countingOutliner) Outline(source []byte) (string, error) {
	c.calls.Add(1)
	if c.err != nil {
		return "", c.err
	}
	return "outline of " + string(source), nil
}

func TestContentKey(t *testing.T) {
	t.Parallel()

	a := ContentKey([]byte("def f(): pass\n"))
	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
	assert.Equal(t, a, ContentKey([]byte("def f(): pass\n")))
	assert.NotEqual(t, a, ContentKey([]byte("def g(): pass\n")))
}

func TestOutliner_CachesBySource(t *testing.T) {
	t.Parallel()

	next := &countingOutliner{}
	c, err := NewOutliner(next, 16)
	require.NoError(t, err)
	defer c.Close()

	out, err := c.Outline([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "outline of a", out)

	out, err = c.Outline([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, "outline of a", out)

	_, err = c.Outline([]byte("b"))
	require.NoError(t, err)

	assert.Equal(t, int32(2), next.calls.Load())
	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(2), misses)
}

func TestOutliner_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	next := &countingOutliner{err: boom}
	c, err := NewOutliner(next, 16)
	require.NoError(t, err)
	defer c.Close()

	for i := 0; i < 3; i++ {
		_, err := c.Outline([]byte("bad"))
		assert.ErrorIs(t, err, boom)
	}
	assert.Equal(t, int32(3), next.calls.Load())
}

func TestNewOutliner_DefaultSize(t *testing.T) {
	t.Parallel()

	c, err := NewOutliner(&countingOutliner{}, 0)
	require.NoError(t, err)
	defer c.Close()

	out, err := c.Outline([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "outline of x", out)
}

func TestOutliner_Concurrent(t *testing.T) {
	t.Parallel()

	c, err := NewOutliner(&countingOutliner{}, 16)
	require.NoError(t, err)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := c.Outline([]byte("same"))
			assert.NoError(t, err)
			assert.Equal(t, "outline of same", out)
		}()
	}
	wg.Wait()
}

func TestOutliner_WrapsRealOutliner(t *testing.T) {
	t.Parallel()

	c, err := NewOutliner(outline.New(), DefaultMaxEntries)
	require.NoError(t, err)
	defer c.Close()

	out, err := c.Outline([]byte("def f():\n    return 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    \"(implementation not shown)\"", out)
}
