package climux

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_NextConsumesFromTheFront(t *testing.T) {
	ctx := NewContext([]string{"a", "b"})

	token, ok := ctx.Next()
	assert.True(t, ok, "Next should succeed while tokens remain")
	assert.Equal(t, "a", token, "tokens should be consumed in input order")
	assert.Equal(t, 1, ctx.Len(), "one token should remain")

	token, ok = ctx.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", token)

	_, ok = ctx.Next()
	assert.False(t, ok, "Next should fail on an exhausted context")
}

func TestContext_PeekDoesNotConsume(t *testing.T) {
	ctx := NewContext([]string{"a"})

	token, ok := ctx.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", token)
	assert.Equal(t, 1, ctx.Len(), "Peek should not advance the read position")
}

func TestContext_RemainingPreservesOrderAndPosition(t *testing.T) {
	ctx := NewContext([]string{"a", "b", "c"})
	ctx.Next()

	assert.Equal(t, []string{"b", "c"}, ctx.Remaining(), "Remaining should snapshot unconsumed tokens in order")

	token, ok := ctx.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", token, "Remaining should not advance the read position")
}

func TestContext_HotPathIsAppendOnly(t *testing.T) {
	ctx := NewContext(nil)
	assert.Empty(t, ctx.HotPath(), "hot path should start empty")

	ctx.PushCommand("remote")
	ctx.PushCommand("add")
	assert.Equal(t, []string{"remote", "add"}, ctx.HotPath(), "hot path should grow in dispatch order")
}
