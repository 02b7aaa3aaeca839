package climux

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_RecognizesHelpAnywhere(t *testing.T) {
	b := NewBreaker()
	res := b.Parse(NewContext([]string{"remote", "add", "--help"}))

	assert.True(t, res.IsOk(), "help token should be recognized at any position")
	assert.Equal(t, InterruptHelp, res.Value())
}

func TestBreaker_RecognizesShortHelp(t *testing.T) {
	b := NewBreaker()
	res := b.Parse(NewContext([]string{"-h"}))

	assert.True(t, res.IsOk())
	assert.Equal(t, InterruptHelp, res.Value())
}

func TestBreaker_RecognizesVersion(t *testing.T) {
	b := NewBreaker()
	res := b.Parse(NewContext([]string{"--version"}))

	assert.True(t, res.IsOk())
	assert.Equal(t, InterruptVersion, res.Value())
}

func TestBreaker_FirstTokenInInputOrderWins(t *testing.T) {
	b := NewBreaker()
	res := b.Parse(NewContext([]string{"--version", "--help"}))

	assert.True(t, res.IsOk())
	assert.Equal(t, InterruptVersion, res.Value(), "the earlier token should decide the interrupt")
}

func TestBreaker_FailsWithoutReservedTokens(t *testing.T) {
	b := NewBreaker()
	res := b.Parse(NewContext([]string{"build", "--fast"}))

	assert.True(t, res.IsErr(), "ordinary input should not be intercepted")
	assert.True(t, errors.Is(res.Err(), ErrNoInterrupt))
}

func TestBreaker_ParseDoesNotConsumeInput(t *testing.T) {
	ctx := NewContext([]string{"x", "--help", "y"})
	NewBreaker().Parse(ctx)

	assert.Equal(t, []string{"x", "--help", "y"}, ctx.Remaining(), "scanning must leave the read position unchanged")
}

func TestBreaker_RegisterReservesTokens(t *testing.T) {
	reg := NewRegistry()
	assert.NoError(t, NewBreaker().Register(reg))

	assert.True(t, reg.Has("help"), "help should be reserved")
	assert.True(t, reg.Has("h"), "short help should be reserved")
	assert.True(t, reg.Has("version"), "version should be reserved")
}

func TestBreaker_PrintHelpListsReservedFlags(t *testing.T) {
	var buf bytes.Buffer
	NewBreaker().PrintHelp(nil, &buf)

	assert.Contains(t, buf.String(), "--help", "reserved help flag should be listed")
	assert.Contains(t, buf.String(), "--version", "reserved version flag should be listed")
}
