package climux

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_UnitUsageFormatsAliasesAndDescription(t *testing.T) {
	g := NewGroup("tool")
	r := NewRenderer(g)
	u := &Unit{Name: "test", Aliases: []string{"t"}, Description: "run the test suite"}

	assert.Equal(t, `test (t) "run the test suite"`, r.UnitUsage(u))
}

func TestRenderer_UnitUsageBareName(t *testing.T) {
	r := NewRenderer(NewGroup("tool"))

	assert.Equal(t, "build", r.UnitUsage(&Unit{Name: "build"}))
}

func TestRenderer_PrefixPrefersHotPath(t *testing.T) {
	r := NewRenderer(NewGroup("tool"))
	ctx := NewContext(nil)
	ctx.PushCommand("remote")
	ctx.PushCommand("add")

	assert.Equal(t, "remote add", r.Prefix(ctx), "matched names should form the prefix")
	assert.Equal(t, "tool", r.Prefix(NewContext(nil)), "an empty hot path falls back to the group name")
	assert.Equal(t, "tool", r.Prefix(nil))
}

func TestRenderer_GroupUsageListsCommandsInRegistrationOrder(t *testing.T) {
	g := NewGroup("tool",
		WithGroupDescription("a build tool"),
		WithUnits(buildUnit(), testUnit()))

	var buf bytes.Buffer
	g.PrintHelp(NewContext(nil), &buf)
	out := buf.String()

	assert.Contains(t, out, "usage: tool <command> [arguments]")
	assert.Contains(t, out, "a build tool")
	assert.Contains(t, out, `build "compile the project"`)
	assert.Contains(t, out, `test (t) "run the test suite"`)
	assert.Less(t, strings.Index(out, "build"), strings.Index(out, "test (t)"), "listing order is registration order")
	assert.Contains(t, out, "--help", "the reserved flags are part of every listing")
}

func TestWrap_BreaksOnWordBoundaries(t *testing.T) {
	wrapped := wrap("one two three four", 9)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 9, "no line should exceed the width")
	}
	assert.Equal(t, "one two three four", strings.ReplaceAll(wrapped, "\n", " "), "wrapping must not lose words")
}
