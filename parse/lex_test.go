package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_Words(t *testing.T) {
	args, err := Split("build --release api")

	assert.NoError(t, err)
	assert.Equal(t, []string{"build", "--release", "api"}, args)
}

func TestSplit_QuotedGroups(t *testing.T) {
	args, err := Split(`deploy "hello world" --fast`)

	assert.NoError(t, err)
	assert.Equal(t, []string{"deploy", "hello world", "--fast"}, args)
}

func TestSplit_Empty(t *testing.T) {
	args, err := Split("")

	assert.NoError(t, err)
	assert.Empty(t, args)
}

func TestSplit_CollapsesWhitespace(t *testing.T) {
	args, err := Split("a   b\tc")

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, args)
}
