package climux

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Discrimination(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsOk(), "Ok result should report IsOk")
	assert.False(t, ok.IsErr(), "Ok result should not report IsErr")
	assert.Equal(t, 42, ok.Value(), "Ok result should carry its value")
	assert.Nil(t, ok.Err(), "Ok result should have no error")

	err := Err[int](NewParseError(nil, ErrMissingCommand))
	assert.True(t, err.IsErr(), "Err result should report IsErr")
	assert.False(t, err.IsOk(), "Err result should not report IsOk")
	assert.Zero(t, err.Value(), "Err result should carry the zero value")
	assert.NotNil(t, err.Err(), "Err result should carry its error")
}

func TestParseError_JoinsMessagesInOrder(t *testing.T) {
	perr := NewParseError(nil, errors.New("first"), errors.New("second"))
	assert.Equal(t, "first; second", perr.Error(), "messages should be joined in order")
}

func TestParseError_UnwrapSupportsErrorsIs(t *testing.T) {
	perr := NewParseError(nil, errors.New("noise"), ErrCommandNotFound)
	assert.True(t, errors.Is(perr, ErrCommandNotFound), "errors.Is should find wrapped sentinels")
	assert.False(t, errors.Is(perr, ErrMissingArgument), "errors.Is should not match absent sentinels")
}

func TestParseError_CarriesPartialValue(t *testing.T) {
	perr := NewParseError(Selection{Command: "build"}, ErrMissingArgument)
	partial, ok := perr.Partial.(Selection)
	assert.True(t, ok, "partial value should round-trip as a Selection")
	assert.Equal(t, "build", partial.Command, "partial should name the identified command")
}
