package climux

import "github.com/ef-ds/deque"

// Context threads per-invocation parse state through every parse call: the
// remaining input tokens, consumable from the front, and the hot path - the
// ordered names of commands matched so far. A Context lives exactly as long
// as one top-level parse or run invocation and is shared by reference down
// the call tree; exactly one layer is active at any instant, so no locking
// is needed.
type Context struct {
	tokens  *deque.Deque
	hotPath []string
}

// NewContext creates a Context over args. The program name must already
// have been stripped.
func NewContext(args []string) *Context {
	c := &Context{tokens: deque.New()}
	for _, arg := range args {
		c.tokens.PushBack(arg)
	}

	return c
}

// Next consumes and returns the front token.
func (c *Context) Next() (string, bool) {
	v, ok := c.tokens.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Peek returns the front token without consuming it.
func (c *Context) Peek() (string, bool) {
	v, ok := c.tokens.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Len returns the number of unconsumed tokens.
func (c *Context) Len() int {
	return c.tokens.Len()
}

// Remaining returns a snapshot of the unconsumed tokens in consumption
// order. The deque is rotated through one full cycle, so the read position
// is unchanged when Remaining returns.
func (c *Context) Remaining() []string {
	n := c.tokens.Len()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, _ := c.tokens.PopFront()
		out = append(out, v.(string))
		c.tokens.PushBack(v)
	}

	return out
}

// PushCommand appends a matched command name to the hot path. The hot path
// is append-only and grows strictly before delegation to the matched unit.
func (c *Context) PushCommand(name string) {
	c.hotPath = append(c.hotPath, name)
}

// HotPath returns the ordered names of commands matched so far. It is empty
// at the root of an invocation.
func (c *Context) HotPath() []string {
	return c.hotPath
}
