package climux

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/skiron/climux/util"
)

// Renderer produces the human-readable help of a group.
type Renderer interface {
	UnitUsage(u *Unit) string
	GroupUsage(ctx *Context, w io.Writer)
}

type DefaultRenderer struct {
	group *Group
}

func NewRenderer(group *Group) *DefaultRenderer {
	return &DefaultRenderer{group: group}
}

// Prefix returns the command prefix already matched in this invocation.
// An empty hot path falls back to the group name, or to the program name
// when the group is anonymous.
func (r *DefaultRenderer) Prefix(ctx *Context) string {
	if ctx != nil && len(ctx.HotPath()) > 0 {
		return strings.Join(ctx.HotPath(), " ")
	}
	if r.group.name != "" {
		return r.group.name
	}

	return filepath.Base(os.Args[0])
}

// UnitUsage generates the listing row for one unit: its name, aliases and
// description.
func (r *DefaultRenderer) UnitUsage(u *Unit) string {
	usage := u.Name
	if len(u.Aliases) > 0 {
		usage += " (" + strings.Join(u.Aliases, ", ") + ")"
	}
	if u.Description != "" {
		usage += " \"" + u.Description + "\""
	}

	return usage
}

// GroupUsage writes the usage line, the group description wrapped to the
// terminal width, and the command listing in registration order.
func (r *DefaultRenderer) GroupUsage(ctx *Context, w io.Writer) {
	fmt.Fprintf(w, "usage: %s <command> [arguments]\n", r.Prefix(ctx))
	if r.group.description != "" {
		fmt.Fprintf(w, "\n%s\n", wrap(r.group.description, util.TerminalWidth(os.Stdout)))
	}

	fmt.Fprintf(w, "\ncommands:\n")
	for pair := r.group.units.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(w, "  %s\n", r.UnitUsage(pair.Value))
	}

	fmt.Fprintf(w, "\nflags:\n")
	r.group.breaker.PrintHelp(ctx, w)
}

// wrap breaks s into lines of at most width columns without splitting
// words. Words longer than width are emitted on their own line.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}

var _ Renderer = (*DefaultRenderer)(nil)
