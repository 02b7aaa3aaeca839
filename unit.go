package climux

import "io"

// Unit is one named branch of a Group: a parser paired with a runner plus
// dispatch metadata. Within one group the set of all names and aliases
// should be unique; uniqueness is not validated at construction time and
// dispatch resolves overlaps deterministically - the first registered unit
// whose name or aliases contain the token wins.
type Unit struct {
	Name        string
	Aliases     []string
	Description string

	parse     func(ctx *Context) Result[any]
	run       func(ctx *Context) Result[any]
	register  func(reg *Registry) error
	printHelp func(ctx *Context, w io.Writer)
}

// NewUnit pairs a leaf parser with a handler under a command name. The
// handler receives the parsed value and produces the unit's outcome.
func NewUnit[T, R any](name string, parser ArgParser[T], handler Handler[T, R], configs ...ConfigureUnitFunc) *Unit {
	runner := NewRunner(parser, handler)
	u := &Unit{
		Name: name,
		parse: func(ctx *Context) Result[any] {
			return erase(parser.Parse(ctx))
		},
		run: func(ctx *Context) Result[any] {
			return erase(runner.Run(ctx))
		},
		register:  parser.Register,
		printHelp: parser.PrintHelp,
	}

	for _, config := range configs {
		config(u)
	}

	return u
}

// Matches reports whether token equals the unit's name or one of its
// aliases.
func (u *Unit) Matches(token string) bool {
	if token == u.Name {
		return true
	}
	for _, alias := range u.Aliases {
		if token == alias {
			return true
		}
	}

	return false
}

// PrintHelp renders the unit's own help.
func (u *Unit) PrintHelp(ctx *Context, w io.Writer) {
	if u.printHelp != nil {
		u.printHelp(ctx, w)
	}
}

// erase drops the static type of a Result so heterogeneous units can share
// one dispatch table. The error variant is carried through untouched.
func erase[T any](r Result[T]) Result[any] {
	if r.IsErr() {
		return Err[any](r.Err())
	}

	return Ok[any](r.Value())
}
