// Package climux composes command-line parsers. Leaf parsers for
// positionals, options and flags combine into command parsers, and command
// parsers combine into multi-command groups: a Group dispatches one of
// several named units based on the first remaining token, propagates
// structured success and partial-failure results up through nested layers,
// and intercepts help and version requests at any nesting depth.
//
// Failures are values, not panics: every parse and run step returns a
// Result carrying either the parsed value or a ParseError with the ordered
// error messages and a best-effort partial value for diagnostics.
package climux

import (
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/skiron/climux/parse"
)

// Group dispatches one of several named units based on the first remaining
// token. A Group satisfies the same parse and run capabilities as the units
// it contains, so a group can serve as one branch of an outer group.
type Group struct {
	name          string
	version       string
	description   string
	units         *orderedmap.OrderedMap[string, *Unit]
	breaker       *Breaker
	renderer      Renderer
	nameConverter NameConversionFunc
	stdout        io.Writer
	stderr        io.Writer
	exit          func(code int)
}

// NewGroup creates a Group. The name is used as the root label of help
// output when nothing has been matched yet.
func NewGroup(name string, configs ...ConfigureGroupFunc) *Group {
	g := &Group{
		name:          name,
		units:         orderedmap.New[string, *Unit](),
		breaker:       NewBreaker(),
		nameConverter: DefaultCommandNameConverter,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		exit:          os.Exit,
	}
	g.renderer = NewRenderer(g)

	for _, config := range configs {
		config(g)
	}

	return g
}

// AddUnit registers a unit under its converted name and aliases. Insertion
// order is dispatch order. A unit whose converted name is already taken is
// dropped - the first registration wins.
func (g *Group) AddUnit(u *Unit) *Group {
	u.Name = g.nameConverter(u.Name)
	for i, alias := range u.Aliases {
		u.Aliases[i] = g.nameConverter(alias)
	}
	if _, found := g.units.Get(u.Name); !found {
		g.units.Set(u.Name, u)
	}

	return g
}

// selectUnit maps a raw token to a unit by testing membership in each
// unit's name and alias set, in registration order.
func (g *Group) selectUnit(token string) (*Unit, error) {
	for pair := g.units.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Matches(token) {
			return pair.Value, nil
		}
	}

	return nil, fmt.Errorf(FmtErrorWithString, ErrCommandNotFound, token)
}

// parseSelector resolves the front token against the unit table. The token
// is only consumed on a successful match; the canonical name is pushed onto
// the hot path before control is handed to the unit.
func (g *Group) parseSelector(ctx *Context) (*Unit, error) {
	token, ok := ctx.Peek()
	if !ok {
		return nil, ErrMissingCommand
	}
	unit, err := g.selectUnit(token)
	if err != nil {
		return nil, err
	}
	ctx.Next()
	ctx.PushCommand(unit.Name)

	return unit, nil
}

// Parse consumes exactly one token to pick a branch and delegates the rest
// of the context to it. Parse never consults the circuit breaker and never
// terminates the process - it is the side-effect-free composition primitive
// Run is built on, safe to nest inside other combinators.
//
// When the dispatched unit fails on its own arguments, the returned error's
// partial Selection still names the command that was identified, with Args
// holding whatever partial value the unit produced.
func (g *Group) Parse(ctx *Context) Result[Selection] {
	unit, err := g.parseSelector(ctx)
	if err != nil {
		return Err[Selection](NewParseError(Selection{}, err))
	}

	res := unit.parse(ctx)
	if res.IsErr() {
		sub := res.Err()
		return Err[Selection](NewParseError(Selection{Command: unit.Name, Args: sub.Partial}, sub.Errs...))
	}

	return Ok(Selection{Command: unit.Name, Args: res.Value()})
}

// Run is the execution entry point. Unlike Parse, it consults the circuit
// breaker when selector parsing fails: a recognized help request renders
// contextual help and terminates with status 1, a recognized version
// request prints the configured version and terminates with status 0, and
// anything else propagates the selector error unmodified. Help and version
// are last-resort interpretations, never replacements for a genuine
// selection error.
func (g *Group) Run(ctx *Context) Result[Dispatch] {
	unit, err := g.parseSelector(ctx)
	if err != nil {
		if intr := g.breaker.Parse(ctx); intr.IsOk() {
			return Err[Dispatch](g.interrupt(ctx, intr.Value()))
		}
		return Err[Dispatch](NewParseError(Dispatch{}, err))
	}

	res := unit.run(ctx)
	if res.IsErr() {
		sub := res.Err()
		return Err[Dispatch](NewParseError(Dispatch{Command: unit.Name, Value: sub.Partial}, sub.Errs...))
	}

	return Ok(Dispatch{Command: unit.Name, Value: res.Value()})
}

// interrupt renders the out-of-band response and terminates the process.
// The returned error is only observable when the exit func has been
// replaced, e.g. in tests.
func (g *Group) interrupt(ctx *Context, kind Interrupt) *ParseError {
	if kind == InterruptVersion {
		version := g.version
		if version == "" {
			version = DefaultVersion
		}
		fmt.Fprintln(g.stdout, version)
		g.exit(0)

		return NewParseError(Dispatch{}, ErrVersionRequested)
	}

	g.PrintHelp(ctx, g.stdout)
	g.exit(1)

	return NewParseError(Dispatch{}, ErrHelpRequested)
}

// Register contributes every unit's declared flags plus the breaker's
// reserved names to the registry.
func (g *Group) Register(reg *Registry) error {
	if err := g.breaker.Register(reg); err != nil {
		return err
	}
	for pair := g.units.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.register == nil {
			continue
		}
		if err := pair.Value.register(reg); err != nil {
			return err
		}
	}

	return nil
}

// PrintHelp renders the group's command listing using the hot path as the
// already-matched command prefix. Rendering never terminates the process;
// termination happens in Run.
func (g *Group) PrintHelp(ctx *Context, w io.Writer) {
	g.renderer.GroupUsage(ctx, w)
}

// AsUnit exposes the group as one branch of an outer group. The unit
// inherits the group's name and description unless overridden by configs.
func (g *Group) AsUnit(configs ...ConfigureUnitFunc) *Unit {
	u := &Unit{
		Name:        g.name,
		Description: g.description,
		parse: func(ctx *Context) Result[any] {
			return erase(g.Parse(ctx))
		},
		run: func(ctx *Context) Result[any] {
			return erase(g.Run(ctx))
		},
		register:  g.Register,
		printHelp: g.PrintHelp,
	}

	for _, config := range configs {
		config(u)
	}

	return u
}

// ParseArgs parses args (without the program name) against the group. Flag
// collisions across the whole tree are detected before any token is read.
func (g *Group) ParseArgs(args []string) Result[Selection] {
	if err := g.Register(NewRegistry()); err != nil {
		return Err[Selection](NewParseError(Selection{}, err))
	}

	return g.Parse(NewContext(args))
}

// ParseString splits argString like a shell would and calls ParseArgs.
func (g *Group) ParseString(argString string) Result[Selection] {
	args, err := parse.Split(argString)
	if err != nil {
		return Err[Selection](NewParseError(Selection{}, err))
	}

	return g.ParseArgs(args)
}

// RunArgs runs the group against args (without the program name). Flag
// collisions across the whole tree are detected before any token is read.
func (g *Group) RunArgs(args []string) Result[Dispatch] {
	if err := g.Register(NewRegistry()); err != nil {
		return Err[Dispatch](NewParseError(Dispatch{}, err))
	}

	return g.Run(NewContext(args))
}

// RunString splits argString like a shell would and calls RunArgs.
func (g *Group) RunString(argString string) Result[Dispatch] {
	args, err := parse.Split(argString)
	if err != nil {
		return Err[Dispatch](NewParseError(Dispatch{}, err))
	}

	return g.RunArgs(args)
}

// Execute runs the group against os.Args[1:], reports failures on the
// group's stderr and returns an exit code suitable for os.Exit.
func (g *Group) Execute() int {
	res := g.RunArgs(os.Args[1:])
	if res.IsErr() {
		for _, err := range res.Err().Errs {
			fmt.Fprintf(g.stderr, "error: %s\n", err)
		}
		return 1
	}

	return 0
}

var (
	_ ArgParser[Selection] = (*Group)(nil)
	_ Runner[Dispatch]     = (*Group)(nil)
)
