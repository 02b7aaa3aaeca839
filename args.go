package climux

import (
	"fmt"
	"io"
	"strings"
)

// positional consumes exactly one token and converts it.
type positional[T any] struct {
	name        string
	description string
	convert     ConverterFunc[T]
}

// Positional returns a leaf parser consuming one token under the given
// placeholder name. A nil convert falls back to the built-in Convert.
func Positional[T any](name, description string, convert ConverterFunc[T]) ArgParser[T] {
	if convert == nil {
		convert = Convert[T]
	}

	return &positional[T]{name: name, description: description, convert: convert}
}

func (p *positional[T]) Parse(ctx *Context) Result[T] {
	token, ok := ctx.Next()
	if !ok {
		return Err[T](NewParseError(nil, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, p.name)))
	}

	value, err := p.convert(token)
	if err != nil {
		return Err[T](NewParseError(nil, err))
	}

	return Ok(value)
}

func (p *positional[T]) Register(*Registry) error {
	return nil
}

func (p *positional[T]) PrintHelp(_ *Context, w io.Writer) {
	fmt.Fprintf(w, "  <%s>", p.name)
	if p.description != "" {
		fmt.Fprintf(w, " \"%s\"", p.description)
	}
	fmt.Fprintln(w)
}

// standalone is a boolean flag: present or absent at the front of the
// input. It never fails.
type standalone struct {
	name        string
	short       string
	description string
}

// Flag returns a leaf parser for a standalone boolean flag. short may be
// empty.
func Flag(name, short, description string) ArgParser[bool] {
	return &standalone{name: name, short: short, description: description}
}

func (f *standalone) Parse(ctx *Context) Result[bool] {
	token, ok := ctx.Peek()
	if !ok {
		return Ok(false)
	}
	if token == "--"+f.name || (f.short != "" && token == "-"+f.short) {
		ctx.Next()
		return Ok(true)
	}

	return Ok(false)
}

func (f *standalone) Register(reg *Registry) error {
	if err := reg.Add(f.name); err != nil {
		return err
	}
	if f.short != "" {
		return reg.Add(f.short)
	}

	return nil
}

func (f *standalone) PrintHelp(_ *Context, w io.Writer) {
	fmt.Fprintf(w, "  --%s", f.name)
	if f.short != "" {
		fmt.Fprintf(w, " or -%s", f.short)
	}
	if f.description != "" {
		fmt.Fprintf(w, " \"%s\"", f.description)
	}
	fmt.Fprintln(w)
}

// OptionParser parses "--name value", "--name=value" or "-short value" from
// the front of the input.
type OptionParser[T any] struct {
	name         string
	short        string
	description  string
	convert      ConverterFunc[T]
	defaultValue *T
	required     bool
}

// Option returns a leaf parser for a valued option. A nil convert falls
// back to the built-in Convert. An absent option yields the default value
// when one was set, the zero value of T otherwise, unless Required was
// called.
func Option[T any](name, short, description string, convert ConverterFunc[T]) *OptionParser[T] {
	if convert == nil {
		convert = Convert[T]
	}

	return &OptionParser[T]{name: name, short: short, description: description, convert: convert}
}

// WithDefault sets the value produced when the option is absent.
func (o *OptionParser[T]) WithDefault(value T) *OptionParser[T] {
	o.defaultValue = &value
	return o
}

// Required makes an absent option a parse error.
func (o *OptionParser[T]) Required() *OptionParser[T] {
	o.required = true
	return o
}

func (o *OptionParser[T]) Parse(ctx *Context) Result[T] {
	long := "--" + o.name
	token, ok := ctx.Peek()
	if ok {
		var raw string
		var have bool
		switch {
		case token == long || (o.short != "" && token == "-"+o.short):
			ctx.Next()
			raw, have = ctx.Next()
			if !have {
				return Err[T](NewParseError(nil, fmt.Errorf("%w: value for %s", ErrMissingArgument, long)))
			}
		case strings.HasPrefix(token, long+"="):
			ctx.Next()
			raw = strings.TrimPrefix(token, long+"=")
			have = true
		}
		if have {
			value, err := o.convert(raw)
			if err != nil {
				return Err[T](NewParseError(nil, err))
			}
			return Ok(value)
		}
	}

	if o.defaultValue != nil {
		return Ok(*o.defaultValue)
	}
	if o.required {
		return Err[T](NewParseError(nil, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, long)))
	}

	var zero T
	return Ok(zero)
}

func (o *OptionParser[T]) Register(reg *Registry) error {
	if err := reg.Add(o.name); err != nil {
		return err
	}
	if o.short != "" {
		return reg.Add(o.short)
	}

	return nil
}

func (o *OptionParser[T]) PrintHelp(_ *Context, w io.Writer) {
	fmt.Fprintf(w, "  --%s <value>", o.name)
	if o.short != "" {
		fmt.Fprintf(w, " or -%s <value>", o.short)
	}
	if o.description != "" {
		fmt.Fprintf(w, " \"%s\"", o.description)
	}
	if o.required {
		fmt.Fprintf(w, " (required)")
	}
	fmt.Fprintln(w)
}

// rest drains every remaining token.
type rest struct {
	name        string
	description string
}

// Rest returns a leaf parser consuming all remaining tokens verbatim.
func Rest(name, description string) ArgParser[[]string] {
	return &rest{name: name, description: description}
}

func (r *rest) Parse(ctx *Context) Result[[]string] {
	var out []string
	for {
		token, ok := ctx.Next()
		if !ok {
			break
		}
		out = append(out, token)
	}

	return Ok(out)
}

func (r *rest) Register(*Registry) error {
	return nil
}

func (r *rest) PrintHelp(_ *Context, w io.Writer) {
	fmt.Fprintf(w, "  [%s...]", r.name)
	if r.description != "" {
		fmt.Fprintf(w, " \"%s\"", r.description)
	}
	fmt.Fprintln(w)
}

// Pair holds the values of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// sequence runs two parsers back to back against the same context.
type sequence[A, B any] struct {
	first  ArgParser[A]
	second ArgParser[B]
}

// Seq sequences two parsers. When the second parser fails, the error's
// partial Pair still carries the first parser's value.
func Seq[A, B any](first ArgParser[A], second ArgParser[B]) ArgParser[Pair[A, B]] {
	return &sequence[A, B]{first: first, second: second}
}

func (s *sequence[A, B]) Parse(ctx *Context) Result[Pair[A, B]] {
	a := s.first.Parse(ctx)
	if a.IsErr() {
		return Err[Pair[A, B]](a.Err())
	}

	b := s.second.Parse(ctx)
	if b.IsErr() {
		sub := b.Err()
		return Err[Pair[A, B]](NewParseError(Pair[A, B]{First: a.Value()}, sub.Errs...))
	}

	return Ok(Pair[A, B]{First: a.Value(), Second: b.Value()})
}

func (s *sequence[A, B]) Register(reg *Registry) error {
	if err := s.first.Register(reg); err != nil {
		return err
	}

	return s.second.Register(reg)
}

func (s *sequence[A, B]) PrintHelp(ctx *Context, w io.Writer) {
	s.first.PrintHelp(ctx, w)
	s.second.PrintHelp(ctx, w)
}
