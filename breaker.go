package climux

import (
	"fmt"
	"io"
	"strings"
)

// Breaker recognizes the reserved help and version tokens anywhere in the
// current remaining input. Every subcommand layer registers it so the
// reserved names never surface as collisions, but it is only consulted
// after selector parsing has already failed - normal parsing takes
// precedence, so a command literally named "help" still dispatches.
type Breaker struct {
	helpTokens    []string
	versionTokens []string
}

// NewBreaker creates a Breaker recognizing --help/-h and --version.
func NewBreaker() *Breaker {
	return &Breaker{
		helpTokens:    []string{"--help", "-h"},
		versionTokens: []string{"--version"},
	}
}

// Parse scans the remaining tokens in order and returns the first
// recognized interrupt. The context's read position is unchanged when
// Parse returns.
func (b *Breaker) Parse(ctx *Context) Result[Interrupt] {
	for _, token := range ctx.Remaining() {
		for _, help := range b.helpTokens {
			if token == help {
				return Ok(InterruptHelp)
			}
		}
		for _, version := range b.versionTokens {
			if token == version {
				return Ok(InterruptVersion)
			}
		}
	}

	return Err[Interrupt](NewParseError(nil, ErrNoInterrupt))
}

// Register reserves the breaker's tokens so leaf parsers cannot claim them
// and nested layers do not collide with each other.
func (b *Breaker) Register(reg *Registry) error {
	for _, token := range b.helpTokens {
		reg.Reserve(strings.TrimLeft(token, "-"))
	}
	for _, token := range b.versionTokens {
		reg.Reserve(strings.TrimLeft(token, "-"))
	}

	return nil
}

// PrintHelp renders the reserved flags.
func (b *Breaker) PrintHelp(_ *Context, w io.Writer) {
	fmt.Fprintf(w, "  %s \"print contextual help\"\n", strings.Join(b.helpTokens, " or "))
	fmt.Fprintf(w, "  %s \"print the program version\"\n", strings.Join(b.versionTokens, " or "))
}

var _ ArgParser[Interrupt] = (*Breaker)(nil)
