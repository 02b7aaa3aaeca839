package climux

import (
	"errors"
	"io"
	"strings"

	"github.com/iancoleman/strcase"
)

// ConverterFunc turns a raw command-line token into a typed value, or fails
// with a descriptive error. Converters may block (e.g. on I/O); the engine
// never calls two converters concurrently.
type ConverterFunc[T any] func(raw string) (T, error)

// Handler converts a successfully parsed value into a program outcome.
type Handler[T, R any] func(value T) (R, error)

// ArgParser is the capability set the subcommand engine requires of every
// leaf parser: parse a value from the shared context, contribute declared
// flags to a registry so collisions across the whole tree are detected
// before parsing begins, and render its own help.
//
// Parse may consume zero or more tokens. It must not touch the hot path -
// that is the combinator's responsibility at the subcommand layer only.
type ArgParser[T any] interface {
	Parse(ctx *Context) Result[T]
	Register(reg *Registry) error
	PrintHelp(ctx *Context, w io.Writer)
}

// Runner pairs parsing with execution: Run parses a value from the context
// and converts it into a program outcome.
type Runner[R any] interface {
	Run(ctx *Context) Result[R]
}

// ConfigureGroupFunc is used when defining Group options.
type ConfigureGroupFunc func(group *Group)

// ConfigureUnitFunc is used when defining Unit options.
type ConfigureUnitFunc func(unit *Unit)

// NameConversionFunc converts a declared name to its command-line form.
type NameConversionFunc func(string) string

// ListDelimiterFunc signature to match when supplying a user-defined
// function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-command-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_command_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCase converts a string to lower case "mycommandname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultCommandNameConverter = ToLowerCase
)

// Selection is the outcome of Group.Parse: the canonical name of the
// dispatched command and the value its parser produced. When a unit's own
// arguments fail, the Selection attached to the error still carries the
// command that was identified, with Args holding the unit's partial value.
type Selection struct {
	Command string
	Args    any
}

// Dispatch is the outcome of Group.Run: the canonical name of the executed
// command and the outcome its runner produced.
type Dispatch struct {
	Command string
	Value   any
}

// Interrupt identifies an out-of-band request recognized by the circuit
// breaker.
type Interrupt int

const (
	// InterruptHelp denotes a recognized help request.
	InterruptHelp Interrupt = iota + 1
	// InterruptVersion denotes a recognized version request.
	InterruptVersion
)

// DefaultVersion is printed on a version interception when no version was
// configured.
const DefaultVersion = "0.0.0"

var (
	ErrCommandNotFound  = errors.New("not a valid subcommand name")
	ErrMissingCommand   = errors.New("missing subcommand name")
	ErrMissingArgument  = errors.New("missing argument")
	ErrFlagCollision    = errors.New("flag registered more than once")
	ErrReservedFlag     = errors.New("flag name is reserved")
	ErrNoInterrupt      = errors.New("no help or version request in input")
	ErrHelpRequested    = errors.New("help requested")
	ErrVersionRequested = errors.New("version requested")
)

const (
	FmtErrorWithString = "%w: %s"
)
