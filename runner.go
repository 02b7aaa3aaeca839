package climux

// boundRunner glues a parser to a handler.
type boundRunner[T, R any] struct {
	parser  ArgParser[T]
	handler Handler[T, R]
}

// NewRunner binds handler to parser: Run parses a value and hands it to the
// handler. A handler failure is reported as a parse error carrying the
// fully parsed value as partial state.
func NewRunner[T, R any](parser ArgParser[T], handler Handler[T, R]) Runner[R] {
	return &boundRunner[T, R]{parser: parser, handler: handler}
}

func (b *boundRunner[T, R]) Run(ctx *Context) Result[R] {
	parsed := b.parser.Parse(ctx)
	if parsed.IsErr() {
		return Err[R](parsed.Err())
	}

	outcome, err := b.handler(parsed.Value())
	if err != nil {
		return Err[R](NewParseError(parsed.Value(), err))
	}

	return Ok(outcome)
}
