package climux

import "io"

// WithVersion sets the version printed on a version interception. Unset, a
// version request prints DefaultVersion.
func WithVersion(version string) ConfigureGroupFunc {
	return func(group *Group) {
		group.version = version
	}
}

// WithGroupDescription sets the description rendered at the top of the
// group's help.
func WithGroupDescription(description string) ConfigureGroupFunc {
	return func(group *Group) {
		group.description = description
	}
}

// WithUnits registers units in order. Order matters: it is dispatch order
// when names or aliases overlap, and listing order in help output.
func WithUnits(units ...*Unit) ConfigureGroupFunc {
	return func(group *Group) {
		for _, u := range units {
			group.AddUnit(u)
		}
	}
}

// WithCommandNameConverter sets the conversion applied to unit names and
// aliases as they are registered. Supply it before WithUnits.
func WithCommandNameConverter(converter NameConversionFunc) ConfigureGroupFunc {
	return func(group *Group) {
		group.nameConverter = converter
	}
}

// WithStdout redirects help and version output.
func WithStdout(w io.Writer) ConfigureGroupFunc {
	return func(group *Group) {
		group.stdout = w
	}
}

// WithStderr redirects error reporting done by Execute.
func WithStderr(w io.Writer) ConfigureGroupFunc {
	return func(group *Group) {
		group.stderr = w
	}
}

// WithExitFunc replaces the process termination func. Intended for tests
// that need to observe exit codes.
func WithExitFunc(exit func(code int)) ConfigureGroupFunc {
	return func(group *Group) {
		group.exit = exit
	}
}

// WithHelpTokens replaces the reserved help tokens recognized by the
// group's circuit breaker.
func WithHelpTokens(tokens ...string) ConfigureGroupFunc {
	return func(group *Group) {
		group.breaker.helpTokens = tokens
	}
}

// WithVersionTokens replaces the reserved version tokens recognized by the
// group's circuit breaker.
func WithVersionTokens(tokens ...string) ConfigureGroupFunc {
	return func(group *Group) {
		group.breaker.versionTokens = tokens
	}
}

// WithRenderer replaces the help renderer.
func WithRenderer(renderer Renderer) ConfigureGroupFunc {
	return func(group *Group) {
		group.renderer = renderer
	}
}
