package climux

// WithAliases sets alternative names under which the unit dispatches. The
// canonical name reported in results is always Unit.Name, never the alias
// that matched.
func WithAliases(aliases ...string) ConfigureUnitFunc {
	return func(unit *Unit) {
		unit.Aliases = aliases
	}
}

// WithUnitDescription sets the description shown in the owning group's
// command listing.
func WithUnitDescription(description string) ConfigureUnitFunc {
	return func(unit *Unit) {
		unit.Description = description
	}
}
