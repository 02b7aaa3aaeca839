package climux

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Registry tracks every flag name declared across a command tree so that
// collisions can be detected before parsing begins. Names are registered
// without their prefix dashes. Names reserved by the circuit breaker may be
// reserved again by nested layers without error, but a leaf parser claiming
// a reserved name is rejected.
type Registry struct {
	flags    *orderedmap.OrderedMap[string, bool]
	reserved map[string]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		flags:    orderedmap.New[string, bool](),
		reserved: map[string]bool{},
	}
}

// Reserve marks name as owned by the circuit breaker. Reserving the same
// name twice is not a collision - every subcommand layer reserves the help
// and version flags.
func (r *Registry) Reserve(name string) {
	r.reserved[name] = true
}

// Add declares a flag name. Declaring a reserved name or declaring the same
// name twice is an error.
func (r *Registry) Add(name string) error {
	if r.reserved[name] {
		return fmt.Errorf(FmtErrorWithString, ErrReservedFlag, name)
	}
	if _, found := r.flags.Get(name); found {
		return fmt.Errorf(FmtErrorWithString, ErrFlagCollision, name)
	}
	r.flags.Set(name, true)

	return nil
}

// Has reports whether name is known, either declared or reserved.
func (r *Registry) Has(name string) bool {
	if r.reserved[name] {
		return true
	}
	_, found := r.flags.Get(name)

	return found
}

// Names returns the declared flag names in registration order. Reserved
// names are not included.
func (r *Registry) Names() []string {
	out := make([]string, 0, r.flags.Len())
	for pair := r.flags.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}
