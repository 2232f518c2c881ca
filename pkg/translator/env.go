package translator

import (
	"fmt"
	"sort"
	"strings"
)

// Environment maps declared variable names to their declared type tags. It
// is filled during generation in document order; a redeclaration overwrites
// unconditionally. There is no scoping and no shadowing: one flat namespace
// per translation, and every invocation starts from an empty map.
type Environment struct {
	types map[string]string
}

func NewEnvironment() *Environment {
	return &Environment{types: make(map[string]string)}
}

// Record stores the declared type tag for name, replacing any earlier entry.
func (e *Environment) Record(name, typeTag string) {
	e.types[name] = typeTag
}

// Lookup returns the recorded type tag for name and whether one exists.
func (e *Environment) Lookup(name string) (string, bool) {
	tag, ok := e.types[name]
	return tag, ok
}

// Len returns the number of recorded names.
func (e *Environment) Len() int {
	return len(e.types)
}

// String returns a deterministically ordered dump of the environment.
func (e *Environment) String() string {
	if len(e.types) == 0 {
		return "Environment: (empty)\n"
	}
	names := make([]string, 0, len(e.types))
	for name := range e.types {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Environment:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-20s %s\n", name, e.types[name])
	}
	return sb.String()
}
