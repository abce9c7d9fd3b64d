package streaminfo

import (
	"os"
	"sync/atomic"
)

// NoColorEnv disables automatic styling when set to a non-empty value.
// See https://no-color.org.
const NoColorEnv = "NO_COLOR"

const (
	envUnknown int32 = iota
	envSet
	envUnset
)

// EnvFlag caches whether an environment variable is set to a non-empty
// value. The variable is read at most once until Reset is called.
type EnvFlag struct {
	name   string
	lookup func(string) (string, bool)
	state  atomic.Int32
}

// NewEnvFlag returns a flag for the environment variable name.
func NewEnvFlag(name string) *EnvFlag {
	return NewEnvFlagFunc(name, os.LookupEnv)
}

// NewEnvFlagFunc is like NewEnvFlag but reads the variable with lookup.
func NewEnvFlagFunc(name string, lookup func(string) (string, bool)) *EnvFlag {
	return &EnvFlag{name: name, lookup: lookup}
}

// NoColor returns a flag for NO_COLOR.
func NoColor() *EnvFlag {
	return NewEnvFlag(NoColorEnv)
}

// Name returns the environment variable name.
func (e *EnvFlag) Name() string {
	return e.name
}

// IsSet reports whether the variable is set to a non-empty value.
func (e *EnvFlag) IsSet() bool {
	state := e.state.Load()
	if state == envUnknown {
		state = envUnset
		if v, ok := e.lookup(e.name); ok && v != "" {
			state = envSet
		}
		e.state.CompareAndSwap(envUnknown, state)
	}
	return state == envSet
}

// Reset discards the cached value so the next IsSet reads the environment
// again. Only tests should need this.
func (e *EnvFlag) Reset() {
	e.state.Store(envUnknown)
}
