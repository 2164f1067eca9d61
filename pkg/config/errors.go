package config

import "fmt"

// LoadError reports that the resource for an environment could not be
// located or parsed.
type LoadError struct {
	Env      string
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot open %s for environment %q: %v", e.Resource, e.Env, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MissingError reports a field that neither the environment resource nor the
// overrides provide.
type MissingError struct {
	Env   string
	Field string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s is not found in environment %q and not set by overrides", e.Field, e.Env)
}
