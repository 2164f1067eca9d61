package config

import (
	"fmt"
	"sort"
	"strings"
)

// Overrides is a read-only fallback store consulted when the environment
// resource has no value for a field. The zero value is empty.
type Overrides struct {
	values map[string]string
}

// NewOverrides snapshots values. Later changes to the map are not observed.
func NewOverrides(values map[string]string) Overrides {
	o := Overrides{values: make(map[string]string, len(values))}
	for k, v := range values {
		o.values[k] = v
	}
	return o
}

// ParseOverrides builds Overrides from "name=value" pairs. A later pair for
// the same name wins.
func ParseOverrides(pairs []string) (Overrides, error) {
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, err := splitPair(p)
		if err != nil {
			return Overrides{}, err
		}
		values[name] = value
	}
	return Overrides{values: values}, nil
}

// Lookup returns the override for name.
func (o Overrides) Lookup(name string) (string, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Len returns the number of overridden fields.
func (o Overrides) Len() int {
	return len(o.values)
}

func splitPair(p string) (string, string, error) {
	name, value, ok := strings.Cut(p, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("invalid override %q, want name=value", p)
	}
	return name, value, nil
}

// OverrideFlag collects repeated "-D name=value" command-line flags.
// It satisfies both flag.Value and pflag.Value.
type OverrideFlag struct {
	values map[string]string
}

func (f *OverrideFlag) String() string {
	if f == nil || len(f.values) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(f.values))
	for k, v := range f.values {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (f *OverrideFlag) Set(s string) error {
	name, value, err := splitPair(s)
	if err != nil {
		return err
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[name] = value
	return nil
}

func (f *OverrideFlag) Type() string { return "name=value" }

// Overrides returns a snapshot of the collected flags.
func (f *OverrideFlag) Overrides() Overrides {
	return NewOverrides(f.values)
}
