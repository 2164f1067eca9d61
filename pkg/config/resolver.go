package config

import (
	"errors"
	"os"
	"sort"

	"k8s.io/klog/v2"

	"github.com/thesyncim/webtests/configs"
)

// DefaultEnv is the environment used when none is given.
const DefaultEnv = "default"

// EnvVar selects the environment for harnesses that do not take flags.
const EnvVar = "UITEST_ENV"

// Well-known fields.
const (
	FieldBaseURL  = "baseUrl"
	FieldUsername = "username"
	FieldPassword = "password"
)

// EnvFromEnviron returns the environment named by UITEST_ENV, or DefaultEnv.
func EnvFromEnviron() string {
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	return DefaultEnv
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithLoader sets where resources are read from.
// Default: the embedded bundle in package configs.
func WithLoader(l Loader) Option {
	return func(r *Resolver) error {
		if l == nil {
			return errors.New("loader must not be nil")
		}
		r.loader = l
		return nil
	}
}

// WithFormat sets the resource format. Default: PropertiesFormat.
func WithFormat(f Format) Option {
	return func(r *Resolver) error {
		if f == nil {
			return errors.New("format must not be nil")
		}
		r.format = f
		return nil
	}
}

// WithOverrides sets the fallback store.
func WithOverrides(o Overrides) Option {
	return func(r *Resolver) error {
		r.overrides = o
		return nil
	}
}

// WithLogger sets the logger receiving resolution records.
// Default: klog.Background().
func WithLogger(l klog.Logger) Option {
	return func(r *Resolver) error {
		r.logger = l
		return nil
	}
}

// WithSensitive replaces the set of fields logged as [REDACTED].
// Default: DefaultSensitive.
func WithSensitive(fields ...string) Option {
	return func(r *Resolver) error {
		r.sensitive = make(map[string]bool, len(fields))
		for _, f := range fields {
			r.sensitive[f] = true
		}
		return nil
	}
}

// Resolver answers field lookups for one environment.
// It is immutable after NewResolver returns and safe for concurrent reads.
type Resolver struct {
	env       string
	loader    Loader
	format    Format
	overrides Overrides
	logger    klog.Logger
	sensitive map[string]bool
	fields    map[string]string
}

// NewResolver loads the resource for env. An empty env means DefaultEnv.
// A resource that cannot be read or parsed yields a *LoadError.
func NewResolver(env string, opts ...Option) (*Resolver, error) {
	if env == "" {
		env = DefaultEnv
	}
	r := &Resolver{
		env:    env,
		loader: FSLoader{FS: configs.FS},
		format: PropertiesFormat{},
		logger: klog.Background(),
	}
	_ = WithSensitive(DefaultSensitive...)(r)

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	name := env + "." + r.format.Ext()
	data, err := r.loader.Load(name)
	if err != nil {
		return nil, &LoadError{Env: env, Resource: name, Err: err}
	}
	fields, err := r.format.Decode(data)
	if err != nil {
		return nil, &LoadError{Env: env, Resource: name, Err: err}
	}
	r.fields = fields
	return r, nil
}

// Env returns the environment name.
func (r *Resolver) Env() string {
	return r.env
}

// Fields returns the sorted names defined by the environment resource.
func (r *Resolver) Fields() []string {
	names := make([]string, 0, len(r.fields))
	for k := range r.fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Field returns the effective value of name. The resource value wins when it
// is non-empty; otherwise a non-empty override is used. An override that is
// present but empty (-D name=) counts as absent, so it also yields a
// *MissingError rather than "".
func (r *Resolver) Field(name string) (string, error) {
	if name == "" {
		return "", errors.New("field name must not be empty")
	}

	value, source := r.fields[name], "resource"
	if value == "" {
		if v, ok := r.overrides.Lookup(name); ok {
			value, source = v, "override"
		}
	}
	if value == "" {
		return "", &MissingError{Env: r.env, Field: name}
	}

	r.logger.Info("Resolved config field", "env", r.env, "field", name, "value", r.display(name, value), "source", source)
	return value, nil
}

// BaseURL returns the baseUrl field.
func (r *Resolver) BaseURL() (string, error) {
	return r.Field(FieldBaseURL)
}

// Username returns the username field.
func (r *Resolver) Username() (string, error) {
	return r.Field(FieldUsername)
}

// Password returns the password field.
func (r *Resolver) Password() (string, error) {
	return r.Field(FieldPassword)
}
