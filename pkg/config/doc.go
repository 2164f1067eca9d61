// Package config resolves named test configuration values for an environment.
//
// A Resolver loads one key-value resource named "<env>.<ext>" through a
// Loader and answers Field lookups from it. When the resource has no value
// (or an empty one) for a field, the Overrides passed at construction are
// consulted. A field missing from both is a *MissingError.
//
//	r, err := config.NewResolver("default",
//	    config.WithLoader(config.FSLoader{FS: configs.FS}),
//	    config.WithOverrides(overrides),
//	)
//	if err != nil {
//	    return err
//	}
//	baseURL, err := r.BaseURL()
//
// Resources are parsed once, at construction. Resolvers are read-only
// afterwards, so repeated lookups of the same field return the same value.
package config
