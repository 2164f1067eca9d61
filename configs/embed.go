// Package configs bundles the environment resources shipped with the tests.
package configs

import "embed"

// FS holds one "<env>.properties" file per environment.
//
//go:embed *.properties
var FS embed.FS
