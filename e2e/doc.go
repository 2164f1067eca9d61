//go:build e2e

// Package e2e holds the browser-driven UI scenarios.
//
// These tests are isolated from the standard test suite via build tags.
// They require a Chrome browser (auto-downloaded by Rod if not present).
//
// Against the public demo site (environment "default"):
//
//	go test -tags=e2e ./e2e/...
//
// Against a local replica started by the test binary:
//
//	go test -tags=e2e ./e2e/... -args -env local
//
// Fields missing from the environment resource can be supplied with -D,
// here pointing at a replica already running from cmd/demo-site:
//
//	go test -tags=e2e ./e2e/... -args -env local -D baseUrl=http://localhost:8080/
//
// Each scenario launches its own browser and closes it afterwards, whatever
// the outcome.
package e2e
