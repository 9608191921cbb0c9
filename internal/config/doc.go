// Package config resolves the tool's configuration from three layers:
// built-in defaults, an optional sprite-tools.yaml defaults file, and
// command-line flags, in rising precedence.
//
// The result is a single immutable Options value constructed once per
// invocation and passed by value into the pipeline. No package-level
// mutable state is involved.
package config
