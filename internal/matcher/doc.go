// Package matcher implements the name pattern matching used by the CLI to
// filter converters.
package matcher
