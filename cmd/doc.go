// Package cmd implements the sub-commands of the paramconv command-line
// interface. Each file registers a single sub-command (convert, table,
// converters). Plumbing shared between commands, such as configuration
// loading and registry initialisation, lives in shared.go.
package cmd
