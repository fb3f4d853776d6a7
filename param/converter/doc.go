// Package converter provides the typed value converters used by the
// parameter registry: scalar converters (numbers, strings, booleans, dates,
// enumerations), the list converter and the composite converters that
// delegate to table, JSON and instance collaborators.
//
// Every converter is immutable after construction and safe for concurrent
// use. Failures are reported as *ConversionError, which matches
// ErrConversionFailed through errors.Is.
package converter
