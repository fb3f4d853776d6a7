// Package types defines the descriptors that tell the converters what to
// produce. A descriptor is a scalar id, a parameterized id with one element
// type, or an enumeration with its constants. Descriptors are explicit and
// immutable: converters never inspect live Go values to discover a shape.
package types
