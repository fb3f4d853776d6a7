// Package conv turns converted parameter values into plain Go values that
// encode cleanly as JSON: collections become slices, atomics and enumeration
// constants become their values, tables become rows.
package conv
