// Package json decodes JSON parameter values. Text that looks like a JSON
// array or object (or is blank) is decoded directly; anything else names a
// resource whose text is loaded and decoded.
package json
