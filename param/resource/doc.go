// Package resource loads external parameter text (tables, JSON documents)
// through github.com/viant/afs, so identifiers may be local paths or any
// storage URL afs understands.
package resource
