// Package instance supplies the owning instances of method-returning
// converters from a github.com/samber/do injector. Instances are registered
// by name and built lazily on first use.
package instance
