// Package config defines the YAML/JSON configuration model of a parameter
// registry together with helpers to load it from any afs supported URL,
// fill defaults and validate it.
package config
