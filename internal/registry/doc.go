// Package registry maps external string identifiers to component factories. It
// stands in for loading classes by name: a configuration file names an identifier,
// the registry returns the factory that builds it.
package registry
