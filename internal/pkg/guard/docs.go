// Package guard provides the constructor guard embedded by domain objects,
// commands and queries to reject zero-value instances.
package guard
