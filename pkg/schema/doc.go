// Package schema provides strict, declarative validation of canonical form
// payloads. A Schema lists field rules in declaration order; Validate
// reports every issue it finds in that order and produces a typed canonical
// payload with stable shape, suitable for persistence and diffing.
package schema
