// Package intake orchestrates the form submission pipeline: an untrusted
// JSON payload goes through abuse guarding, raw required-field prechecking,
// optional normalization, strict schema validation and sanitization, and is
// then handed to a Writer for persistence. Each stage may short-circuit with
// a terminal Result.
package intake
