// Package guard implements the pre-validation abuse checks for public form
// endpoints: per-client fixed-window rate limiting and honeypot inspection.
// Both are best-effort, in-process deterrents; neither performs I/O.
package guard
