// Package submit provides the public form submission endpoints: one POST
// handler per intake form, plus the shared type-discriminated endpoint at
// /api/intake/submit.
//
// Each handler runs the full intake pipeline: per-client rate limiting,
// honeypot screening, raw required-field checks, normalization, schema
// validation, sanitization, and persistence. Handlers only answer POST and
// return JSON bodies for every outcome, including errors.
package submit
