// Package upload provides the photo upload endpoints for the owner
// surrender form: a presign route that hands the browser a short-lived
// direct-to-bucket PUT URL, and a direct route that accepts the file body
// server-side for clients that cannot PUT cross-origin.
//
// Both routes share one rate-limit window, an image content-type allowlist,
// and a 10 MiB file ceiling. When object storage credentials are absent the
// routes answer 503 with a human-readable message instead of failing opaquely.
package upload
