// Package gointake exposes the intake pipeline's primary types from the
// module root so callers embedding the pipeline do not need to import the
// internal package layout.
package gointake

import (
	"github.com/rmgdri/go-intake/pkg/catalog"
	"github.com/rmgdri/go-intake/pkg/intake"
	"github.com/rmgdri/go-intake/pkg/schema"
)

// Form describes one intake form: catalog, schema, normalizer, and abuse
// guard settings.
type Form = intake.Form

// Submission is the persisted unit an accepted form submission produces.
type Submission = intake.Submission

// Receipt identifies a stored submission and its audit event.
type Receipt = intake.Receipt

// Writer persists accepted submissions.
type Writer = intake.Writer

// Result is the outcome of running the pipeline on one request.
type Result = intake.Result

// Catalog is the raw-side field list driving UI rendering and the
// required-field precheck.
type Catalog = catalog.Catalog

// Field is one catalog entry.
type Field = catalog.Field

// Schema validates canonical payloads.
type Schema = schema.Schema

// Issue is one validation failure, addressed by field path.
type Issue = schema.Issue

// Pipeline runs the intake stages for one form.
type Pipeline = intake.Pipeline

// NewPipeline constructs a pipeline for form with the given options.
func NewPipeline(form Form, options ...intake.Option) *Pipeline {
	return intake.New(form, options...)
}
