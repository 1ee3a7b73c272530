// Package store provides writer capabilities for attaching metadata to
// objects: a dry-run recorder and an S3 object-tagging writer. Every writer
// satisfies engine.Writer; the engine itself never knows which one it got.
package store

import (
	"context"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// DryRun records every intended write in order instead of applying it,
// letting operators review a diffable plan before committing real writes.
type DryRun struct {
	writes []models.PlannedWrite
}

// NewDryRun returns an empty recorder.
func NewDryRun() *DryRun {
	return &DryRun{}
}

// Apply records the write and always succeeds.
func (d *DryRun) Apply(_ context.Context, path string, metadata *models.MetadataSet) error {
	d.writes = append(d.writes, models.PlannedWrite{Path: path, Metadata: metadata.Pairs()})
	return nil
}

// Writes returns the recorded writes in application order.
func (d *DryRun) Writes() []models.PlannedWrite {
	return d.writes
}
