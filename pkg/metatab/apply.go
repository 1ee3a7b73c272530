// Package metatab maps rows of a tabular file to objects in a hierarchical
// store and attaches attribute/value metadata derived from the other
// columns, driven by a captured configuration document.
package metatab

import (
	"context"
	"log/slog"

	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/engine"
	"github.com/rdmtools/metatab/pkg/metatab/models"
	"github.com/rdmtools/metatab/pkg/metatab/source"
	"github.com/rdmtools/metatab/pkg/metatab/store"
)

// Options configures an Apply run.
type Options struct {
	// Separator is the field separator for .csv inputs. Zero means comma.
	Separator rune
	// Writer receives the metadata attachments. Nil selects a dry run: the
	// intended writes are recorded on the report instead of applied.
	Writer engine.Writer
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Apply parses the tabular file at dataPath and runs the engine over it
// under the given configuration.
func Apply(ctx context.Context, cfg *config.Config, dataPath string, opts Options) (*models.RunReport, error) {
	ds, err := source.Load(dataPath, source.Options{Separator: opts.Separator})
	if err != nil {
		return nil, err
	}

	writer := opts.Writer
	var recorder *store.DryRun
	if writer == nil {
		recorder = store.NewDryRun()
		writer = recorder
	}

	report, err := engine.NewRunner(cfg, writer, opts.Logger).Run(ctx, ds)
	if err != nil {
		return report, err
	}
	if recorder != nil {
		report.DryRun = true
		report.Writes = recorder.Writes()
	}
	return report, nil
}
