package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// Writer is the capability through which metadata reaches the object store.
// Each call is all-or-nothing for one target. A dry run substitutes a
// recorder here; the runner itself carries no dry-run conditionals.
type Writer interface {
	Apply(ctx context.Context, path string, metadata *models.MetadataSet) error
}

// Runner iterates a dataset under one configuration, delegating each row to
// ProcessRow and each resolved row to the writer.
type Runner struct {
	cfg    *config.Config
	writer Writer
	log    *slog.Logger
}

// NewRunner returns a runner for the given configuration and writer.
// A nil logger falls back to slog.Default.
func NewRunner(cfg *config.Config, writer Writer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{cfg: cfg, writer: writer, log: log}
}

// Run processes every configured sheet in order and rows within each sheet
// in file order, so reruns over an unmodified file produce outcomes in the
// same order. Row-level problems are tallied and never abort the run;
// configuration-level problems abort before any row is touched. The context
// is checked between rows, letting a caller halt a long run early.
func (r *Runner) Run(ctx context.Context, ds *models.Dataset) (*models.RunReport, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	sheets, err := r.selectSheets(ds)
	if err != nil {
		return nil, err
	}

	report := &models.RunReport{
		RunID:      uuid.NewString(),
		SourceFile: ds.FileName,
	}
	log := r.log.With("run_id", report.RunID, "source", ds.FileName)

	for _, sheet := range sheets {
		r.warnUnknownColumns(log, sheet)
		for i := range sheet.Rows {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			rowNum := sheet.RowNumber(i)
			outcome := ProcessRow(sheet.Rows[i], sheet.Columns, r.cfg)
			if outcome.Kind == models.OutcomeResolved {
				if werr := r.writer.Apply(ctx, outcome.Path, outcome.Metadata); werr != nil {
					werr = &WriteError{Path: outcome.Path, Err: werr}
					log.Warn("write failed", "sheet", sheet.Name, "row", rowNum, "error", werr)
					outcome = models.FailedOutcome(models.ReasonWriteError)
				}
			}
			tally(report, sheet.Name, rowNum, outcome)
		}
	}
	log.Info("run finished", "total", report.Total, "resolved", report.Resolved,
		"skipped", report.Skipped, "failed", report.Failed)
	return report, nil
}

// selectSheets returns the sheets to process in configured order. A sheet
// named in the configuration but absent from the dataset, or one missing an
// identifier column, is a configuration error: nothing useful can happen
// for any of its rows.
func (r *Runner) selectSheets(ds *models.Dataset) ([]*models.Sheet, error) {
	names := r.cfg.Sheets
	if len(names) == 0 {
		names = ds.SheetNames()
	}
	sheets := make([]*models.Sheet, 0, len(names))
	for _, name := range names {
		sheet := ds.Sheet(name)
		if sheet == nil {
			return nil, &config.ConfigurationError{Field: "sheets", Reason: "sheet " + name + " not present in the dataset"}
		}
		for _, col := range r.cfg.IdentifierColumns {
			if !sheet.HasColumn(col) {
				return nil, &config.ConfigurationError{
					Field:  "identifier_columns",
					Reason: "column " + col + " not present in sheet " + name,
				}
			}
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

// warnUnknownColumns logs configured filter columns that a sheet does not
// carry. They are ignored, not errors, so heterogeneous sheets keep working.
func (r *Runner) warnUnknownColumns(log *slog.Logger, sheet *models.Sheet) {
	for _, col := range r.cfg.Columns {
		if !sheet.HasColumn(col) {
			log.Debug("configured column not in sheet", "sheet", sheet.Name, "column", col)
		}
	}
}

func tally(report *models.RunReport, sheet string, row int, outcome models.RowOutcome) {
	report.Total++
	switch outcome.Kind {
	case models.OutcomeResolved:
		report.Resolved++
	case models.OutcomeSkipped:
		report.Skipped++
		report.Issues = append(report.Issues, models.RowIssue{Sheet: sheet, Row: row, Kind: outcome.Kind, Reason: outcome.Reason})
	case models.OutcomeFailed:
		report.Failed++
		report.Issues = append(report.Issues, models.RowIssue{Sheet: sheet, Row: row, Kind: outcome.Kind, Reason: outcome.Reason})
	}
}
