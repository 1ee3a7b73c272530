package models

// PlannedWrite is one metadata attachment that a dry run would have applied.
type PlannedWrite struct {
	Path     string `json:"path"`
	Metadata []AVU  `json:"metadata"`
}

// RowIssue records why a particular row was skipped or failed.
type RowIssue struct {
	// Sheet is the sheet the row came from.
	Sheet string `json:"sheet"`
	// Row is the file row number, counting the header as row 1.
	Row int `json:"row"`
	// Kind is the outcome kind ("skipped" or "failed").
	Kind OutcomeKind `json:"kind"`
	// Reason is one of the Reason* constants.
	Reason string `json:"reason"`
}

// RunReport aggregates the outcomes of one engine run. It is built
// incrementally by the runner and immutable once returned.
type RunReport struct {
	// RunID correlates log entries with this report.
	RunID string `json:"run_id"`
	// SourceFile is the tabular file the dataset was parsed from.
	SourceFile string `json:"source_file"`
	// Total is the number of rows seen.
	Total int `json:"total"`
	// Resolved, Skipped and Failed count rows per outcome kind.
	Resolved int `json:"resolved"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	// Issues lists every non-resolved row in processing order.
	Issues []RowIssue `json:"issues,omitempty"`
	// DryRun reports whether writes were recorded instead of applied.
	DryRun bool `json:"dry_run"`
	// Writes is the ordered list of attachments a dry run would have made.
	Writes []PlannedWrite `json:"writes,omitempty"`
}
