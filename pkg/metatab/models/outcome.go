package models

// OutcomeKind classifies the terminal state of one processed row.
type OutcomeKind string

const (
	// OutcomeResolved means the row resolved to a target path with metadata.
	OutcomeResolved OutcomeKind = "resolved"
	// OutcomeSkipped means the row resolved but carried nothing to attach.
	OutcomeSkipped OutcomeKind = "skipped"
	// OutcomeFailed means the row could not be resolved or written.
	OutcomeFailed OutcomeKind = "failed"
)

// Reason strings recorded on skipped and failed outcomes.
const (
	ReasonEmptyIdentifier   = "empty_identifier"
	ReasonInvalidIdentifier = "invalid_identifier"
	ReasonWriteError        = "write_error"
	ReasonNoMetadata        = "no_metadata"
)

// RowOutcome is the tagged result of processing one row. Path and Metadata
// are meaningful only for OutcomeResolved; Reason only for the other kinds.
type RowOutcome struct {
	Kind     OutcomeKind
	Path     string
	Metadata *MetadataSet
	Reason   string
}

// ResolvedOutcome returns a resolved outcome.
func ResolvedOutcome(path string, metadata *MetadataSet) RowOutcome {
	return RowOutcome{Kind: OutcomeResolved, Path: path, Metadata: metadata}
}

// SkippedOutcome returns a skipped outcome.
func SkippedOutcome(reason string) RowOutcome {
	return RowOutcome{Kind: OutcomeSkipped, Reason: reason}
}

// FailedOutcome returns a failed outcome.
func FailedOutcome(reason string) RowOutcome {
	return RowOutcome{Kind: OutcomeFailed, Reason: reason}
}
