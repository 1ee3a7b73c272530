package engine

import (
	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// ProcessRow resolves one row to its terminal outcome. A resolution failure
// short-circuits: no metadata extraction is attempted. A row that resolves
// but carries no attachable metadata is skipped, not failed. The function is
// pure with respect to the external store.
func ProcessRow(row models.Row, columns []string, cfg *config.Config) models.RowOutcome {
	target, err := ResolveIdentifier(row, cfg)
	if err != nil {
		return models.FailedOutcome(failureReason(err))
	}

	selected := SelectColumns(columns, cfg)
	metadata := ExtractMetadata(row, selected, cfg)
	if metadata.Len() == 0 {
		return models.SkippedOutcome(models.ReasonNoMetadata)
	}
	return models.ResolvedOutcome(target, metadata)
}
