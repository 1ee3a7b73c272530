package engine

import (
	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// ExtractMetadata turns the selected columns of a row into attribute/value
// pairs. Empty cells produce no pair: an empty cell means "no metadata for
// this attribute on this row", not "set to empty string". Values are
// rendered canonically so reruns yield byte-identical metadata. When two
// columns rename to the same attribute, the later column in row order wins.
func ExtractMetadata(row models.Row, selected []string, cfg *config.Config) *models.MetadataSet {
	set := models.NewMetadataSet()
	for _, col := range selected {
		cell := row.Cell(col)
		if cell.IsEmpty() {
			continue
		}
		set.Set(cfg.AttributeName(col), cell.Canonical())
	}
	return set
}
