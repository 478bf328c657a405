package engine

import "github.com/BartekS5/dbcheck/pkg/models"

// BuildIndex maps each row's key to the row itself. Colliding keys
// resolve last-row-wins; the collision is reported by the duplicate
// detector, never here, so the reported line numbers belong to the
// actual duplicate occurrences.
func BuildIndex(spec models.TableSpec, table models.Table) models.Index {
	ix := make(models.Index, len(table.Rows))
	for _, row := range table.Rows {
		ix[row.Key(spec)] = row
	}
	return ix
}
