package engine

import (
	"fmt"

	"github.com/BartekS5/dbcheck/pkg/models"
)

// FindDuplicates reports every row beyond the first that shares a
// (normalized) key with an earlier row, at the duplicate's own line.
// Generic over any table/key-field pair; enabled per table spec.
func FindDuplicates(spec models.TableSpec, table models.Table) []models.ValidationError {
	seen := make(map[string]bool, len(table.Rows))
	var errs []models.ValidationError
	for _, row := range table.Rows {
		key := row.Key(spec)
		if key == "" {
			// Missing keys are a schema error, not a collision.
			continue
		}
		if seen[key] {
			errs = append(errs, models.ValidationError{
				Line:    row.Line(),
				Message: fmt.Sprintf("duplicate %s %q", spec.KeyField, key),
			})
			continue
		}
		seen[key] = true
	}
	return errs
}
