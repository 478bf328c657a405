package engine

import (
	"fmt"
	"strings"

	"github.com/BartekS5/dbcheck/pkg/models"
)

// ValidateRefs checks the row's reference rules against the database.
// All rules run; nothing short-circuits. Each failing reference yields
// one error naming the row's own key and the offending value.
func ValidateRefs(spec models.TableSpec, row models.Row, db models.Database) []models.ValidationError {
	var errs []models.ValidationError
	rowKey := row.Get(spec.KeyField).Scalar

	for _, rule := range spec.Refs {
		v := row.Get(rule.Field)
		if rule.Optional && v.Empty() {
			continue
		}

		var values []string
		if rule.List {
			values = v.List
		} else if v.Scalar != "" {
			// Presence of required scalars is the schema validator's
			// concern; references only check non-empty values.
			values = []string{v.Scalar}
		}

		for _, value := range values {
			target := rule.Target
			key := value
			if rule.Composite {
				typ, code, ok := strings.Cut(value, "/")
				if !ok {
					continue
				}
				// Only the r/c/s prefixes are dereferenced; any other
				// prefix passes. Documented policy, do not generalize.
				target, ok = models.BroadcastAreaTargets[typ]
				if !ok {
					continue
				}
				key = code
			}
			if !lookup(db, target, key) {
				errs = append(errs, models.ValidationError{
					Line:    row.Line(),
					Message: fmt.Sprintf("%q has the wrong %s %q", rowKey, rule.Noun, value),
				})
			}
		}
	}
	return errs
}

// lookup resolves a key against the target table's index, normalizing
// the key the same way the target's index builder did.
func lookup(db models.Database, target, key string) bool {
	if models.Tables[target].NormalizeKey {
		key = strings.ToLower(key)
	}
	return db[target].Has(key)
}
