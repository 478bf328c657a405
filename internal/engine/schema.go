package engine

import (
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/BartekS5/dbcheck/pkg/models"
)

const dateLayout = "2006-01-02"

// ValidateSchema checks every field of the row against the table's
// field specs. All fields are checked; a row can yield several errors.
func ValidateSchema(spec models.TableSpec, row models.Row) []models.ValidationError {
	var errs []models.ValidationError
	for _, f := range spec.Fields {
		v := row.Get(f.Name)
		if v.Empty() {
			if f.Required {
				errs = append(errs, models.ValidationError{
					Line:    row.Line(),
					Message: fmt.Sprintf("missing required %s", f.Name),
				})
			}
			continue
		}
		if f.List {
			for _, item := range v.List {
				if !validCell(item, f) {
					errs = append(errs, models.ValidationError{
						Line:    row.Line(),
						Message: fmt.Sprintf("invalid %s %q", f.Name, item),
					})
				}
			}
			continue
		}
		if !validCell(v.Scalar, f) {
			errs = append(errs, models.ValidationError{
				Line:    row.Line(),
				Message: fmt.Sprintf("invalid %s %q", f.Name, v.Scalar),
			})
		}
	}
	return errs
}

// validCell checks a single non-empty cell value against its spec.
func validCell(value string, f models.FieldSpec) bool {
	switch f.Type {
	case models.FieldPattern:
		return f.Pattern.MatchString(value)
	case models.FieldURL:
		u, err := url.Parse(value)
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	case models.FieldDate:
		_, err := time.Parse(dateLayout, value)
		return err == nil
	case models.FieldEnum:
		return slices.Contains(f.Enum, value)
	default:
		return true
	}
}
