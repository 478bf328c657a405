// Package engine implements the validation engine: loading tables,
// building the cross-table index database and running the schema,
// referential and duplicate checks against it.
package engine

import (
	"encoding/csv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/BartekS5/dbcheck/pkg/models"
)

// listSeparator splits a list-valued cell into its elements.
const listSeparator = ";"

// Load turns raw table text into a Table. Format checks run first and
// fail the whole run on the first violation; field parsing itself is
// delegated to encoding/csv.
func Load(spec models.TableSpec, raw string) (models.Table, error) {
	if err := checkFormat(spec.Name, raw); err != nil {
		return models.Table{}, err
	}

	reader := csv.NewReader(strings.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		return models.Table{}, errors.Wrapf(ErrParse, "%s: %v", spec.Name, err)
	}
	if len(records) == 0 {
		return models.Table{}, errors.Wrapf(ErrFormat, "%s: missing header row", spec.Name)
	}

	header := records[0]
	listCols := spec.ListColumns()
	rows := make([]models.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		fields := make(map[string]models.Value, len(header))
		for j, col := range header {
			if listCols[col] {
				fields[col] = models.ListValue(splitList(rec[j]))
			} else {
				fields[col] = models.ScalarValue(rec[j])
			}
		}
		rows = append(rows, models.Row{Fields: fields, Position: i})
	}

	return models.Table{Name: spec.Name, Columns: header, Rows: rows}, nil
}

// checkFormat enforces the file-level contract: CRLF line endings, no
// blank lines at the end of the file, and a uniform column count. All
// violations are fatal.
func checkFormat(name, raw string) error {
	if raw == "" {
		return errors.Wrapf(ErrFormat, "%s: file is empty", name)
	}
	if !strings.HasSuffix(raw, "\r\n") {
		return errors.Wrapf(ErrFormat, "%s: file must use CRLF line endings", name)
	}
	body := strings.TrimSuffix(raw, "\r\n")
	if body == "" || strings.TrimRight(body, " \t\r\n") != body {
		return errors.Wrapf(ErrFormat, "%s: empty lines at the end of file not allowed", name)
	}

	lines := strings.Split(body, "\r\n")
	for i, line := range lines {
		if strings.ContainsAny(line, "\r\n") {
			return errors.Wrapf(ErrFormat, "%s: line %d must end with CRLF", name, i+1)
		}
	}

	want := countColumns(lines[0])
	for i, line := range lines[1:] {
		if got := countColumns(line); got != want {
			return errors.Wrapf(ErrFormat, "%s: line %d has %d columns, expected %d", name, i+2, got, want)
		}
	}
	return nil
}

// countColumns counts comma-separated columns, ignoring commas inside
// a pair of double quotes.
func countColumns(line string) int {
	n, quoted := 1, false
	for _, r := range line {
		switch r {
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				n++
			}
		}
	}
	return n
}

func splitList(cell string) []string {
	if cell == "" {
		return nil
	}
	return strings.Split(cell, listSeparator)
}
