package engine

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/BartekS5/dbcheck/pkg/logger"
	"github.com/BartekS5/dbcheck/pkg/models"
)

// ReadFunc returns the raw text of a table file. Reading from disk is
// an external service; the CLI injects an os.ReadFile wrapper and
// tests inject in-memory fixtures.
type ReadFunc func(path string) (string, error)

// FileReport holds one validated file's accumulated errors, in
// deterministic order: duplicates, then referential errors per row,
// then schema errors per row.
type FileReport struct {
	File   string
	Errors []models.ValidationError
}

// Report aggregates the per-file reports and the global error count
// for the run.
type Report struct {
	Files []FileReport
	Total int
}

// OK reports run success: zero accumulated errors across all files.
func (r Report) OK() bool {
	return r.Total == 0
}

// Runner executes a validation run over the fixed set of known tables.
type Runner struct {
	DataDir string
	Read    ReadFunc
}

// tableFile pairs a table spec with the path its text is read from.
type tableFile struct {
	spec models.TableSpec
	path string
}

// Run validates the requested table files. With no paths given, every
// known table is validated from the data directory.
//
// The run is strictly two-phase: all tables are loaded and indexed
// before any validation starts, because validating one table may
// dereference any other table's index. A format or parse failure in
// any file aborts the run before Phase 2.
func (r *Runner) Run(paths []string) (Report, error) {
	requested, err := r.resolve(paths)
	if err != nil {
		return Report{}, err
	}

	// Phase 1: load and index every known table. Requested tables are
	// read from their given paths, the rest from the data directory.
	located := make(map[string]string, len(models.TableNames))
	for _, name := range models.TableNames {
		located[name] = filepath.Join(r.DataDir, name+".csv")
	}
	for _, tf := range requested {
		located[tf.spec.Name] = tf.path
	}

	tables := make(map[string]models.Table, len(models.TableNames))
	db := make(models.Database, len(models.TableNames))
	for _, name := range models.TableNames {
		spec := models.Tables[name]
		raw, err := r.Read(located[name])
		if err != nil {
			return Report{}, err
		}
		table, err := Load(spec, raw)
		if err != nil {
			return Report{}, err
		}
		tables[name] = table
		db[name] = BuildIndex(spec, table)
		logger.Infof("Loaded table %s: %d rows", name, len(table.Rows))
	}

	// Phase 2: read-only fan-out over the fully built database.
	var report Report
	for _, tf := range requested {
		table := tables[tf.spec.Name]
		report.Files = append(report.Files, FileReport{
			File:   tf.path,
			Errors: validateTable(tf.spec, table, db),
		})
	}
	for _, f := range report.Files {
		report.Total += len(f.Errors)
	}
	logger.Infof("Validation finished: %d error(s) across %d file(s)", report.Total, len(report.Files))
	return report, nil
}

// validateTable concatenates the three validators' output in the
// aggregator's deterministic order.
func validateTable(spec models.TableSpec, table models.Table, db models.Database) []models.ValidationError {
	var errs []models.ValidationError
	if spec.CheckDuplicates {
		errs = append(errs, FindDuplicates(spec, table)...)
	}
	for _, row := range table.Rows {
		errs = append(errs, ValidateRefs(spec, row, db)...)
	}
	for _, row := range table.Rows {
		errs = append(errs, ValidateSchema(spec, row)...)
	}
	return errs
}

// resolve maps the requested paths to table specs. An unrecognized
// table name is a fatal configuration error. With no paths, the full
// fixed list of known tables is requested in order.
func (r *Runner) resolve(paths []string) ([]tableFile, error) {
	if len(paths) == 0 {
		files := make([]tableFile, 0, len(models.TableNames))
		for _, name := range models.TableNames {
			files = append(files, tableFile{
				spec: models.Tables[name],
				path: filepath.Join(r.DataDir, name+".csv"),
			})
		}
		return files, nil
	}

	files := make([]tableFile, 0, len(paths))
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		spec, ok := models.Tables[name]
		if !ok {
			return nil, errors.Wrapf(ErrMissingSchema, "%q", name)
		}
		files = append(files, tableFile{spec: spec, path: path})
	}
	return files, nil
}
