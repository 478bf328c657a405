package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/BartekS5/dbcheck/internal/config"
	"github.com/BartekS5/dbcheck/internal/engine"
	"github.com/BartekS5/dbcheck/pkg/logger"
	"github.com/BartekS5/dbcheck/pkg/report"
)

func runValidate(opts *ValidateOptions, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if opts.DataDir != "" {
		dataDir = opts.DataDir
	}

	if cfg.LogFile != "" {
		if err := logger.InitLogger(cfg.LogFile); err != nil {
			return fmt.Errorf("failed to open log file '%s': %w", cfg.LogFile, err)
		}
		defer logger.Close()
	}

	runner := &engine.Runner{DataDir: dataDir, Read: readFile}
	rep, err := runner.Run(args)
	if err != nil {
		return err
	}

	report.Print(rep)

	if !rep.OK() {
		return errors.Newf("validation failed with %d error(s)", rep.Total)
	}
	return nil
}

// readFile is the raw file reader injected into the engine.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read table file '%s': %w", path, err)
	}
	return string(data), nil
}
