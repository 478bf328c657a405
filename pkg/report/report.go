// Package report renders validation results to the console.
package report

import (
	"github.com/pterm/pterm"

	"github.com/BartekS5/dbcheck/internal/engine"
)

// Print writes each file's error block and the final summary. Files
// without errors print nothing; the summary always prints.
func Print(rep engine.Report) {
	for _, f := range rep.Files {
		if len(f.Errors) == 0 {
			continue
		}
		pterm.DefaultSection.Println(f.File)
		for _, e := range f.Errors {
			pterm.Printf("%-6d %s\n", e.Line, e.Message)
		}
	}

	if rep.Total > 0 {
		pterm.Error.Printf("%d error(s)\n", rep.Total)
	} else {
		pterm.Success.Println("No errors found")
	}
}
