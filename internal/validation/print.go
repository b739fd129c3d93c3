package validation

import (
	"fmt"
	"io"
)

// Print writes a human-readable report.
func Print(w io.Writer, r *Report) {
	fmt.Fprintf(w, "=== %s ===\n", r.Title)
	printResults(w, "ERRORS", r.Errors)
	printResults(w, "WARNINGS", r.Warnings)
	printResults(w, "INFO", r.Info)

	status := "PASSED"
	if !r.Valid {
		status = "FAILED"
	}
	fmt.Fprintf(w, "%s: %s\n\n", status, r.Summary)
}

func printResults(w io.Writer, heading string, results []Result) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "%s (%d):\n", heading, len(results))
	for _, res := range results {
		fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
		if res.Path != "" && res.ActualValue != nil {
			fmt.Fprintf(w, "    -> %s = %v\n", res.Path, res.ActualValue)
		}
		if res.Expected != "" {
			fmt.Fprintf(w, "    expected: %s\n", res.Expected)
		}
		for _, s := range res.Suggestions {
			fmt.Fprintf(w, "    * %s\n", s)
		}
	}
	fmt.Fprintln(w)
}
