// Package validation checks generated artifacts against smoothness rules and
// published benchmarks and collects the findings into a report.
package validation

import "fmt"

// Level names the check family that produced a result.
type Level string

const (
	LevelSmoothness Level = "smoothness"
	LevelCosts      Level = "system_costs"
	LevelUseful     Level = "useful_energy"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single finding.
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Path        string   `json:"path,omitempty"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report is the complete validation output.
type Report struct {
	Title    string   `json:"title"`
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport(title string) *Report {
	r := &Report{
		Title:    title,
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}

// within reports lo <= v <= hi.
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// check records a passing range check as info and a failing one through fail.
func (r *Report) check(fail func(Result), level Level, path, msg string, v, lo, hi float64) {
	res := Result{
		Level:       level,
		Path:        path,
		ActualValue: v,
		Expected:    fmt.Sprintf("%g to %g", lo, hi),
	}
	if within(v, lo, hi) {
		res.Message = msg + ": within range"
		r.AddInfo(res)
		return
	}
	res.Message = msg + ": outside range"
	fail(res)
}
