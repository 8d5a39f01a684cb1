package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/prilive-com/tgwire/codec"
)

// Report represents a suite run.
type Report struct {
	RunID    string       `wire:"run_id"`
	Suite    string       `wire:"suite"`
	Started  string       `wire:"started"`
	Duration string       `wire:"duration"`
	Success  bool         `wire:"success"`
	Cases    []CaseResult `wire:"cases"`
	Summary  Summary      `wire:"summary"`

	start time.Time
}

// Summary contains aggregate statistics.
type Summary struct {
	Total        int            `wire:"total"`
	Passed       int            `wire:"passed"`
	Failed       int            `wire:"failed"`
	VariantsSeen map[string]int `wire:"variants_seen"`
}

// NewReport creates a new report.
func NewReport(suite string) *Report {
	now := time.Now()
	return &Report{
		RunID:   now.Format("20060102-150405"),
		Suite:   suite,
		Started: now.Format(time.RFC3339),
		Cases:   make([]CaseResult, 0),
		start:   now,
	}
}

// Add appends a case result.
func (r *Report) Add(res CaseResult) {
	r.Cases = append(r.Cases, res)
}

// Finalize completes the report with summary statistics.
func (r *Report) Finalize() {
	r.Duration = time.Since(r.start).Round(time.Microsecond).String()
	r.Summary = Summary{VariantsSeen: make(map[string]int)}
	for _, c := range r.Cases {
		r.Summary.Total++
		if c.Passed {
			r.Summary.Passed++
		} else {
			r.Summary.Failed++
		}
		for _, v := range c.Variants {
			r.Summary.VariantsSeen[v]++
		}
	}
	r.Success = r.Summary.Failed == 0
}

// Save writes the report as JSON into dir and returns the file name.
func (r *Report) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	data, err := codec.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("report-%s-%s.json", r.Suite, r.RunID))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}

// Print writes one line per case followed by the summary.
func (r *Report) Print(w io.Writer) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	dim := color.New(color.Faint)

	bold.Fprintf(w, "Suite: %s\n\n", r.Suite)
	for _, c := range r.Cases {
		if c.Passed {
			green.Fprint(w, "  ✓ ")
			fmt.Fprint(w, c.Name)
			if len(c.Variants) == 1 {
				dim.Fprintf(w, " (%s)", c.Variants[0])
			}
			fmt.Fprintln(w)
			continue
		}
		red.Fprint(w, "  ✗ ")
		fmt.Fprintln(w, c.Name)
		dim.Fprintf(w, "      %s\n", c.Failure)
	}

	fmt.Fprintln(w)
	status := green.Sprint("PASSED")
	if !r.Success {
		status = red.Sprint("FAILED")
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Cases: %d/%d passed\n", r.Summary.Passed, r.Summary.Total)
	fmt.Fprintf(w, "Variants covered: %d\n", len(r.Summary.VariantsSeen))
	fmt.Fprintf(w, "Duration: %s\n", r.Duration)
}
