// Package runner executes named checks in order, isolating failures, and
// reports pass/fail counts in a form suitable for a process exit status.
package runner

import (
	"fmt"
	"io"
	"time"

	"tempconv/internal/logger"
	"tempconv/internal/models"
)

// Runner accumulates case outcomes. It is not safe for concurrent use.
type Runner struct {
	out    io.Writer
	errOut io.Writer
	log    *logger.Logger

	runID   string
	passed  int
	failed  int
	results []models.CaseResult
}

// New returns a runner that prints passes to out and failures to errOut.
func New(out, errOut io.Writer, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{out: out, errOut: errOut, log: log}
}

// WithRunID tags the summary and log lines with id.
func (r *Runner) WithRunID(id string) *Runner {
	r.runID = id
	return r
}

// Header prints the run banner.
func (r *Runner) Header(title string) {
	fmt.Fprintf(r.out, "🧪 Running %s...\n\n", title)
}

// Test runs fn as one case. A returned error or a panic marks the case
// failed; either way the runner is ready for the next case.
func (r *Runner) Test(description string, fn func() error) {
	start := time.Now()
	err := invoke(fn)

	res := models.CaseResult{Description: description, Passed: err == nil}
	if err != nil {
		r.failed++
		res.Err = err.Error()
		fmt.Fprintf(r.errOut, "❌ %s\n", description)
		fmt.Fprintf(r.errOut, "   Error: %s\n", err)
		r.log.Debugw("case failed", "run_id", r.runID, "case", description, "err", err, "took", time.Since(start))
	} else {
		r.passed++
		fmt.Fprintf(r.out, "✅ %s\n", description)
		r.log.Debugw("case passed", "run_id", r.runID, "case", description, "took", time.Since(start))
	}
	r.results = append(r.results, res)
}

// invoke calls fn and converts a panic into an error.
func invoke(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}

// Summary returns the counts so far without printing anything.
func (r *Runner) Summary() models.Summary {
	results := make([]models.CaseResult, len(r.results))
	copy(results, r.results)
	return models.Summary{
		RunID:   r.runID,
		Passed:  r.passed,
		Failed:  r.failed,
		Results: results,
	}
}

// Report prints the summary block and returns the summary.
func (r *Runner) Report() models.Summary {
	s := r.Summary()

	fmt.Fprintln(r.out, "\n📊 Test Summary:")
	fmt.Fprintf(r.out, "   Passed: %d\n", s.Passed)
	fmt.Fprintf(r.out, "   Failed: %d\n", s.Failed)
	fmt.Fprintf(r.out, "   Total:  %d\n", s.Total())

	if s.Failed == 0 {
		fmt.Fprintln(r.out, "\n🎉 All tests passed!")
		r.log.Infow("run finished", "run_id", s.RunID, "passed", s.Passed, "failed", s.Failed)
	} else {
		fmt.Fprintln(r.out, "\n❌ Some tests failed!")
		r.log.Warnw("run finished with failures", "run_id", s.RunID, "passed", s.Passed, "failed", s.Failed)
	}
	return s
}
