package models

// Summary aggregates the results of one run.
type Summary struct {
	RunID   string       `json:"run_id,omitempty"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Results []CaseResult `json:"results"`
}

// Total is the number of cases run.
func (s Summary) Total() int {
	return s.Passed + s.Failed
}

// ExitCode maps the run to a process status: 0 when nothing failed, 1 otherwise.
func (s Summary) ExitCode() int {
	if s.Failed == 0 {
		return 0
	}
	return 1
}
