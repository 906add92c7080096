package models

// CaseResult is the outcome of a single named check.
type CaseResult struct {
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
	Err         string `json:"error,omitempty"` // empty when Passed
}
