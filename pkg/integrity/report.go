package integrity

import (
	"time"
)

// Result is the recorded outcome of one check in a run.
type Result struct {
	Name       string  `json:"name" yaml:"name"`
	Kind       Kind    `json:"kind" yaml:"kind"`
	Status     Status  `json:"status" yaml:"status"`
	Diagnostic string  `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
	Note       string  `json:"note,omitempty" yaml:"note,omitempty"`
	Seconds    float64 `json:"seconds" yaml:"seconds"`
}

// NewResult combines a check with its outcome.
func NewResult(chk Check, out Outcome, dur time.Duration) Result {
	return Result{
		Name:       chk.Name,
		Kind:       chk.Kind,
		Status:     out.Status,
		Diagnostic: out.Diagnostic,
		Note:       out.Note,
		Seconds:    dur.Seconds(),
	}
}

// Report summarizes a run of the catalog.
type Report struct {
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id" yaml:"run_id"`

	// Database is a password-free description of the checked database.
	Database string `json:"database" yaml:"database"`

	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Seconds is the wall time of the whole run.
	Seconds float64 `json:"seconds" yaml:"seconds"`

	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
	Errored int `json:"errored" yaml:"errored"`

	Results []Result `json:"results" yaml:"results"`
}

// NewReport creates an empty report of a run starting now.
func NewReport(runID, database string) *Report {
	return &Report{
		RunID:     runID,
		Database:  database,
		StartedAt: time.Now(),
	}
}

// Add appends a result and updates the counters.
func (r *Report) Add(res Result) {
	switch res.Status {
	case Pass:
		r.Passed++
	case Fail:
		r.Failed++
	default:
		r.Errored++
	}
	r.Results = append(r.Results, res)
}

// Finish records the total duration of the run.
func (r *Report) Finish() {
	r.Seconds = time.Since(r.StartedAt).Seconds()
}

// OK returns true if every check of the run passed.
func (r *Report) OK() bool {
	return r.Failed == 0 && r.Errored == 0
}

// Total returns the number of checks in the report.
func (r *Report) Total() int {
	return len(r.Results)
}

// Problems returns failed and errored results in run order.
func (r *Report) Problems() []Result {
	var res []Result
	for _, v := range r.Results {
		if v.Status != Pass {
			res = append(res, v)
		}
	}
	return res
}
