package benchmark

import (
	"fmt"
	"math"
	"time"
)

// dateLayout is ISO-8601 with an explicit numeric UTC offset, matching the
// format the publish endpoint expects.
const dateLayout = "2006-01-02T15:04:05-07:00"

// Record is the persisted artifact form of one benchmark result.
type Record struct {
	Benchmark    string   `json:"benchmark"`
	ResultsValue float64  `json:"results_value"`
	StdDev       *float64 `json:"std_dev"`
	Min          float64  `json:"min"`
	Max          float64  `json:"max"`
	ResultDate   string   `json:"result_date"`
	RevisionDate string   `json:"revision_date,omitempty"`
	CommitID     string   `json:"commitid,omitempty"`
	Executable   string   `json:"executable,omitempty"`
	Branch       string   `json:"branch,omitempty"`
	Project      string   `json:"project,omitempty"`
	Environment  string   `json:"environment,omitempty"`
}

type summary struct {
	mean   float64
	stdDev *float64
	min    float64
	max    float64
}

// Result is one benchmark's outcome. It is either built from the raw trial
// timing list of a fresh run, or reconstructed from a persisted summary, in
// which case the computed values are read back verbatim instead of being
// recomputed.
type Result struct {
	name    string
	trials  []float64
	summary *summary

	resultDate   time.Time
	revisionDate *time.Time
	commitID     string
	executable   string
	branch       string
	project      string
	environment  string
}

// NewResult returns a Result over the raw trial timing list.
func NewResult(name string, trials []float64) Result {
	return Result{
		name:       name,
		trials:     trials,
		resultDate: time.Now().UTC(),
	}
}

// ResultFromRecord reconstructs a Result from a persisted record. The
// summary values are carried as stored; standard deviation stays null when
// it was stored null.
func ResultFromRecord(record Record) (Result, error) {
	resultDate, err := time.Parse(dateLayout, record.ResultDate)
	if err != nil {
		return Result{}, fmt.Errorf("unparsable result_date in record for %v: %w", record.Benchmark, err)
	}

	result := Result{
		name: record.Benchmark,
		summary: &summary{
			mean:   record.ResultsValue,
			stdDev: record.StdDev,
			min:    record.Min,
			max:    record.Max,
		},
		resultDate:  resultDate,
		commitID:    record.CommitID,
		executable:  record.Executable,
		branch:      record.Branch,
		project:     record.Project,
		environment: record.Environment,
	}

	if record.RevisionDate != "" {
		revisionDate, err := time.Parse(dateLayout, record.RevisionDate)
		if err != nil {
			return Result{}, fmt.Errorf("unparsable revision_date in record for %v: %w", record.Benchmark, err)
		}
		result.revisionDate = &revisionDate
	}

	return result, nil
}

func (r Result) Name() string {
	return r.name
}

// Trials returns the raw timing list, nil for reconstructed results.
func (r Result) Trials() []float64 {
	return r.trials
}

func (r Result) Mean() float64 {
	if r.summary != nil {
		return r.summary.mean
	}
	var sum float64
	for _, t := range r.trials {
		sum += t
	}
	return sum / float64(len(r.trials))
}

// StdDev returns the sample standard deviation over the trials. The second
// return value is false when it is undefined: fewer than 2 trials, or a
// reconstructed summary that stored null.
func (r Result) StdDev() (float64, bool) {
	if r.summary != nil {
		if r.summary.stdDev == nil {
			return 0, false
		}
		return *r.summary.stdDev, true
	}

	if len(r.trials) < 2 {
		return 0, false
	}

	mean := r.Mean()
	var sum float64
	for _, t := range r.trials {
		sum += (t - mean) * (t - mean)
	}
	return math.Sqrt(sum / float64(len(r.trials)-1)), true
}

func (r Result) Min() float64 {
	if r.summary != nil {
		return r.summary.min
	}
	min := r.trials[0]
	for _, t := range r.trials[1:] {
		if t < min {
			min = t
		}
	}
	return min
}

func (r Result) Max() float64 {
	if r.summary != nil {
		return r.summary.max
	}
	max := r.trials[0]
	for _, t := range r.trials[1:] {
		if t > max {
			max = t
		}
	}
	return max
}

func (r Result) ResultDate() time.Time {
	return r.resultDate
}

func (r Result) RevisionDate() (time.Time, bool) {
	if r.revisionDate == nil {
		return time.Time{}, false
	}
	return *r.revisionDate, true
}

func (r Result) CommitID() string {
	return r.commitID
}

func (r Result) Branch() string {
	return r.branch
}

func (r Result) Project() string {
	return r.project
}

// AddExecutableInfo attaches the build and host details the publish
// endpoint groups results by.
func (r *Result) AddExecutableInfo(commitID string, revisionDate time.Time, version, environment, branch, project string) {
	r.commitID = commitID
	r.revisionDate = &revisionDate
	r.executable = version
	r.environment = environment
	r.branch = branch
	r.project = project
}

// Record returns the persisted artifact form of the result.
func (r Result) Record() Record {
	record := Record{
		Benchmark:    r.name,
		ResultsValue: r.Mean(),
		Min:          r.Min(),
		Max:          r.Max(),
		ResultDate:   r.resultDate.Format(dateLayout),
		CommitID:     r.commitID,
		Executable:   r.executable,
		Branch:       r.branch,
		Project:      r.project,
		Environment:  r.environment,
	}

	if stdDev, ok := r.StdDev(); ok {
		record.StdDev = &stdDev
	}
	if r.revisionDate != nil {
		record.RevisionDate = r.revisionDate.Format(dateLayout)
	}

	return record
}
