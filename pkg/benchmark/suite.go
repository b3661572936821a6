package benchmark

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
)

// RunError records a benchmark that could not produce a result.
type RunError struct {
	Benchmark string
	Reason    string
}

// Suite is the ordered collection of results of one execution batch, plus
// the benchmarks that could not run. Result order matches completion
// order; unavailable benchmarks are simply absent.
type Suite struct {
	Results []Result
	Errors  []RunError
}

// Add appends a completed result.
func (s *Suite) Add(result Result) {
	s.Results = append(s.Results, result)
}

// AddError records a benchmark that could not run.
func (s *Suite) AddError(benchmark, reason string) {
	s.Errors = append(s.Errors, RunError{Benchmark: benchmark, Reason: reason})
}

// Successful reports whether the batch produced at least one result. A
// suite with results and errors is a valid partial success.
func (s *Suite) Successful() bool {
	return len(s.Results) > 0
}

// Records returns the persisted artifact form of all results.
func (s *Suite) Records() []Record {
	records := make([]Record, 0, len(s.Results))
	for _, result := range s.Results {
		records = append(records, result.Record())
	}
	return records
}

// WriteFile writes the suite to the artifact path as a pretty-printed,
// newline-terminated JSON array of records.
func (s *Suite) WriteFile(filename string) error {
	data, err := json.MarshalIndent(s.Records(), "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return ioutil.WriteFile(filename, data, 0644)
}

// ReadSuite reconstructs a suite from a persisted artifact file.
func ReadSuite(filename string) (*Suite, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	suite := &Suite{}
	for _, record := range records {
		result, err := ResultFromRecord(record)
		if err != nil {
			return nil, err
		}
		suite.Add(result)
	}

	return suite, nil
}
