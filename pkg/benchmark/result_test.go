package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {

	t.Run("ComputesMeanOverTrials", func(t *testing.T) {

		result := NewResult("depletion", []float64{10, 20, 30})

		// act
		mean := result.Mean()

		assert.Equal(t, 20.0, mean)
	})

	t.Run("ComputesSampleStandardDeviation", func(t *testing.T) {

		result := NewResult("depletion", []float64{10, 20, 30})

		// act
		stdDev, ok := result.StdDev()

		assert.True(t, ok)
		assert.InDelta(t, 10.0, stdDev, 0.0001)
	})

	t.Run("HasNoStandardDeviationForSingleTrial", func(t *testing.T) {

		result := NewResult("depletion", []float64{42})

		// act
		_, ok := result.StdDev()

		assert.False(t, ok)
	})

	t.Run("ComputesMinAndMax", func(t *testing.T) {

		result := NewResult("depletion", []float64{20, 10, 30})

		assert.Equal(t, 10.0, result.Min())
		assert.Equal(t, 30.0, result.Max())
	})

	t.Run("RecordCarriesNullStdDevForSingleTrial", func(t *testing.T) {

		result := NewResult("depletion", []float64{42})

		// act
		record := result.Record()

		assert.Nil(t, record.StdDev)
		assert.Equal(t, 42.0, record.ResultsValue)
	})

	t.Run("RecordCarriesExecutableInfo", func(t *testing.T) {

		result := NewResult("depletion", []float64{10, 20})
		revisionDate := time.Date(2023, 8, 31, 10, 15, 0, 0, time.UTC)

		// act
		result.AddExecutableInfo("4b271c7ba3c3", revisionDate, "Version 0.13.2", "Ubuntu 22.04", "develop", "OpenMC")
		record := result.Record()

		assert.Equal(t, "4b271c7ba3c3", record.CommitID)
		assert.Equal(t, "2023-08-31T10:15:00+00:00", record.RevisionDate)
		assert.Equal(t, "Version 0.13.2", record.Executable)
		assert.Equal(t, "Ubuntu 22.04", record.Environment)
		assert.Equal(t, "develop", record.Branch)
		assert.Equal(t, "OpenMC", record.Project)
	})
}

func TestResultFromRecord(t *testing.T) {

	t.Run("ReadsSummaryValuesVerbatim", func(t *testing.T) {

		stdDev := 1.5
		record := Record{
			Benchmark:    "depletion",
			ResultsValue: 20.0,
			StdDev:       &stdDev,
			Min:          10.0,
			Max:          30.0,
			ResultDate:   "2023-08-31T10:15:00+00:00",
		}

		// act
		result, err := ResultFromRecord(record)

		assert.Nil(t, err)
		assert.Equal(t, 20.0, result.Mean())
		got, ok := result.StdDev()
		assert.True(t, ok)
		assert.Equal(t, 1.5, got)
		assert.Equal(t, 10.0, result.Min())
		assert.Equal(t, 30.0, result.Max())
	})

	t.Run("KeepsStoredNullStdDevNull", func(t *testing.T) {

		record := Record{
			Benchmark:    "depletion",
			ResultsValue: 42.0,
			Min:          42.0,
			Max:          42.0,
			ResultDate:   "2023-08-31T10:15:00+00:00",
		}

		// act
		result, err := ResultFromRecord(record)

		assert.Nil(t, err)
		_, ok := result.StdDev()
		assert.False(t, ok)
		assert.Nil(t, result.Record().StdDev)
	})

	t.Run("FailsOnUnparsableResultDate", func(t *testing.T) {

		record := Record{Benchmark: "depletion", ResultDate: "yesterday"}

		// act
		_, err := ResultFromRecord(record)

		assert.NotNil(t, err)
	})
}
