package benchmark

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeBenchmarkDir(t *testing.T, benchDir, name string, withLockFile bool) {
	dir := filepath.Join(benchDir, name)
	assert.Nil(t, os.MkdirAll(dir, 0755))
	assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, "run_benchmark.py"), []byte("pass\n"), 0644))
	if withLockFile {
		assert.Nil(t, ioutil.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("numpy==1.24.0\n"), 0644))
	}
}

func TestDiscoverSpecs(t *testing.T) {

	t.Run("ReturnsBenchmarkDirectoriesSortedByName", func(t *testing.T) {

		benchDir := t.TempDir()
		writeBenchmarkDir(t, benchDir, "bm_simple_tally", false)
		writeBenchmarkDir(t, benchDir, "bm_depletion", true)

		// act
		specs, err := DiscoverSpecs(benchDir, "")

		assert.Nil(t, err)
		if assert.Equal(t, 2, len(specs)) {
			assert.Equal(t, "depletion", specs[0].Name)
			assert.Equal(t, filepath.Join(benchDir, "bm_depletion"), specs[0].Dir)
			assert.Equal(t, filepath.Join(benchDir, "bm_depletion", "run_benchmark.py"), specs[0].Script)
			assert.Equal(t, "simple_tally", specs[1].Name)
		}
	})

	t.Run("DetectsLockFileOnlyWhereItExists", func(t *testing.T) {

		benchDir := t.TempDir()
		writeBenchmarkDir(t, benchDir, "bm_simple_tally", false)
		writeBenchmarkDir(t, benchDir, "bm_depletion", true)

		// act
		specs, err := DiscoverSpecs(benchDir, "")

		assert.Nil(t, err)
		assert.Equal(t, filepath.Join(benchDir, "bm_depletion", "requirements.txt"), specs[0].LockFile)
		assert.Equal(t, "", specs[1].LockFile)
	})

	t.Run("IgnoresEntriesWithoutBenchmarkPrefix", func(t *testing.T) {

		benchDir := t.TempDir()
		writeBenchmarkDir(t, benchDir, "bm_depletion", false)
		assert.Nil(t, os.MkdirAll(filepath.Join(benchDir, "data"), 0755))
		assert.Nil(t, ioutil.WriteFile(filepath.Join(benchDir, "bm_notadir"), []byte(""), 0644))

		// act
		specs, err := DiscoverSpecs(benchDir, "")

		assert.Nil(t, err)
		if assert.Equal(t, 1, len(specs)) {
			assert.Equal(t, "depletion", specs[0].Name)
		}
	})

	t.Run("LimitsToSelectedBenchmarks", func(t *testing.T) {

		benchDir := t.TempDir()
		writeBenchmarkDir(t, benchDir, "bm_depletion", false)
		writeBenchmarkDir(t, benchDir, "bm_simple_tally", false)
		writeBenchmarkDir(t, benchDir, "bm_photon_transport", false)

		// act
		specs, err := DiscoverSpecs(benchDir, "depletion, simple_tally")

		assert.Nil(t, err)
		if assert.Equal(t, 2, len(specs)) {
			assert.Equal(t, "depletion", specs[0].Name)
			assert.Equal(t, "simple_tally", specs[1].Name)
		}
	})

	t.Run("FailsWhenBenchmarkDirectoryIsMissing", func(t *testing.T) {

		// act
		_, err := DiscoverSpecs(filepath.Join(t.TempDir(), "missing"), "")

		assert.NotNil(t, err)
	})
}

func TestGlobalRequirementsFile(t *testing.T) {

	t.Run("ReturnsRequirementsPathInsideManifest", func(t *testing.T) {

		// act
		path := GlobalRequirementsFile("/bench/manifest")

		assert.Equal(t, filepath.Join("/bench/manifest", "requirements.txt"), path)
	})

	t.Run("ReturnsEmptyWithoutManifest", func(t *testing.T) {

		// act
		path := GlobalRequirementsFile("")

		assert.Equal(t, "", path)
	})
}
