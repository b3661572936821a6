package benchmark

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Spec identifies one benchmark unit: its name, the directory holding its
// run script and the optional requirements lock file pinning its
// dependencies.
type Spec struct {
	Name     string
	Dir      string
	Script   string
	LockFile string
}

// SortSpecs orders specs by name so execution order is deterministic for
// reproducibility and log readability.
func SortSpecs(specs []Spec) {
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
}

// DiscoverSpecs scans benchDir for bm_* benchmark directories. The
// optional selection string is a comma-separated list of names limiting
// the set; empty selects everything.
func DiscoverSpecs(benchDir, selection string) ([]Spec, error) {
	entries, err := ioutil.ReadDir(benchDir)
	if err != nil {
		return nil, err
	}

	selected := map[string]bool{}
	for _, name := range strings.Split(selection, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			selected[name] = true
		}
	}

	var specs []Spec
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "bm_") {
			continue
		}
		name := strings.TrimPrefix(entry.Name(), "bm_")
		if len(selected) > 0 && !selected[name] {
			continue
		}

		dir := filepath.Join(benchDir, entry.Name())
		spec := Spec{
			Name:   name,
			Dir:    dir,
			Script: filepath.Join(dir, "run_benchmark.py"),
		}
		lockFile := filepath.Join(dir, "requirements.txt")
		if _, err := os.Stat(lockFile); err == nil {
			spec.LockFile = lockFile
		}
		specs = append(specs, spec)
	}

	SortSpecs(specs)
	return specs, nil
}

// GlobalRequirementsFile returns the path of the harness-wide requirements
// file inside a benchmark manifest directory, or empty when no manifest is
// configured.
func GlobalRequirementsFile(manifest string) string {
	if manifest == "" {
		return ""
	}
	return filepath.Join(manifest, "requirements.txt")
}
