package environment

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Requirements is an ordered collection of requirement specifier strings or
// local paths. Duplicates by package name are not de-duplicated; the last
// one wins per the installer's own semantics.
type Requirements struct {
	Specs []string
}

// RequirementsFromFile reads one requirements file. A missing file yields
// an empty collection.
func RequirementsFromFile(filename string) (Requirements, error) {
	var reqs Requirements
	err := reqs.AddFromFile(filename)
	return reqs, err
}

// RequirementsFromFiles reads and concatenates several requirements files,
// typically the lock files of all benchmarks in a batch.
func RequirementsFromFiles(filenames ...string) (Requirements, error) {
	var reqs Requirements
	for _, filename := range filenames {
		if err := reqs.AddFromFile(filename); err != nil {
			return reqs, err
		}
	}
	return reqs, nil
}

// AddFromFile appends the clean specifier lines of the given file. Lines
// naming an existing file relative to the requirements file are resolved to
// their full path so local packages install from anywhere.
func (r *Requirements) AddFromFile(filename string) error {
	if filename == "" {
		return nil
	}
	lines, err := ReadSpecLines(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	dir := filepath.Dir(filename)
	for _, line := range lines {
		fullPath := filepath.Join(dir, line)
		if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
			r.Specs = append(r.Specs, fullPath)
		} else {
			r.Specs = append(r.Specs, line)
		}
	}

	return nil
}

func (r Requirements) Len() int {
	return len(r.Specs)
}

// ReadSpecLines returns the non-empty, non-comment lines of a requirements
// file, whitespace-trimmed.
func ReadSpecLines(filename string) (lines []string, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}
