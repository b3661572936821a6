package identity

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/blake3"
)

// Version is the harness version; it participates in the compatibility
// fingerprint so environments are not reused across harness releases.
const Version = "1.0.9"

// shortIDLen is the hex prefix length used for cache keys. Collisions only
// degrade environment reuse, never correctness, so a short prefix is fine.
const shortIDLen = 12

// CompatibilityID returns a content hash over the sorted dependency
// specifier lines. Two builds with identical dependency specs share the
// same compatibility id and may therefore share an environment.
func CompatibilityID(globalRequirements []string, benchmarkLock []string) string {
	reqs := make([]string, len(globalRequirements))
	copy(reqs, globalRequirements)
	sort.Strings(reqs)

	if len(benchmarkLock) > 0 {
		lock := make([]string, len(benchmarkLock))
		copy(lock, benchmarkLock)
		sort.Strings(lock)
		reqs = append(reqs, lock...)
	}

	hasher := blake3.New()
	hasher.Write([]byte(Version))
	hasher.Write([]byte(strings.Join(reqs, "\n")))

	digest := hex.EncodeToString(hasher.Sum(nil))
	return digest[:shortIDLen]
}

// ExecutableID returns a short identifier for the executable under test,
// derived from its reported commit hash.
func ExecutableID(commitHash string) string {
	if len(commitHash) > shortIDLen {
		return commitHash[:shortIDLen]
	}
	return commitHash
}

// RunID identifies one benchmark run: the executable under test, the
// compatibility fingerprint of its dependency set, optionally the benchmark
// it is scoped to and a timestamp. It is never mutated after construction.
type RunID struct {
	Executable string
	Compat     string
	Bench      string
	Timestamp  int64
}

// WithBench returns a copy of the run id scoped to the given benchmark.
func (r RunID) WithBench(bench string) RunID {
	r.Bench = bench
	return r
}

// Name is the identifier used to name and locate environments.
func (r RunID) Name() string {
	name := fmt.Sprintf("%v-compat-%v", r.Executable, r.Compat)
	if r.Bench != "" {
		name = fmt.Sprintf("%v-bm-%v", name, r.Bench)
	}
	return name
}

func (r RunID) String() string {
	if r.Timestamp == 0 {
		return r.Name()
	}
	return fmt.Sprintf("%v-%v", r.Name(), r.Timestamp)
}
