package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// DefaultBranch is checked out when a revision does not name a branch.
const DefaultBranch = "develop"

// DefaultProject is the project label attached to uploaded results.
const DefaultProject = "OpenMC"

// Command indicates which sections of the configuration file have to be
// present and valid for the current invocation.
type Command int

const (
	CommandCompile Command = iota
	CommandCompileAll
	CommandUpload
)

// ScmConfig configures the source checkout the pipeline builds from
type ScmConfig struct {
	RepoDir   string `yaml:"repo_dir"`
	Update    bool   `yaml:"update"`
	GitRemote string `yaml:"git_remote"`
}

// CompileConfig configures the build and install steps
type CompileConfig struct {
	BenchDir string `yaml:"bench_dir"`
	Install  bool   `yaml:"install"`
	Compile  bool   `yaml:"compile"`
	Jobs     int    `yaml:"jobs"`
}

// RunBenchmarkConfig configures the benchmark run stage
type RunBenchmarkConfig struct {
	Manifest   string  `yaml:"manifest"`
	Benchmarks string  `yaml:"benchmarks"`
	Affinity   string  `yaml:"affinity"`
	Project    string  `yaml:"project"`
	Upload     bool    `yaml:"upload"`
	Verbose    bool    `yaml:"verbose"`
	CleanVenv  bool    `yaml:"clean_venv"`
	Trials     int     `yaml:"n_trials"`
	Timeout    float64 `yaml:"timeout"`
}

// UploadConfig configures the publish endpoint
type UploadConfig struct {
	URL            string `yaml:"url"`
	Authentication string `yaml:"authentication"`
}

// RevisionItem is one explicit (revision, branch) pair for compile-all
type RevisionItem struct {
	Revision string `yaml:"revision"`
	Branch   string `yaml:"branch"`
}

// CompileAllConfig configures the multi-revision scheduler queue
type CompileAllConfig struct {
	Branches  []string       `yaml:"branches"`
	Revisions []RevisionItem `yaml:"revisions"`
}

// Config is the full resolved configuration for one invocation; it is
// loaded once and not mutated afterwards
type Config struct {
	JSONDir      string             `yaml:"json_dir"`
	Python       string             `yaml:"python"`
	Scm          ScmConfig          `yaml:"scm"`
	Compile      CompileConfig      `yaml:"compile"`
	RunBenchmark RunBenchmarkConfig `yaml:"run_benchmark"`
	Upload       UploadConfig       `yaml:"upload"`
	CompileAll   CompileAllConfig   `yaml:"compile_all"`
}

// Load reads and validates the configuration file for the given command.
func Load(filename string, command Command) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Config{
		Python: "python3",
		Scm: ScmConfig{
			Update:    true,
			GitRemote: "remotes/origin",
		},
		Compile: CompileConfig{
			Compile: true,
		},
		RunBenchmark: RunBenchmarkConfig{
			CleanVenv: true,
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed parsing configuration file %v: %w", filename, err)
	}

	config.JSONDir = expandUser(config.JSONDir)
	config.Scm.RepoDir = expandUser(config.Scm.RepoDir)
	config.Compile.BenchDir = expandUser(config.Compile.BenchDir)
	config.RunBenchmark.Manifest = expandUser(config.RunBenchmark.Manifest)

	if err := config.validate(filename, command); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate(filename string, command Command) error {
	if c.JSONDir == "" {
		return fmt.Errorf("json_dir is not set in %v", filename)
	}

	if command == CommandCompile || command == CommandCompileAll {
		if c.Scm.RepoDir == "" {
			return fmt.Errorf("scm.repo_dir is not set in %v", filename)
		}
		if c.Compile.BenchDir == "" {
			return fmt.Errorf("compile.bench_dir is not set in %v", filename)
		}
	}

	checkUpload := c.RunBenchmark.Upload || command == CommandUpload
	if checkUpload {
		var missing []string
		if c.Upload.URL == "" {
			missing = append(missing, "url")
		}
		if c.Upload.Authentication == "" {
			missing = append(missing, "authentication")
		}
		if len(missing) > 0 {
			return fmt.Errorf("upload requires the following options in the upload section of %v: %v", filename, strings.Join(missing, ", "))
		}
	}

	if command == CommandCompileAll && len(c.CompileAll.Branches) == 0 && len(c.CompileAll.Revisions) == 0 {
		return fmt.Errorf("no branches nor revisions configured for compile-all in %v", filename)
	}

	return nil
}

// BuildDir is the out-of-tree cmake build directory inside the checkout.
func (c *Config) BuildDir() string {
	return filepath.Join(c.Scm.RepoDir, "build")
}

// Prefix is the install prefix used when compile.install is enabled.
func (c *Config) Prefix() string {
	return filepath.Join(c.Compile.BenchDir, "prefix")
}

// LogDir holds the per-run log files.
func (c *Config) LogDir() string {
	return filepath.Join(c.Compile.BenchDir, "logs")
}

// VenvDir holds the identity-keyed virtual environments.
func (c *Config) VenvDir() string {
	return filepath.Join(c.Compile.BenchDir, "venv")
}

// JSONPatchDir holds artifacts for patched builds, which are never uploaded.
func (c *Config) JSONPatchDir() string {
	return filepath.Join(c.JSONDir, "patch")
}

// UploadedJSONDir holds artifacts that have been acknowledged by the server.
func (c *Config) UploadedJSONDir() string {
	return filepath.Join(c.JSONDir, "uploaded")
}

// BenchTimeout returns the configured per-benchmark timeout, defaulting to
// one hour.
func (c *Config) BenchTimeout() time.Duration {
	if c.RunBenchmark.Timeout <= 0 {
		return time.Hour
	}
	return time.Duration(c.RunBenchmark.Timeout * float64(time.Second))
}

func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
