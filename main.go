package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/shikhar413/openmc-performance/clients/codespeed"
	"github.com/shikhar413/openmc-performance/clients/git"
	"github.com/shikhar413/openmc-performance/clients/pip"
	"github.com/shikhar413/openmc-performance/config"
	"github.com/shikhar413/openmc-performance/pkg/benchmark"
	"github.com/shikhar413/openmc-performance/pkg/command"
	"github.com/shikhar413/openmc-performance/pkg/environment"
	"github.com/shikhar413/openmc-performance/pkg/pipeline"
)

var (
	appgroup  string
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	cli = kingpin.New("openmc-performance", "Compiles OpenMC revisions, benchmarks them and publishes the results.")

	compileCmd            = cli.Command("compile", "Compile a revision, benchmark it and upload the results.")
	compileConfigFile     = compileCmd.Arg("config", "Configuration file.").Required().String()
	compileRevision       = compileCmd.Arg("revision", "Git revision or branch to benchmark.").Required().String()
	compileBranch         = compileCmd.Arg("branch", "Git branch the revision belongs to.").String()
	compilePatch          = compileCmd.Flag("patch", "Patch file applied on top of the checked out revision.").String()
	compileNoUpdate       = compileCmd.Flag("no-update", "Do not fetch the repository before resolving the revision.").Bool()
	compileInheritEnviron = compileCmd.Flag("inherit-environ", "Comma-separated list of environment variables inherited by child processes.").String()

	compileAllCmd        = cli.Command("compile-all", "Compile and benchmark every branch and revision of the configuration.")
	compileAllConfigFile = compileAllCmd.Arg("config", "Configuration file.").Required().String()

	runCmd            = cli.Command("run", "Run benchmarks against an already built executable.")
	runExecutable     = runCmd.Flag("executable", "Path of the OpenMC executable to benchmark.").Required().String()
	runOutput         = runCmd.Flag("output", "Path the result file is written to.").Required().String()
	runManifest       = runCmd.Flag("manifest", "Directory holding the benchmark definitions.").Required().String()
	runVenvPath       = runCmd.Flag("venv", "Virtual environment root to run in.").String()
	runBranchName     = runCmd.Flag("branch", "Branch label attached to the results.").Default(config.DefaultBranch).String()
	runBenchmarks     = runCmd.Flag("benchmarks", "Comma-separated selection of benchmarks; empty runs everything.").String()
	runProject        = runCmd.Flag("project", "Project label attached to the results.").Default(config.DefaultProject).String()
	runAffinity       = runCmd.Flag("affinity", "CPU affinity passed to the benchmark scripts.").String()
	runVerbose        = runCmd.Flag("verbose", "Verbose benchmark output.").Bool()
	runTrials         = runCmd.Flag("n-trials", "Number of trials per benchmark.").Default("5").Int()
	runTimeout        = runCmd.Flag("timeout", "Per-benchmark timeout in seconds.").Default("3600").Float64()
	runPython         = runCmd.Flag("python", "Python interpreter used for the virtual environment.").Default("python3").String()
	runInheritEnviron = runCmd.Flag("inherit-environ", "Comma-separated list of environment variables inherited by benchmark processes.").String()

	venvCmd            = cli.Command("venv", "Manage benchmark virtual environments.")
	venvCreateCmd      = venvCmd.Command("create", "Create the virtual environment.")
	venvRecreateCmd    = venvCmd.Command("recreate", "Remove and recreate the virtual environment.")
	venvRemoveCmd      = venvCmd.Command("remove", "Remove the virtual environment.")
	venvPath           = venvCmd.Flag("venv", "Virtual environment root.").Required().String()
	venvExecutable     = venvCmd.Flag("executable", "Path of the OpenMC executable the environment is for.").String()
	venvManifest       = venvCmd.Flag("manifest", "Directory holding the benchmark definitions.").String()
	venvPython         = venvCmd.Flag("python", "Python interpreter used for the virtual environment.").Default("python3").String()
	venvInheritEnviron = venvCmd.Flag("inherit-environ", "Comma-separated list of environment variables inherited by the environment.").String()

	uploadCmd        = cli.Command("upload", "Upload an existing result file.")
	uploadConfigFile = uploadCmd.Arg("config", "Configuration file.").Required().String()
	uploadFilename   = uploadCmd.Arg("filename", "Result file to upload.").Required().String()
)

func main() {
	applicationInfo := foundation.ApplicationInfo{
		AppGroup:  appgroup,
		App:       app,
		Version:   version,
		Branch:    branch,
		Revision:  revision,
		BuildDate: buildDate,
	}

	foundation.InitLoggingFromEnv(applicationInfo)

	parsedCommand := kingpin.MustParse(cli.Parse(os.Args[1:]))

	closer := initJaeger(applicationInfo.App)

	ctx := foundation.InitCancellationContext(context.Background())

	exitCode := 0
	switch parsedCommand {
	case compileCmd.FullCommand():
		exitCode = runCompile(ctx)
	case compileAllCmd.FullCommand():
		exitCode = runCompileAll(ctx)
	case runCmd.FullCommand():
		exitCode = runBenchmarkBatch(ctx)
	case venvCreateCmd.FullCommand(), venvRecreateCmd.FullCommand(), venvRemoveCmd.FullCommand():
		exitCode = runVenv(ctx, parsedCommand)
	case uploadCmd.FullCommand():
		exitCode = runUpload(ctx)
	}

	closer.Close()
	os.Exit(exitCode)
}

func runCompile(ctx context.Context) int {
	cfg, err := config.Load(*compileConfigFile, config.CommandCompile)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed loading configuration file %v", *compileConfigFile)
	}

	prefix := "compile-" + *compileRevision
	if *compileBranch != "" {
		prefix = "compile-" + *compileBranch + "-" + *compileRevision
	}

	logFile, err := pipeline.NewLogFile(cfg.LogDir(), prefix)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating log file")
	}
	defer logFile.Close()

	logger := logFile.Logger
	runner := command.NewRunner(logger)
	gitClient := git.NewClient(runner, cfg.Scm.RepoDir, cfg.Scm.GitRemote)

	update := cfg.Scm.Update && !*compileNoUpdate
	record, err := pipeline.ResolveRevision(ctx, logger, gitClient, *compileRevision, *compileBranch, *compilePatch, update)
	if err != nil {
		logger.Error().Err(err).Msgf("Failed resolving revision %v", *compileRevision)
		return 1
	}

	var uploader codespeed.Client
	if cfg.RunBenchmark.Upload {
		uploader = codespeed.NewClient(cfg.Upload.URL, cfg.Upload.Authentication)
	}

	builder := pipeline.NewBuilder(logger, runner, cfg)
	harness := pipeline.NewHarnessRunner(runner)

	p := pipeline.New(logger, logFile, cfg, record, gitClient, builder, harness, uploader, splitEnviron(*compileInheritEnviron))

	return p.Run(ctx)
}

func runCompileAll(ctx context.Context) int {
	configFile, err := filepath.Abs(*compileAllConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed resolving configuration file %v", *compileAllConfigFile)
	}

	cfg, err := config.Load(configFile, config.CommandCompileAll)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed loading configuration file %v", configFile)
	}

	logFile, err := pipeline.NewLogFile(cfg.LogDir(), "compile-all")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating log file")
	}
	defer logFile.Close()

	runner := command.NewRunner(logFile.Logger)
	harness := pipeline.NewHarnessRunner(runner)

	scheduler := pipeline.NewScheduler(logFile.Logger, logFile, cfg, configFile, harness)

	return scheduler.Run(ctx)
}

func runBenchmarkBatch(ctx context.Context) int {
	runner := command.NewRunner(log.Logger)
	pipClient := pip.NewClient(runner)
	manager := environment.NewManager(runner, pipClient, *runPython)
	invoker := benchmark.NewInvoker(runner)
	engine := benchmark.NewRunner(runner, manager, invoker)

	specs, err := benchmark.DiscoverSpecs(*runManifest, *runBenchmarks)
	if err != nil {
		log.Error().Err(err).Msgf("Failed discovering benchmarks in %v", *runManifest)
		return 1
	}
	if len(specs) == 0 {
		log.Error().Msgf("No benchmarks found in %v", *runManifest)
		return 1
	}

	suite, err := engine.RunBenchmarks(ctx, *runExecutable, specs, benchmark.RunOptions{
		Venv:             *runVenvPath,
		RequirementsFile: benchmark.GlobalRequirementsFile(*runManifest),
		Verbose:          *runVerbose,
		Affinity:         *runAffinity,
		Trials:           *runTrials,
		Timeout:          time.Duration(*runTimeout * float64(time.Second)),
		Branch:           *runBranchName,
		Project:          *runProject,
		InheritEnviron:   splitEnviron(*runInheritEnviron),
	})
	if err != nil {
		log.Error().Err(err).Msg("Benchmark run failed")
		return 1
	}

	if err := suite.WriteFile(*runOutput); err != nil {
		log.Error().Err(err).Msgf("Failed writing results to %v", *runOutput)
		return 1
	}
	log.Info().Msgf("Results written into %v", *runOutput)

	if len(suite.Errors) > 0 {
		return 1
	}

	return 0
}

func runVenv(ctx context.Context, parsedCommand string) int {
	runner := command.NewRunner(log.Logger)
	pipClient := pip.NewClient(runner)
	manager := environment.NewManager(runner, pipClient, *venvPython)

	if parsedCommand == venvRemoveCmd.FullCommand() {
		if err := manager.Remove(*venvPath); err != nil {
			log.Error().Err(err).Msgf("Failed removing virtual environment %v", *venvPath)
			return 1
		}
		log.Info().Msgf("The virtual environment %v has been removed", *venvPath)
		return 0
	}

	if parsedCommand == venvRecreateCmd.FullCommand() && manager.Exists(*venvPath) {
		if err := manager.Remove(*venvPath); err != nil {
			log.Error().Err(err).Msgf("Failed removing virtual environment %v", *venvPath)
			return 1
		}
	}

	env, err := manager.Ensure(ctx, *venvPath, *venvExecutable, environment.EnsureOptions{
		Upgrade:        environment.UpgradeOnCreate,
		InheritEnviron: splitEnviron(*venvInheritEnviron),
	})
	if err != nil {
		log.Error().Err(err).Msgf("Failed creating virtual environment %v", *venvPath)
		return 1
	}

	requirements, err := environment.RequirementsFromFile(benchmark.GlobalRequirementsFile(*venvManifest))
	if err != nil {
		log.Error().Err(err).Msg("Failed reading requirements")
		return 1
	}
	if err := env.EnsureRequirements(ctx, requirements); err != nil {
		log.Error().Err(err).Msgf("Failed installing requirements into %v", *venvPath)
		return 1
	}

	log.Info().Msgf("The virtual environment %v is ready", *venvPath)

	return 0
}

func runUpload(ctx context.Context) int {
	cfg, err := config.Load(*uploadConfigFile, config.CommandUpload)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed loading configuration file %v", *uploadConfigFile)
	}

	uploader := codespeed.NewClient(cfg.Upload.URL, cfg.Upload.Authentication)
	p := pipeline.NewUploadOnly(log.Logger, cfg, *uploadFilename, uploader)

	return p.Upload(ctx)
}

func splitEnviron(inheritEnviron string) []string {
	var names []string
	for _, name := range strings.Split(inheritEnviron, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	// disable jaeger if service name is empty
	if cfg.ServiceName == "" {
		cfg.Disabled = true
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger))

	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
