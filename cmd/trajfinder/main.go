// Command trajfinder reconstructs minimum-conflict trajectories from a set
// of per-process phylogenetic DAGs (spec §6, "CLI (shim only, not core)").
// It wraps internal/pipeline.Run and internal/pipeline.Write; all the
// actual logic lives in the internal packages so that the library can also
// be driven from pkg/server's HTTP API.
//
// Usage:
//
//	trajfinder -dags <path> -output-path <dir> [flags]
//
// Flags:
//
//	-dags, -d string
//	    Input DAGs: a directory of per-process files, or a single file
//	-output-path, -o string
//	    Directory the result files are written into
//	-k int
//	    Minimum number of processes the ILP must select (default 1)
//	-resolution_threshold, -rt int
//	    Enable the threshold resolution policy at this count (0 disables it)
//	-resolution_frequency, -rf
//	    Enable the frequency resolution policy
//	-solution-pool-size, -pool int
//	    Bound the number of optimal solutions returned (0 = unbounded)
//	-cores, -c int
//	    Worker pool size for ingestion and conflict analysis (default 1)
//	-parallelize, -parallel
//	    Run fan-out stages concurrently
//	-verbose, -v
//	    Verbose logging
//	-draw_dots, -dots
//	    Accepted for compatibility with the source tool; dot/png rendering
//	    is out of scope here and the flag has no effect beyond a warning
//	-config string
//	    Optional JSON run-config file (pkg/config.LoadFile); flags above
//	    override whatever the file sets
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/yesoreyeram/thaiyyal/backend/internal/ilpsolver"
	"github.com/yesoreyeram/thaiyyal/backend/internal/pipeline"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/config"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/logging"
	"github.com/yesoreyeram/thaiyyal/backend/pkg/observer"
)

func main() {
	var cfgPath string
	var dagsPath string
	var outputPath string
	var k int
	var resolutionThreshold int
	var resolutionFrequency bool
	var solutionPoolSize int
	var cores int
	var parallelize bool
	var verbose bool
	var drawDots bool

	flag.StringVar(&cfgPath, "config", "", "optional JSON run-config file")

	flag.StringVar(&dagsPath, "dags", "", "input DAGs file or directory")
	flag.StringVar(&dagsPath, "d", "", "shorthand for -dags")
	flag.StringVar(&outputPath, "output-path", "", "output directory")
	flag.StringVar(&outputPath, "o", "", "shorthand for -output-path")
	flag.IntVar(&k, "k", 1, "minimum number of processes the ILP must select")
	flag.IntVar(&resolutionThreshold, "resolution_threshold", 0, "threshold resolution policy cutoff (0 disables it)")
	flag.IntVar(&resolutionThreshold, "rt", 0, "shorthand for -resolution_threshold")
	flag.BoolVar(&resolutionFrequency, "resolution_frequency", false, "enable the frequency resolution policy")
	flag.BoolVar(&resolutionFrequency, "rf", false, "shorthand for -resolution_frequency")
	flag.IntVar(&solutionPoolSize, "solution-pool-size", 0, "bound the number of optimal solutions returned (0 = unbounded)")
	flag.IntVar(&solutionPoolSize, "pool", 0, "shorthand for -solution-pool-size")
	flag.IntVar(&cores, "cores", 1, "worker pool size for ingestion and conflict analysis")
	flag.IntVar(&cores, "c", 1, "shorthand for -cores")
	flag.BoolVar(&parallelize, "parallelize", false, "run fan-out stages concurrently")
	flag.BoolVar(&parallelize, "parallel", false, "shorthand for -parallelize")
	flag.BoolVar(&verbose, "verbose", false, "verbose logging")
	flag.BoolVar(&verbose, "v", false, "shorthand for -verbose")
	flag.BoolVar(&drawDots, "draw_dots", false, "accepted for compatibility; has no effect")
	flag.BoolVar(&drawDots, "dots", false, "shorthand for -draw_dots")

	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFile(cfgPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "trajfinder: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if dagsPath != "" {
		cfg.DAGsPath = dagsPath
	}
	if outputPath != "" {
		cfg.OutputPath = outputPath
	}
	applyIntFlag(&cfg.K, "k", k)
	applyIntFlag(&cfg.ResolutionThreshold, "resolution_threshold", resolutionThreshold)
	applyIntFlag(&cfg.ResolutionThreshold, "rt", resolutionThreshold)
	applyIntFlag(&cfg.SolutionPoolSize, "solution-pool-size", solutionPoolSize)
	applyIntFlag(&cfg.SolutionPoolSize, "pool", solutionPoolSize)
	applyIntFlag(&cfg.Cores, "cores", cores)
	applyIntFlag(&cfg.Cores, "c", cores)
	applyBoolFlag(&cfg.ResolutionFrequency, "resolution_frequency", resolutionFrequency)
	applyBoolFlag(&cfg.ResolutionFrequency, "rf", resolutionFrequency)
	applyBoolFlag(&cfg.Parallelize, "parallelize", parallelize)
	applyBoolFlag(&cfg.Parallelize, "parallel", parallelize)
	applyBoolFlag(&cfg.Verbose, "verbose", verbose)
	applyBoolFlag(&cfg.Verbose, "v", verbose)
	applyBoolFlag(&cfg.DrawDots, "draw_dots", drawDots)
	applyBoolFlag(&cfg.DrawDots, "dots", drawDots)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "trajfinder: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if cfg.DrawDots {
		fmt.Fprintln(os.Stderr, "trajfinder: -draw_dots has no effect; dot/png rendering is out of scope")
	}

	logLevel := "info"
	if cfg.Verbose {
		logLevel = "debug"
	}
	loggingConfig := logging.DefaultConfig()
	loggingConfig.Level = logLevel
	logger := logging.New(loggingConfig).WithRunID(uuid.New().String())

	pc := pipeline.NewContext(context.Background(), cfg.Cores, cfg.Parallelize, cfg.Verbose)
	if cfg.Verbose {
		mgr := observer.NewManager()
		mgr.Register(observer.NewConsoleObserver())
		pc.Observer = mgr
	}

	res, err := pipeline.Run(pc, cfg, ilpsolver.NewBruteForceSolver(), logger)
	if err != nil {
		logger.WithError(err).Error("pipeline run failed")
		os.Exit(1)
	}

	if err := pipeline.Write(res, cfg.OutputPath); err != nil {
		logger.WithError(err).Error("failed to write results")
		os.Exit(1)
	}

	logger.Infof("wrote %d trajectories to %s", len(res.Trajectories), cfg.OutputPath)
}

// applyIntFlag overwrites *dst with val only when the flag was actually
// set on the command line, so a run-config file's value isn't clobbered
// by an unset flag's zero default.
func applyIntFlag(dst *int, name string, val int) {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if set {
		*dst = val
	}
}

// applyBoolFlag mirrors applyIntFlag for boolean flags, so an unset
// "-parallelize" doesn't clobber a true default with Go's bool zero value.
func applyBoolFlag(dst *bool, name string, val bool) {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if set {
		*dst = val
	}
}
