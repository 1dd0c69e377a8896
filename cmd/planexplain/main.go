// Command planexplain builds the plan described by a YAML plan file and
// prints its explain output.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"mit.edu/dsg/relopt/planfile"
	"mit.edu/dsg/relopt/planner"
)

type config struct {
	planFile string
	format   string
	logLevel string
}

func main() {
	var cfg config
	app := kingpin.New("planexplain", "Explain a relational plan described in a YAML file.")
	app.Flag("plan.file", "Path to the plan file.").Required().StringVar(&cfg.planFile)
	app.Flag("format", "Output format.").Default("text").EnumVar(&cfg.format, "text", "digest")
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(os.Stderr, cfg.logLevel)
	if err := run(cfg, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "explain failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}

func run(cfg config, out io.Writer, logger log.Logger) error {
	f, err := os.Open(cfg.planFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	pf, err := planfile.Load(f)
	if err != nil {
		return err
	}
	cluster := planner.NewCluster(logger)
	root, cat, err := pf.Build(cluster)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "plan built", "file", cfg.planFile, "tables", len(cat.Tables()), "root", root.Name())

	return explain(root, cfg.format, out)
}

func explain(root planner.PlanNode, format string, out io.Writer) error {
	if format == "digest" {
		_, err := fmt.Fprintln(out, planner.Digest(root))
		return err
	}
	pw := planner.NewTextPlanWriter(out)
	root.Explain(pw)
	return pw.Err()
}
