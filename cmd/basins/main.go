// Command basins reads a height map, finds its low points and reports:
//
//	Part 1: the sum of the low points' risk levels (height + 1)
//	Part 2: the product of the three largest basin sizes
//
// Usage:
//
//	basins [-config basins.yaml] [-input data/day09/input.txt] [-format text|yaml] [-topk 3] [-v]
//
// Flags override values read from the config file. An input of "-" reads
// standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/internal/config"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("basins failed")
		os.Exit(1)
	}
}

// yamlReport is the YAML output document.
type yamlReport struct {
	RunID        string `yaml:"runId"`
	Input        string `yaml:"input"`
	basin.Report `yaml:",inline"`
}

// run parses args, analyzes the selected input and writes the report to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("basins", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML config file")
		input      = fs.String("input", config.DefaultInput, "height map path, or - for stdin")
		format     = fs.String("format", config.FormatText, "output format: text or yaml")
		topK       = fs.Int("topk", basin.DefaultTopK, "number of largest basins to multiply")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "format":
			cfg.Format = *format
		case "topk":
			cfg.TopK = *topK
		case "v":
			if *verbose {
				cfg.LogLevel = logrus.DebugLevel.String()
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	log.SetLevel(lvl)

	runID := uuid.New()
	entry := log.WithFields(logrus.Fields{"run": runID.String(), "input": cfg.Input})

	g, err := readGrid(cfg.Input, stdin)
	if err != nil {
		return err
	}
	w, h := g.Size()
	entry.WithFields(logrus.Fields{"width": w, "height": h}).Debug("height map loaded")

	a, err := basin.NewAnalyzer(g, cfg.AnalyzerOptions(entry)...)
	if err != nil {
		return err
	}
	rep, err := a.Analyze()
	if rep == nil {
		return err
	}
	if errors.Is(err, basin.ErrInsufficientBasins) {
		entry.WithError(err).Warn("basin product unavailable")
	}

	switch cfg.Format {
	case config.FormatYAML:
		out, merr := yaml.Marshal(yamlReport{RunID: runID.String(), Input: cfg.Input, Report: *rep})
		if merr != nil {
			return fmt.Errorf("encode report: %w", merr)
		}
		if _, werr := stdout.Write(out); werr != nil {
			return werr
		}
	default:
		if _, werr := fmt.Fprintf(stdout, "Part 1: %d\n", rep.RiskSum); werr != nil {
			return werr
		}
		if err == nil {
			if _, werr := fmt.Fprintf(stdout, "Part 2: %d\n", rep.TopProduct); werr != nil {
				return werr
			}
		}
	}
	return err
}

// readGrid parses the height map at path, or stdin when path is "-".
func readGrid(path string, stdin io.Reader) (*heightmap.Grid, error) {
	if path == "-" {
		return heightmap.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := heightmap.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
