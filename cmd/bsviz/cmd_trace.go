package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bsviz/internal/arraygen"
	"bsviz/internal/config"
	"bsviz/internal/search"
	"bsviz/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// Search flags shared by trace and play
	searchArray     string
	searchSize      int
	searchTarget    int
	searchGuarantee bool

	traceFormat string
)

// traceCmd prints every comparison of one search
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the steps of a binary search",
	Long: `Runs one binary search and prints each comparison.

Examples:
  bsviz trace --array "2,4,6,8,10" --target 5
  bsviz trace --size 30 --target 42 --format json`,
	RunE: runTrace,
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&searchArray, "array", "", "Sorted array to search, e.g. \"1,3,5,7\" (default: generated)")
	cmd.Flags().IntVarP(&searchSize, "size", "n", 0, "Generated array size (0 = config default)")
	cmd.Flags().IntVarP(&searchTarget, "target", "t", 0, "Value to search for (0 = config default)")
	cmd.Flags().BoolVar(&searchGuarantee, "guarantee", true, "Make sure a generated array contains the target")
}

// prepareSearch builds a session holding the requested array with a search
// for the requested target positioned at its first frame.
func prepareSearch(cfg *config.Config) (*session.Session, error) {
	gen, err := newGenerator(cfg)
	if err != nil {
		return nil, err
	}
	sess := session.New(gen)

	target := searchTarget
	if target == 0 {
		target = cfg.Search.DefaultTarget
	}

	if searchArray != "" {
		a, err := arraygen.Parse(searchArray)
		if err != nil {
			return nil, err
		}
		if err := sess.SetArray(a); err != nil {
			return nil, err
		}
	} else {
		size := searchSize
		if size == 0 {
			size = cfg.Array.DefaultSize
		}
		if _, err := sess.Generate(size, target, searchGuarantee); err != nil {
			return nil, err
		}
	}

	if _, err := sess.Start(target); err != nil {
		return nil, err
	}
	return sess, nil
}

// traceReport is the machine readable form of a trace.
type traceReport struct {
	Session     string        `json:"session" yaml:"session"`
	Array       []int         `json:"array" yaml:"array,flow"`
	Target      int           `json:"target" yaml:"target"`
	Steps       []search.Step `json:"steps" yaml:"steps"`
	Result      search.Result `json:"result" yaml:"result"`
	Comparisons int           `json:"comparisons" yaml:"comparisons"`
	WorstCase   int           `json:"worst_case" yaml:"worst_case"`
}

func newTraceReport(sess *session.Session) (traceReport, error) {
	result, err := sess.Result()
	if err != nil {
		return traceReport{}, err
	}
	array := sess.Array()
	steps := sess.Steps()
	return traceReport{
		Session:     sess.ID,
		Array:       array,
		Target:      sess.Target(),
		Steps:       steps,
		Result:      result,
		Comparisons: len(steps),
		WorstCase:   search.MaxSteps(len(array)),
	}, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := prepareSearch(cfg)
	if err != nil {
		return err
	}
	report, err := newTraceReport(sess)
	if err != nil {
		return err
	}

	logger.Debug("trace",
		zap.String("session", report.Session),
		zap.Int("target", report.Target),
		zap.Int("size", len(report.Array)),
		zap.Int("comparisons", report.Comparisons),
		zap.Bool("found", report.Result.Found))

	return writeTrace(cmd.OutOrStdout(), report, traceFormat)
}

func writeTrace(w io.Writer, r traceReport, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return writeTraceText(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (valid: text, json, yaml)", format)
	}
}

func writeTraceText(w io.Writer, r traceReport) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session: %s\n", r.Session))
	sb.WriteString(fmt.Sprintf("Array:   %v\n", r.Array))
	sb.WriteString(fmt.Sprintf("Target:  %d\n\n", r.Target))
	for _, line := range search.Narrate(r.Steps, r.Target, len(r.Array), len(r.Steps)) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nResult: %s after %d comparisons (worst case %d)\n",
		r.Result, r.Comparisons, r.WorstCase))
	_, err := io.WriteString(w, sb.String())
	return err
}
