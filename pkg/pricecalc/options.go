// Package pricecalc computes ceiling-price columns for every sheet of a workbook.
package pricecalc

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/pricecalc-go/pkg/pricecalc/calc"
)

// DefaultOutputSuffix is inserted before the extension of the input file
// name when no output path is given.
const DefaultOutputSuffix = "_已计算"

// Options configures a run.
type Options struct {
	// OutputSuffix is used to derive the output path. Empty means DefaultOutputSuffix.
	OutputSuffix string
	// Logger receives operator diagnostics. Nil discards them.
	Logger *log.Logger
	// Policy selects the discount of each sheet by position.
	Policy calc.Policy
}

// DefaultOptions returns options that log to standard output.
func DefaultOptions() Options {
	return Options{
		OutputSuffix: DefaultOutputSuffix,
		Logger:       log.New(os.Stdout, "", 0),
		Policy:       calc.DefaultPolicy(),
	}
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return o.Logger
}

func (o Options) suffix() string {
	if o.OutputSuffix == "" {
		return DefaultOutputSuffix
	}
	return o.OutputSuffix
}

// DefaultOutputPath derives "<dir>/<stem><suffix><ext>" from the input path.
func DefaultOutputPath(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+suffix+ext)
}
