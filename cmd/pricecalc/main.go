// Package main provides the CLI entry point for pricecalc.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/pricecalc-go/pkg/pricecalc"
)

// errUsage reports that usage text was printed instead of running.
var errUsage = errors.New("usage")

type flags struct {
	configPath string
	quiet      bool
}

func main() {
	_ = godotenv.Load()
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the command with args and returns the process exit code.
// Usage, diagnostics and errors all go to stdout.
func execute(args []string, stdout io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stdout, "\n错误: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "pricecalc <input-file> [output-file]",
		Short: "Compute ceiling prices for every sheet of a workbook",
		Long: `pricecalc fills the recycling and no-recycling ceiling price columns
from the OEM purchase price column of each sheet.

  Sheet 1: 回采限价5.5折, 无回采限价4.8折
  Sheet 2: 回采限价4折, 无回采限价3折
  Other sheets are copied unchanged.

Results are rounded down to whole numbers. Without an output file the
result is written next to the input as <name>_已计算<ext>.

Examples:
  pricecalc input.xlsx
  pricecalc input.xlsx output.xlsx`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stdout)

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file path (default: $"+pricecalc.ConfigEnv+")")
	rootCmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Suppress per-sheet diagnostics")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f flags, stdout io.Writer) error {
	if len(args) == 0 {
		if err := cmd.Help(); err != nil {
			return err
		}
		return errUsage
	}

	// Arguments after the output file are ignored.
	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	cfg, err := pricecalc.LoadConfig(f.configPath)
	if err != nil {
		return err
	}
	if f.quiet {
		cfg.Quiet = true
	}

	opts := pricecalc.DefaultOptions()
	opts.Logger = log.New(stdout, "", 0)
	opts = cfg.Apply(opts)

	if _, err := pricecalc.Run(inputPath, outputPath, opts); err != nil {
		return fmt.Errorf("处理失败: %w", err)
	}

	return nil
}
