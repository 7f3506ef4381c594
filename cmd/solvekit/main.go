// Command solvekit runs one registered puzzle solver against an input file
// and prints the answer line.
//
// Usage:
//
//	solvekit --day 19 --part 2 --input testdata/day19.txt
//
// Inputs are fixed, trusted puzzle data: any parse failure is fatal and
// reported as a diagnostic, never recovered.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solvekit/solvekit/days"

	// Solver packages register themselves with the days registry.
	_ "github.com/solvekit/solvekit/days/day06"
	_ "github.com/solvekit/solvekit/days/day07"
	_ "github.com/solvekit/solvekit/days/day14"
	_ "github.com/solvekit/solvekit/days/day16"
	_ "github.com/solvekit/solvekit/days/day19"
)

func newRootCmd(log *zap.SugaredLogger) *cobra.Command {
	var (
		day   int
		part  int
		input string
	)

	cmd := &cobra.Command{
		Use:           "solvekit",
		Short:         "Run a puzzle solver against an input file",
		Long:          fmt.Sprintf("Run one of the registered puzzle solvers (days %v) against an input file.", days.Registered()),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := os.ReadFile(input)
			if err != nil {
				log.Errorw("reading input", "path", input, "error", err)

				return err
			}

			answer, err := days.Solve(day, part, string(raw))
			if err != nil {
				log.Errorw("solving failed", "day", day, "part", part, "error", err)

				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "day %d part %d: %d\n", day, part, answer)

			return nil
		},
	}

	cmd.Flags().IntVar(&day, "day", 0, "puzzle day to solve (required)")
	cmd.Flags().IntVar(&part, "part", 1, "puzzle part: 1 or 2")
	cmd.Flags().StringVar(&input, "input", "", "path to the puzzle input file (required)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "solvekit: logger init:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger.Sugar()).Execute(); err != nil {
		os.Exit(1)
	}
}
