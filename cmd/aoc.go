package cmd

import (
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/runner"
	"github.com/lance6716/aoc-circuits/pkg/solve"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		inputDir    string
		connections int
		reportFile  string
		logFile     string
		saveAnswers bool
	)

	rootCmd := &cobra.Command{
		Use:   "aoc [day...]",
		Short: "Solve Advent of Code puzzles from ./inputs/NN.txt",
		Long: "Solve Advent of Code puzzles. Each day reads its input from NN.txt in " +
			"the input directory. Without arguments every implemented day is solved.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, 0, len(args))
			for _, arg := range args {
				day, err := strconv.Atoi(arg)
				if err != nil || day <= 0 {
					return errors.Errorf("invalid day %q", arg)
				}
				days = append(days, day)
			}
			_, err := runner.Run(cmd.Context(), &runner.Config{
				Days:        days,
				InputDir:    inputDir,
				Connections: connections,
				ReportFile:  reportFile,
				SaveAnswers: saveAnswers,
				Log:         runner.Log{Filename: logFile},
			}, cmd.OutOrStdout())
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&inputDir, "input-dir", "i", "inputs", "directory holding the NN.txt inputs")
	rootCmd.PersistentFlags().IntVarP(&connections, "connections", "k", solve.DefaultConnections, "number of shortest connections applied by day 8 part 1")
	rootCmd.PersistentFlags().StringVar(&reportFile, "report", "", "write a text report to this file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&saveAnswers, "save-answers", false, "save answers under <input-dir>/answers")
	return rootCmd
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
