// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/batch"
)

var (
	flagConcurrency int
)

var evalCmd = &cobra.Command{
	Use:   "eval FILE",
	Short: "Evaluate every job in a YAML job file",
	Long: `Evaluate every job in a YAML job file and print one "name: value" line per job
in file order. Exits non-zero when any job fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().IntVarP(&flagConcurrency, "concurrency", "c", 0, "Max jobs evaluated at once (0 = file setting or GOMAXPROCS)")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	f, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	r := batch.NewRunner(batch.WithLogger(logger), batch.WithConcurrency(flagConcurrency))
	results, err := r.RunFile(cmd.Context(), f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		fmt.Fprintln(out, res)
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}

	return nil
}
