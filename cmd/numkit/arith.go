// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/scalar"
	"github.com/katalvlaran/numkit/series"
)

var (
	flagSumKind string
)

var plusCmd = &cobra.Command{
	Use:   "plus X Y",
	Short: "Add two int32 values with wrapping overflow",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlus,
}

var absCmd = &cobra.Command{
	Use:   "abs X",
	Short: "Absolute value of an int32",
	Args:  cobra.ExactArgs(1),
	RunE:  runAbs,
}

var sumCmd = &cobra.Command{
	Use:   "sum N",
	Short: "Evaluate a series up to N",
	Long: `Evaluate a series up to N. --kind selects the series:
  triangular  closed form n(n+1)/2 (float)
  iter        0 + 1 + ... + (n-1)
  odd         sum of 2i-1 for i in [1, n]
  factorial   n!`,
	Args: cobra.ExactArgs(1),
	RunE: runSum,
}

func init() {
	sumCmd.Flags().StringVar(&flagSumKind, "kind", "iter", "Series kind: triangular, iter, odd, factorial")

	rootCmd.AddCommand(plusCmd, absCmd, sumCmd)
}

func runPlus(cmd *cobra.Command, args []string) error {
	x, err := parseInt32("x", args[0])
	if err != nil {
		return err
	}
	y, err := parseInt32("y", args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), scalar.Plus(x, y))
	return nil
}

func runAbs(cmd *cobra.Command, args []string) error {
	x, err := parseInt32("x", args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), scalar.Abs(x))
	return nil
}

func runSum(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagSumKind == "triangular" {
		n, err := parseFloat("n", args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g\n", series.SumToN(n))
		return nil
	}

	n, err := parseInt64("n", args[0])
	if err != nil {
		return err
	}
	switch flagSumKind {
	case "iter":
		fmt.Fprintln(out, series.IterSum(n))
	case "odd":
		fmt.Fprintln(out, series.IterSum2(n))
	case "factorial":
		fmt.Fprintln(out, series.Factorial(n))
	default:
		return fmt.Errorf("unknown --kind %q: want triangular, iter, odd or factorial", flagSumKind)
	}

	return nil
}
