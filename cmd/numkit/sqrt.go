// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/complexnum"
)

var sqrtCmd = &cobra.Command{
	Use:   "sqrt X [IM]",
	Short: "Principal complex square root of X (+ IM·i)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSqrt,
}

func init() {
	rootCmd.AddCommand(sqrtCmd)
}

func runSqrt(cmd *cobra.Command, args []string) error {
	re, err := parseFloat("re", args[0])
	if err != nil {
		return err
	}
	var im float64
	if len(args) == 2 {
		if im, err = parseFloat("im", args[1]); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), complexnum.Format(complexnum.Sqrt(complex(re, im))))
	return nil
}
