// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/batch"
	"github.com/katalvlaran/numkit/matrix"
)

var (
	flagIdentity int
	flagPivotTol float64
)

var detCmd = &cobra.Command{
	Use:   "det [ROWS]",
	Short: `Determinant of a square matrix given as "a,b;c,d" or --identity N`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDet,
}

func init() {
	detCmd.Flags().IntVar(&flagIdentity, "identity", 0, "Use the N×N identity matrix instead of ROWS")
	detCmd.Flags().Float64Var(&flagPivotTol, "pivot-tol", matrix.DefaultPivotTolerance, "Treat pivots with |p| <= tol as zero")

	rootCmd.AddCommand(detCmd)
}

func runDet(cmd *cobra.Command, args []string) error {
	var (
		m   *matrix.Dense
		err error
	)
	if flagPivotTol < 0 || math.IsNaN(flagPivotTol) || math.IsInf(flagPivotTol, 0) {
		return fmt.Errorf("det: --pivot-tol must be finite and >= 0, got %g", flagPivotTol)
	}
	switch {
	case flagIdentity > 0 && len(args) > 0:
		return errors.New("det: pass either ROWS or --identity, not both")
	case flagIdentity > batch.MaxDetDim:
		return fmt.Errorf("det: --identity %d exceeds the %d×%d limit", flagIdentity, batch.MaxDetDim, batch.MaxDetDim)
	case flagIdentity > 0:
		m, err = matrix.NewIdentity(flagIdentity)
	case len(args) == 1:
		var rows [][]float64
		if rows, err = parseRows(args[0]); err != nil {
			return err
		}
		if len(rows) > batch.MaxDetDim {
			return fmt.Errorf("det: %d rows exceed the %d×%d limit", len(rows), batch.MaxDetDim, batch.MaxDetDim)
		}
		m, err = matrix.NewFromRows(rows)
	default:
		return errors.New("det: ROWS or --identity is required")
	}
	if err != nil {
		return err
	}

	d, err := matrix.Det(m, matrix.WithPivotTolerance(flagPivotTol))
	if err != nil {
		return err
	}
	logger.Debug("determinant", "rows", m.Rows(), "det", d)

	fmt.Fprintf(cmd.OutOrStdout(), "%g\n", d)
	return nil
}
