// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numkit/vector"
)

var dotCmd = &cobra.Command{
	Use:   "dot A B",
	Short: "Dot product of two integer 3-vectors given as x,y,z",
	Args:  cobra.ExactArgs(2),
	RunE:  runDot,
}

var crossCmd = &cobra.Command{
	Use:   "cross A B",
	Short: "Cross product of two integer 3-vectors given as x,y,z",
	Args:  cobra.ExactArgs(2),
	RunE:  runCross,
}

var lengthCmd = &cobra.Command{
	Use:   "length A",
	Short: "Integer length (floor of the Euclidean norm) of a 3-vector",
	Args:  cobra.ExactArgs(1),
	RunE:  runLength,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize A",
	Short: "Unit vector in the direction of a float 3-vector",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	rootCmd.AddCommand(dotCmd, crossCmd, lengthCmd, normalizeCmd)
}

func vecPair(args []string) (vector.Vec3, vector.Vec3, error) {
	a, err := parseVec3("a", args[0])
	if err != nil {
		return a, vector.Vec3{}, err
	}
	b, err := parseVec3("b", args[1])
	return a, b, err
}

func runDot(cmd *cobra.Command, args []string) error {
	a, b, err := vecPair(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), vector.Dot(a, b))
	return nil
}

func runCross(cmd *cobra.Command, args []string) error {
	a, b, err := vecPair(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), vector.Cross(a, b))
	return nil
}

func runLength(cmd *cobra.Command, args []string) error {
	a, err := parseVec3("a", args[0])
	if err != nil {
		return err
	}
	n, err := vector.LengthChecked(a)
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	a, err := parseVec3f("a", args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), vector.Normalize(a))
	return nil
}
