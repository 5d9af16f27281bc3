// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numkit/vector"
)

// parseInt32 parses a decimal int32 argument.
func parseInt32(name, s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return int32(v), nil
}

// parseInt64 parses a decimal int64 argument.
func parseInt64(name, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// parseFloat parses a float64 argument.
func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// parseFloats splits a comma-separated list of floats.
func parseFloats(name, s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := parseFloat(fmt.Sprintf("%s[%d]", name, i), p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseVec3 parses "x,y,z" into an integer 3-vector.
func parseVec3(name, s string) (vector.Vec3, error) {
	parts := strings.Split(s, ",")
	xs := make([]int64, len(parts))
	for i, p := range parts {
		v, err := parseInt64(fmt.Sprintf("%s[%d]", name, i), p)
		if err != nil {
			return vector.Vec3{}, err
		}
		xs[i] = v
	}
	v, err := vector.NewVec3(xs)
	if err != nil {
		return vector.Vec3{}, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// parseVec3f parses "x,y,z" into a float 3-vector.
func parseVec3f(name, s string) (vector.Vec3f, error) {
	xs, err := parseFloats(name, s)
	if err != nil {
		return vector.Vec3f{}, err
	}
	v, err := vector.NewVec3f(xs)
	if err != nil {
		return vector.Vec3f{}, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// parseRows parses "a,b;c,d" into matrix rows.
func parseRows(s string) ([][]float64, error) {
	var rows [][]float64
	for i, r := range strings.Split(s, ";") {
		if strings.TrimSpace(r) == "" {
			continue
		}
		row, err := parseFloats(fmt.Sprintf("row %d", i), r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
