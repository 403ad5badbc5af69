// SPDX-License-Identifier: MIT
// Package: gridquad/grid
//
// export.go — row-wise text persistence for quadrature grids.
//
// The on-disk layout mirrors the classic numpy savetxt convention used by
// quadrature databases: '#'-prefixed header lines, then one row per sample
// with a right-aligned integer index, the native coordinates and finally
// the weight, all numeric columns in %25.16e. Writing and re-reading a
// grid reproduces every float64 bit-exactly.

package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SaveTxt writes points and weights to w, one row per sample.
// header lines (may be empty) are emitted first, each prefixed with "# ".
// Returns ErrShapeMismatch when len(points) != len(weights) or when point
// rows have uneven width.
//
// Complexity: O(n·d) time, O(1) extra space.
func SaveTxt(w io.Writer, header []string, points [][]float64, weights []float64) error {
	if len(points) != len(weights) {
		return fmt.Errorf("SaveTxt: %d points vs %d weights: %w",
			len(points), len(weights), ErrShapeMismatch)
	}

	bw := bufio.NewWriter(w)
	for _, line := range header {
		if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
			return fmt.Errorf("SaveTxt: %w", err)
		}
	}

	dim := -1 // established by the first row
	for i, p := range points {
		if dim < 0 {
			dim = len(p)
		} else if len(p) != dim {
			return fmt.Errorf("SaveTxt: row %d has %d columns, want %d: %w",
				i, len(p), dim, ErrShapeMismatch)
		}
		if _, err := fmt.Fprintf(bw, "%10d", i+1); err != nil {
			return fmt.Errorf("SaveTxt: %w", err)
		}
		for _, c := range p {
			if _, err := fmt.Fprintf(bw, "%25.16e", c); err != nil {
				return fmt.Errorf("SaveTxt: %w", err)
			}
		}
		if _, err := fmt.Fprintf(bw, "%25.16e\n", weights[i]); err != nil {
			return fmt.Errorf("SaveTxt: %w", err)
		}
	}

	return bw.Flush()
}

// LoadTxt parses a grid previously written by SaveTxt. Header lines
// (prefix '#') and blank lines are skipped; every data row must carry the
// index, a fixed number of coordinates and the trailing weight.
// Returns ErrBadFormat on any malformed row.
//
// Complexity: O(n·d) time, O(n·d) space.
func LoadTxt(r io.Reader) (points [][]float64, weights []float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	width := -1 // number of fields per data row, established by the first
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if width < 0 {
			width = len(fields)
			if width < 3 { // index + at least one coordinate + weight
				return nil, nil, fmt.Errorf("LoadTxt: line %d has %d fields: %w",
					lineNo, width, ErrBadFormat)
			}
		} else if len(fields) != width {
			return nil, nil, fmt.Errorf("LoadTxt: line %d has %d fields, want %d: %w",
				lineNo, len(fields), width, ErrBadFormat)
		}

		row := make([]float64, 0, width-2)
		for _, f := range fields[1 : width-1] {
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("LoadTxt: line %d: %q: %w", lineNo, f, ErrBadFormat)
			}
			row = append(row, v)
		}
		wv, perr := strconv.ParseFloat(fields[width-1], 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("LoadTxt: line %d: %q: %w", lineNo, fields[width-1], ErrBadFormat)
		}
		points = append(points, row)
		weights = append(weights, wv)
	}
	if serr := sc.Err(); serr != nil {
		return nil, nil, fmt.Errorf("LoadTxt: %w", serr)
	}

	return points, weights, nil
}

// WriteFile saves a grid to path via SaveTxt, creating or truncating the
// file. The header convention matches SaveTxt.
func WriteFile(path string, header []string, points [][]float64, weights []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = SaveTxt(f, header, points, weights); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// ReadFile loads a grid from path via LoadTxt.
func ReadFile(path string) (points [][]float64, weights []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return LoadTxt(f)
}
