// Package main provides the gridquad binary: build quadrature grids
// from YAML method specifications, inspect them and export them as
// plain text.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gridquad/gridquad/geom"
	"github.com/gridquad/gridquad/rules"
)

const appName = "gridquad"

// specFile is the on-disk grid description.
type specFile struct {
	Geometry      string       `yaml:"geometry"`
	PolarSampling string       `yaml:"polar_sampling,omitempty"`
	Methods       []rules.Spec `yaml:"methods"`
}

// build loads a spec file and composes the quadrature it describes.
func build(path string) (*geom.Quadrature, *specFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read spec: %w", err)
	}
	var sf specFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, nil, fmt.Errorf("parse spec: %w", err)
	}

	var opts []geom.Option
	switch strings.ToLower(sf.PolarSampling) {
	case "", "cos":
	case "angle":
		opts = append(opts, geom.WithPolarSampling(geom.Angle))
	default:
		return nil, nil, fmt.Errorf("unknown polar_sampling %q (want cos or angle)", sf.PolarSampling)
	}

	var q *geom.Quadrature
	switch strings.ToLower(sf.Geometry) {
	case "rn":
		q, err = geom.Rn(sf.Methods, opts...)
	case "s2":
		q, err = geom.S2(sf.Methods, opts...)
	case "so3":
		q, err = geom.SO3(sf.Methods, opts...)
	default:
		return nil, nil, fmt.Errorf("unknown geometry %q (want rn, s2 or so3)", sf.Geometry)
	}
	if err != nil {
		return nil, nil, err
	}

	return q, &sf, nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName + " <command> <spec.yaml>",
		Short: "Multi-dimensional quadrature grids from YAML specs",
		Long: `gridquad composes quadrature grids on intervals, the unit sphere and
the rotation group from a YAML method specification, for example:

    geometry: so3
    methods:
      - method: lebedev
        degree: 5
      - method: trapz
        size: 6`,
		SilenceUsage: true,
	}

	cmd.AddCommand(infoCmd(), exportCmd())

	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <spec.yaml>",
		Short: "Resolve a spec and print grid metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, sf, err := build(args[0])
			if err != nil {
				return err
			}

			var wsum float64
			for _, w := range q.Weights() {
				wsum += w
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "geometry:   %s\n", strings.ToLower(sf.Geometry))
			fmt.Fprintf(out, "methods:    %s\n", strings.Join(q.Methods(), " x "))
			fmt.Fprintf(out, "size:       %d\n", q.Size())
			fmt.Fprintf(out, "shape:      %v\n", q.Shape())
			degrees := make([]string, len(q.Degrees()))
			for i, d := range q.Degrees() {
				if d == rules.DegreeNone {
					degrees[i] = "-"
				} else {
					degrees[i] = fmt.Sprintf("%d", d)
				}
			}
			fmt.Fprintf(out, "degrees:    %s\n", strings.Join(degrees, " "))
			fmt.Fprintf(out, "weight sum: %.16g\n", wsum)

			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <spec.yaml>",
		Short: "Compose a grid and write it as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, _, err := build(args[0])
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return q.SaveTxt(cmd.OutOrStdout())
			}

			return q.WriteFile(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
