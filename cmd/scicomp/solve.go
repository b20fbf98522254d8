// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rabbou/ScientificComputing/matrix"
)

type solveOpts struct {
	file             string
	render           bool
	check            bool
	requireDominance bool
	pivotTol         float64
	matchTol         float64
}

type solveResult struct {
	N              int       `json:"n"`
	X              []float64 `json:"x"`
	EliminationOps int       `json:"eliminationOps"`
	Residual       *float64  `json:"residual,omitempty"`
	MatchesWant    *bool     `json:"matchesSolution,omitempty"`
	Matrix         string    `json:"matrix,omitempty"`
}

func newSolveCommand(a *app) *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a tridiagonal system read from a YAML or JSON file",
		Long: `Solve C·x = r with the Thomas algorithm.

The system file holds the three bands of C and either the right-hand side
(rhs) or a known solution, in which case rhs is computed as C·solution.`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, opts)
		}),
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "System file (YAML or JSON); - reads stdin")
	cmd.Flags().BoolVar(&opts.render, "render", false, "Include the dense rendering of C")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Report the residual ‖C·x − r‖∞")
	cmd.Flags().BoolVar(&opts.requireDominance, "require-dominance", false, "Reject systems that are not diagonally dominant")
	cmd.Flags().Float64Var(&opts.pivotTol, "pivot-tol", matrix.DefaultPivotTolerance, "Treat pivots with |p| <= tol as zero")
	cmd.Flags().Float64Var(&opts.matchTol, "match-tol", 1e-9, "Relative and absolute tolerance when comparing against a given solution")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, opts solveOpts) error {
	log := a.log.WithFields(logrus.Fields{"op": "solve", "file": opts.file})

	sys, err := readSystem(opts.file, cmd.InOrStdin())
	if err != nil {
		a.metrics.solves.WithLabelValues(resultError).Inc()
		return err
	}
	m, rhs := sys.m, sys.rhs
	log = log.WithField("n", m.N())
	a.metrics.systemSize.Observe(float64(m.N()))

	var stats matrix.SolveStats
	solveOptions := []matrix.Option{matrix.WithStats(&stats)}
	if opts.requireDominance {
		solveOptions = append(solveOptions, matrix.WithRequireDiagonalDominance())
	}
	if opts.pivotTol != matrix.DefaultPivotTolerance {
		if !(opts.pivotTol >= 0) || math.IsInf(opts.pivotTol, 1) {
			return fmt.Errorf("--pivot-tol must be finite and >= 0, got %g", opts.pivotTol)
		}
		solveOptions = append(solveOptions, matrix.WithPivotTolerance(opts.pivotTol))
	}

	start := time.Now()
	x, err := matrix.SolveTridiagonal(m, rhs, solveOptions...)
	if err != nil {
		result := resultError
		if errors.Is(err, matrix.ErrSingularPivot) {
			result = resultSingular
		}
		a.metrics.solves.WithLabelValues(result).Inc()
		log.WithError(err).Warn("solve failed")

		return err
	}
	a.metrics.solves.WithLabelValues(resultOK).Inc()
	log.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
		"ops":     stats.EliminationOps(),
	}).Info("solved")

	res := solveResult{N: m.N(), X: x, EliminationOps: stats.EliminationOps()}
	if opts.check {
		r, err := matrix.Residual(m, x, rhs)
		if err != nil {
			return err
		}
		res.Residual = &r
	}
	if sys.want != nil {
		ok, err := matrix.AllClose(x, sys.want, opts.matchTol, opts.matchTol)
		if err != nil {
			return err
		}
		res.MatchesWant = &ok
		if !ok {
			log.Warn("solution differs from the expected one")
		}
	}
	if opts.render {
		res.Matrix = matrix.Render(m)
	}

	return a.emit(cmd.OutOrStdout(), res, res.writeText)
}

func (r solveResult) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "n: %d\n", r.N)
	fmt.Fprintf(&b, "x: %s\n", formatVec(r.X))
	fmt.Fprintf(&b, "elimination ops: %d\n", r.EliminationOps)
	if r.Residual != nil {
		fmt.Fprintf(&b, "residual: %g\n", *r.Residual)
	}
	if r.MatchesWant != nil {
		fmt.Fprintf(&b, "matches solution: %v\n", *r.MatchesWant)
	}
	if r.Matrix != "" {
		b.WriteString("matrix:\n")
		b.WriteString(r.Matrix)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// formatVec prints v as "[a b c]" with ten significant digits.
func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 10, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
