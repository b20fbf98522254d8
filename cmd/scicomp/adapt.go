// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rabbou/ScientificComputing/quadrature"
)

type adaptOpts struct {
	integrand string
	rect      quadrature.Rect
	tol       float64
	maxDepth  int
}

type adaptResult struct {
	Integrand   string          `json:"integrand"`
	Rect        quadrature.Rect `json:"rect"`
	Value       float64         `json:"value"`
	Evaluations int             `json:"evaluations"`
	Cells       int             `json:"cells"`
	MaxDepth    int             `json:"maxDepth"`
	Converged   bool            `json:"converged"`
}

func newAdapt2DCommand(a *app) *cobra.Command {
	opts := adaptOpts{}

	cmd := &cobra.Command{
		Use:   "adapt2d",
		Short: "Integrate a named 2-D function with the adaptive midpoint rule",
		Long: fmt.Sprintf(`Integrate f over [x0, x1] × [y0, y1], subdividing cells into quadrants
until the coarse and fine midpoint estimates agree within tol (tol/4 per level).

Integrands: %s`, strings.Join(quadrature.Integrand2DNames(), ", ")),
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.adapt2D(cmd, opts)
		}),
	}
	cmd.Flags().StringVar(&opts.integrand, "integrand", "gaussian-bump", "Integrand f(x, y)")
	cmd.Flags().Float64Var(&opts.rect.X0, "x0", -1, "Lower x bound")
	cmd.Flags().Float64Var(&opts.rect.X1, "x1", 1, "Upper x bound")
	cmd.Flags().Float64Var(&opts.rect.Y0, "y0", -1, "Lower y bound")
	cmd.Flags().Float64Var(&opts.rect.Y1, "y1", 1, "Upper y bound")
	cmd.Flags().Float64Var(&opts.tol, "tol", 1e-4, "Root acceptance tolerance")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 10, "Maximum subdivision depth")

	return cmd
}

func (a *app) adapt2D(cmd *cobra.Command, opts adaptOpts) error {
	f, err := quadrature.Integrand2D(opts.integrand)
	if err != nil {
		return err
	}
	if !(opts.tol > 0) {
		return fmt.Errorf("--tol must be > 0, got %g", opts.tol)
	}
	if opts.maxDepth < 1 {
		return fmt.Errorf("--max-depth must be >= 1, got %d", opts.maxDepth)
	}

	start := time.Now()
	r, err := quadrature.Integrate2D(f, opts.rect,
		quadrature.WithTolerance(opts.tol), quadrature.WithMaxDepth(opts.maxDepth))
	a.metrics.evaluations.WithLabelValues("adapt2d").Add(float64(r.Evaluations))
	if err != nil {
		return err
	}

	log := a.log.WithFields(logrus.Fields{
		"op":          "adapt2d",
		"evaluations": r.Evaluations,
		"elapsed":     time.Since(start),
	})
	if !r.Converged {
		log.Warnf("depth cap %d reached before tolerance %g", opts.maxDepth, opts.tol)
	} else {
		log.Info("integrated")
	}

	res := adaptResult{
		Integrand:   opts.integrand,
		Rect:        opts.rect,
		Value:       r.Value,
		Evaluations: r.Evaluations,
		Cells:       r.Cells,
		MaxDepth:    r.MaxDepth,
		Converged:   r.Converged,
	}

	return a.emit(cmd.OutOrStdout(), res, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "value: %.10g\nevaluations: %d\ncells: %d\nmax depth: %d\nconverged: %v\n",
			res.Value, res.Evaluations, res.Cells, res.MaxDepth, res.Converged)

		return err
	})
}
