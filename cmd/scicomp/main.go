// SPDX-License-Identifier: MIT

// Command scicomp is a small front end over the matrix and quadrature
// packages: it solves tridiagonal systems read from YAML/JSON files and runs
// the one-point Gauss rule and the adaptive 2-D integrator on named functions.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("scicomp failed")
		os.Exit(1)
	}
}
