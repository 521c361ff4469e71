// Package linefit fits a straight line to two-dimensional samples by ordinary
// least squares and renders the result.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/YuminosukeSato/linefit/linear"
//	)
//
//	func main() {
//	    est := linear.New(linear.SampleSet{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
//	    est.Calculate()
//
//	    slope, intercept := est.SlopeIntercept()
//	    fmt.Println(slope, intercept, est.RSquared())
//	}
//
// # Packages
//
//   - linear: the Estimator (closed-form OLS and R²)
//   - stats: sample mean, variance and covariance
//   - metrics: MSE, RMSE, MAE and R² over gonum vectors
//   - render: scatter plot with the fitted line, via gonum/plot
//   - dataset: CSV sample loading
//   - config: YAML/env configuration for the command-line tool
//   - pkg/errors, pkg/log: error types and structured logging
//
// Degenerate inputs (constant x, constant y, fewer than two samples) are not
// errors: they yield NaN or ±Inf exactly as IEEE-754 arithmetic does. Callers
// that need strict checking use linear.Validate before fitting.
package linefit
