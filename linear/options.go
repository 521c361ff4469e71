package linear

import (
	"github.com/YuminosukeSato/linefit/pkg/log"
)

// Option is a function that configures an Estimator
type Option func(*Estimator)

// WithLogger sets the logger used to report fits. Defaults to log.GetLogger().
func WithLogger(logger log.Logger) Option {
	return func(e *Estimator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParallelThreshold sets the sample count above which Predictions and
// Residuals are filled concurrently. Values <= 0 keep the default.
func WithParallelThreshold(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.parallelThreshold = n
		}
	}
}
