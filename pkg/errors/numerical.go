package errors

import (
	"math"
)

// CheckNumericalStability reports a NumericalInstabilityError when any of the
// values is NaN or ±Inf. It does not alter the values.
func CheckNumericalStability(operation string, values []float64) error {
	for _, v := range values {
		if !IsFinite(v) {
			return NewNumericalInstabilityError(operation, values)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value.
func CheckScalar(operation string, value float64) error {
	return CheckNumericalStability(operation, []float64{value})
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
