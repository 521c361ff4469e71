// Attribute keys shared by every component that logs.
//
// Keys follow a hierarchical naming convention ("model.name", "data.samples")
// so that log output can be filtered by category.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the estimator type, e.g. "Estimator".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: OperationCalculate, OperationRender, OperationLoad.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package doing the work.
	// Examples: "linear", "render", "config"
	ComponentKey = "ml.component"

	// PreviousStateKey is the estimator state before the operation,
	// "not_fitted" on a first Calculate and "fitted" on a recalculation.
	PreviousStateKey = "model.previous_state"
)

// Data Shape
const (
	// SamplesKey is the number of (x, y) samples.
	SamplesKey = "data.samples"

	// SourceKey names where samples came from: a file path or "builtin".
	SourceKey = "data.source"
)

// Fit results
const (
	// SlopeKey records the fitted slope.
	SlopeKey = "fit.slope"

	// InterceptKey records the fitted intercept.
	InterceptKey = "fit.intercept"

	// R2ScoreKey records the coefficient of determination.
	// Range typically (-∞, 1.0], NaN when y has no variance.
	R2ScoreKey = "metrics.r2_score"

	// MSEKey, RMSEKey and MAEKey record residual error metrics.
	MSEKey  = "metrics.mse"
	RMSEKey = "metrics.rmse"
	MAEKey  = "metrics.mae"
)

// Performance and output
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// OutputPathKey records the path of a rendered image.
	OutputPathKey = "output.path"
)

// Error Context
const (
	// ErrorTypeKey categorizes the error, e.g. "ValidationError".
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information from cockroachdb/errors.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationCalculate = "calculate"
	OperationPredict   = "predict"
	OperationRender    = "render"
	OperationLoad      = "load"
)
