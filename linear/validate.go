package linear

import (
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/stats"
)

// Validate は推定が well-defined かどうかを検査する
//
// 推定器自身は呼ばない。厳密な入力検査が必要な呼び出し側のためのもの。
// サンプルが2未満、または x の分散が0の場合に ValidationError を返す。
func Validate(samples SampleSet) error {
	if len(samples) < 2 {
		return errors.NewValidationError("samples", "at least 2 samples are required", len(samples))
	}
	first := samples[0].X
	for _, p := range samples[1:] {
		if p.X != first {
			return nil
		}
	}
	return errors.NewValidationError("samples", "x values have zero variance", first)
}

// MomentSlopeIntercept は共分散と分散による別定式で傾きと切片を返す
//
//	slope     = cov(x, y) / var(x)
//	intercept = ȳ − slope·x̄
//
// 代数的には Calculate() と同じ値になる。
func MomentSlopeIntercept(samples SampleSet) (float64, float64, error) {
	xs, ys := samples.XS(), samples.YS()
	xMean, yMean := stats.Mean(xs), stats.Mean(ys)

	cov, err := stats.Covariance(xs, ys, xMean, yMean)
	if err != nil {
		return 0, 0, errors.Wrap(err, "moment slope")
	}
	slope := cov / stats.Variance(xs, xMean)
	return slope, yMean - slope*xMean, nil
}
