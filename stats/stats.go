// Package stats は標本統計の基本関数を提供する。
//
// いずれも純粋関数で、推定器の閉形式OLSとは独立している。
// 入力が足りない場合はエラーにせず、IEEE-754 に従って NaN/Inf を返す。
package stats

import (
	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// Mean は算術平均を返す。空の入力では 0/0 = NaN になる。
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Covariance は標本共分散を返す（ベッセル補正、n−1 で割る）。
// x と y の長さが異なる場合は DimensionError を返す。
func Covariance(x, y []float64, xMean, yMean float64) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.NewDimensionError("stats.Covariance", len(x), len(y), 0)
	}

	var sum float64
	for i := range x {
		sum += (x[i] - xMean) * (y[i] - yMean)
	}
	return sum / (float64(len(x)) - 1), nil
}

// Variance は標本分散を返す（ベッセル補正、n−1 で割る）。
func Variance(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / (float64(len(values)) - 1)
}
