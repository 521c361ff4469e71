package linear

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linefit/core/model"
	"github.com/YuminosukeSato/linefit/core/parallel"
	"github.com/YuminosukeSato/linefit/pkg/errors"
	"github.com/YuminosukeSato/linefit/pkg/log"
)

// FitResult は推定結果
type FitResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// Estimator は1変数の最小二乗推定器
//
// サンプルは構築時にコピーされ、以後変更されない。
// Calculate() を呼ぶまで SlopeIntercept() と RSquared() は 0 を返す。
type Estimator struct {
	model.BaseEstimator

	samples SampleSet
	result  FitResult

	logger            log.Logger
	parallelThreshold int
}

// New は samples のコピーを保持する推定器を作成する
//
// 検証は行わない。x が全て等しい場合などは Calculate() の結果が NaN/Inf になる。
// 厳密な検証が必要な場合は事前に Validate を呼ぶこと。
func New(samples SampleSet, opts ...Option) *Estimator {
	e := &Estimator{
		samples:           samples.Clone(),
		parallelThreshold: parallel.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.GetLogger()
	}
	e.logger = e.logger.With(log.ComponentKey, "linear", log.ModelNameKey, "Estimator")
	return e
}

// Calculate は傾き・切片・決定係数を計算してキャッシュする
//
// 正規方程式の閉形式:
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − Σx·Σx)
//	intercept = (Σy − slope·Σx) / n
//
// 和は入力順に左から一度だけ累積する。分母が0でも例外にはせず NaN/Inf を返す。
func (e *Estimator) Calculate() {
	start := time.Now()

	var xSum, ySum, xySum, xxSum float64
	for _, p := range e.samples {
		xSum += p.X
		ySum += p.Y
		xySum += p.X * p.Y
		xxSum += p.X * p.X
	}
	n := float64(len(e.samples))

	slope := (n*xySum - xSum*ySum) / (n*xxSum - xSum*xSum)
	intercept := (ySum - slope*xSum) / n

	e.result = FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared(e.samples, slope, intercept, ySum/n),
	}
	prev := e.State()
	e.SetFitted()

	e.logger.Debug("fit calculated",
		log.OperationKey, log.OperationCalculate,
		log.PreviousStateKey, prev.String(),
		log.SamplesKey, len(e.samples),
		log.SlopeKey, e.result.Slope,
		log.InterceptKey, e.result.Intercept,
		log.R2ScoreKey, e.result.RSquared,
		log.DurationMsKey, log.Since(start),
	)

	if err := errors.CheckNumericalStability("linear.Calculate",
		[]float64{e.result.Slope, e.result.Intercept}); err != nil {
		errors.Warn(err)
	}
	if errors.CheckScalar("linear.Calculate", e.result.RSquared) != nil {
		errors.Warn(errors.NewUndefinedMetricWarning("r_squared",
			"zero total sum of squares or non-finite fit", e.result.RSquared))
	}
}

// rSquared は R² = 1 − SS_res/SS_tot を返す
// SS_tot が 0（y が全て等しい）のときは NaN/Inf になる
func rSquared(samples SampleSet, slope, intercept, yMean float64) float64 {
	var ssRes, ssTot float64
	for _, p := range samples {
		res := p.Y - (slope*p.X + intercept)
		ssRes += res * res
		dev := p.Y - yMean
		ssTot += dev * dev
	}
	return 1 - ssRes/ssTot
}

// SlopeIntercept は最後に計算された (傾き, 切片) を返す。未計算なら (0, 0)
func (e *Estimator) SlopeIntercept() (float64, float64) {
	return e.result.Slope, e.result.Intercept
}

// RSquared は最後に計算された決定係数を返す。未計算なら 0
func (e *Estimator) RSquared() float64 {
	return e.result.RSquared
}

// Result は計算結果を返す
// 未計算の場合は 0 の値と区別できるよう NotFittedError を返す
func (e *Estimator) Result() (FitResult, error) {
	if !e.IsFitted() {
		return FitResult{}, errors.NewNotFittedError("Estimator", "Result")
	}
	return e.result, nil
}

// Samples は保持しているサンプルのコピーを返す
func (e *Estimator) Samples() SampleSet {
	return e.samples.Clone()
}

// Predict は y = slope·x + intercept を返す
func (e *Estimator) Predict(x float64) float64 {
	return e.result.Slope*x + e.result.Intercept
}

// Predictions は各サンプルの予測値ベクトルを返す
func (e *Estimator) Predictions() *mat.VecDense {
	return e.fill(func(p Sample) float64 {
		return e.Predict(p.X)
	})
}

// Residuals は各サンプルの残差 y − ŷ のベクトルを返す
func (e *Estimator) Residuals() *mat.VecDense {
	return e.fill(func(p Sample) float64 {
		return p.Y - e.Predict(p.X)
	})
}

// Targets は観測値 y のベクトルを返す
func (e *Estimator) Targets() *mat.VecDense {
	return e.fill(func(p Sample) float64 {
		return p.Y
	})
}

// fill は要素ごとに独立した計算なので、並列化しても結果は逐次と一致する
func (e *Estimator) fill(f func(Sample) float64) *mat.VecDense {
	n := len(e.samples)
	if n == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, n)
	parallel.For(n, e.parallelThreshold, func(i int) {
		data[i] = f(e.samples[i])
	})
	return mat.NewVecDense(n, data)
}
