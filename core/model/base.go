// Package model holds state shared by estimators.
package model

// EstimatorState は推定器の計算状態を表す
type EstimatorState int

const (
	// NotFitted は Calculate() がまだ呼ばれていない状態
	NotFitted EstimatorState = iota
	// Fitted は結果がキャッシュされている状態
	Fitted
)

// String は状態名を返す
func (s EstimatorState) String() string {
	switch s {
	case NotFitted:
		return "not_fitted"
	case Fitted:
		return "fitted"
	default:
		return "unknown"
	}
}

// BaseEstimator は推定器に埋め込む状態管理用の構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は結果が計算済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// State は現在の状態を返す
func (e *BaseEstimator) State() EstimatorState {
	return e.state
}

// SetFitted は計算済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

