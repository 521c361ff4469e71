package model

import "testing"

func TestBaseEstimatorLifecycle(t *testing.T) {
	var e BaseEstimator

	if e.IsFitted() {
		t.Fatal("zero value should be not fitted")
	}
	if e.State().String() != "not_fitted" {
		t.Errorf("State() = %v", e.State())
	}

	e.SetFitted()
	if !e.IsFitted() || e.State() != Fitted {
		t.Error("SetFitted should mark the estimator fitted")
	}

	if EstimatorState(7).String() != "unknown" {
		t.Error("unknown states should stringify as unknown")
	}
}
