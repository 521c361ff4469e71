package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     *mat.VecDense
		yPred     *mat.VecDense
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "perfect prediction",
			yTrue:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			yPred:     mat.NewVecDense(5, []float64{1.0, 2.0, 3.0, 4.0, 5.0}),
			want:      0.0,
			tolerance: 1e-10,
		},
		{
			name:      "simple case",
			yTrue:     mat.NewVecDense(4, []float64{1.0, 2.0, 3.0, 4.0}),
			yPred:     mat.NewVecDense(4, []float64{1.5, 2.5, 2.5, 3.5}),
			want:      0.25, // (0.25 * 4) / 4
			tolerance: 1e-10,
		},
		{
			name:      "larger errors",
			yTrue:     mat.NewVecDense(3, []float64{10.0, 20.0, 30.0}),
			yPred:     mat.NewVecDense(3, []float64{12.0, 18.0, 33.0}),
			want:      17.0 / 3.0, // (4 + 4 + 9) / 3
			tolerance: 1e-10,
		},
		{
			name:    "dimension mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1.0, 2.0, 3.0}),
			yPred:   mat.NewVecDense(2, []float64{1.0, 2.0}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   &mat.VecDense{},
			yPred:   &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)

			if (err != nil) != tt.wantErr {
				t.Errorf("MSE() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("MSE() = %v, want %v (tolerance: %v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	_, err := MAE(mat.NewVecDense(2, []float64{1, 2}), mat.NewVecDense(1, []float64{1}))
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError, got %v", err)
	}

	_, err = RMSE(&mat.VecDense{}, &mat.VecDense{})
	var valErr *errors.ValueError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValueError, got %v", err)
	}

	if _, err := R2Score(nil, nil); err == nil {
		t.Error("expected error for nil vectors")
	}
}

func TestRMSEAndMAE(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, -1, 1, -1})
	yPred := mat.NewVecDense(4, []float64{0, 0, 0, 0})

	rmse, err := RMSE(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(rmse-1) > 1e-12 {
		t.Errorf("RMSE() = %v, want 1", rmse)
	}

	yPred = mat.NewVecDense(4, []float64{3, 0, 0, 1})
	mae, err := MAE(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(mae-1.5) > 1e-12 { // (2 + 1 + 1 + 2) / 4
		t.Errorf("MAE() = %v, want 1.5", mae)
	}
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name  string
		yTrue []float64
		yPred []float64
		want  float64
	}{
		{"perfect", []float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}, 1.0},
		{"mean predictor", []float64{1, 2, 3, 4}, []float64{2.5, 2.5, 2.5, 2.5}, 0.0},
		{"half explained", []float64{1, -1, 3, 1}, []float64{0, 0, 2, 2}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.yTrue)
			got, err := R2Score(mat.NewVecDense(n, tt.yTrue), mat.NewVecDense(n, tt.yPred))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("R2Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestR2ScoreNoVariance(t *testing.T) {
	var warned []error
	prev := errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(prev)

	y := mat.NewVecDense(3, []float64{4, 4, 4})

	got, err := R2Score(y, y)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("R2Score() = %v, want NaN", got)
	}

	got, _ = R2Score(y, mat.NewVecDense(3, []float64{4, 5, 4}))
	if !math.IsInf(got, -1) {
		t.Errorf("R2Score() = %v, want -Inf", got)
	}
	if len(warned) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(warned))
	}
}

func TestEvaluate(t *testing.T) {
	yTrue := mat.NewVecDense(4, []float64{1, -1, 3, 1})
	yPred := mat.NewVecDense(4, []float64{0, 0, 2, 2})

	r, err := Evaluate(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if r.MSE != 1 || r.RMSE != 1 || r.MAE != 1 {
		t.Errorf("unexpected report: %+v", r)
	}
	if math.Abs(r.R2-0.5) > 1e-12 {
		t.Errorf("R2 = %v", r.R2)
	}

	if _, err := Evaluate(yTrue, mat.NewVecDense(1, []float64{0})); err == nil {
		t.Error("expected dimension error")
	}
}

func BenchmarkMSE(b *testing.B) {
	const n = 10000
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, float64(i))
		yPred.SetVec(i, float64(i)+0.5)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MSE(yTrue, yPred)
	}
}
