package linear

// Sample は1つの観測値 (x, y)
type Sample struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// SampleSet は観測値の順序付き列。順序は表示にのみ影響し、計算結果には影響しない
type SampleSet []Sample

// Len はサンプル数を返す
func (s SampleSet) Len() int {
	return len(s)
}

// XS は x の列を新しいスライスで返す
func (s SampleSet) XS() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
	}
	return xs
}

// YS は y の列を新しいスライスで返す
func (s SampleSet) YS() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.Y
	}
	return ys
}

// Clone は独立したコピーを返す
func (s SampleSet) Clone() SampleSet {
	if s == nil {
		return nil
	}
	out := make(SampleSet, len(s))
	copy(out, s)
	return out
}

// DemoSamples はコマンドラインツールの既定データセット
func DemoSamples() SampleSet {
	return SampleSet{
		{X: 1.0, Y: 2.0},
		{X: 2.0, Y: 4.0},
		{X: 3.0, Y: 5.0},
		{X: 4.0, Y: 4.0},
		{X: 5.0, Y: 5.0},
		{X: 5.0, Y: 4.0},
		{X: 1.5, Y: 2.5},
		{X: 3.2, Y: 4.8},
		{X: 4.8, Y: 5.3},
	}
}
