package regression

import (
	"fmt"
	"math"
	"testing"
)

func generateBenchmarkPoints(size int) []Point {
	points := make([]Point, size)
	for i := range size {
		x := float64(i + 1)
		points[i] = Point{X: x, Y: 10 + 50/x + 0.1*math.Sin(x)}
	}

	return points
}

func BenchmarkNewLinearEstimator(b *testing.B) {
	for _, size := range []int{10, 100, 1000, 5000} {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			points := generateBenchmarkPoints(size)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = NewLinearEstimator(points)
			}
		})
	}
}

func BenchmarkLinearEstimatorPredict(b *testing.B) {
	est, err := NewLinearEstimator(generateBenchmarkPoints(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = est.Predict(float64(i))
	}
}

func BenchmarkAnalyze(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("Points_%d", size), func(b *testing.B) {
			points := generateBenchmarkPoints(size)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = Analyze(points)
			}
		})
	}
}
