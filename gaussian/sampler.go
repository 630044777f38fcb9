package gaussian

import (
	"math"
	"math/rand/v2"
)

// Sampler draws normally distributed values from a random source.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler reading from src.
//
// Pass a seeded source such as rand.NewPCG for reproducible sequences.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Float64 returns a standard normal variate.
//
// It applies the Box-Muller transform sqrt(-2 ln u) * cos(2πv) to two
// uniform values u and v, redrawing either one while it is exactly zero.
func (s *Sampler) Float64() float64 {
	u := s.nonZero()
	v := s.nonZero()

	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// Normal returns a normal variate with the given mean and standard deviation.
func (s *Sampler) Normal(mean, deviation float64) float64 {
	return mean + deviation*s.Float64()
}

func (s *Sampler) nonZero() float64 {
	for {
		if v := s.rng.Float64(); v != 0 {
			return v
		}
	}
}
