// Package mathutil provides closed-form helpers used when deriving pipeline
// parameters: n-ball geometry and sample-spacing statistics.
package mathutil

import (
	"fmt"
	"math"
)

// Factorial returns k! for k >= 0 as a float64.
func Factorial(k int) float64 {
	result := 1.0
	for i := 2; i <= k; i++ {
		result *= float64(i)
	}
	return result
}

// DoubleFactorial returns n!! = n·(n-2)·(n-4)··· for n >= 0.
// For odd n this is the product 1·3·5···n.
func DoubleFactorial(n int) float64 {
	result := 1.0
	for i := n; i > 1; i -= 2 {
		result *= float64(i)
	}
	return result
}

// NBallRadius returns the radius of the n-dimensional ball whose volume
// equals volume.
//
// With k = floor(n/2):
//
//	n odd:  r = (n!! · V / (2^(k+1) · π^k)) ^ (1/(2k+1))
//	n even: r = (k! · V) ^ (1/(2k)) / √π
//
// For n = 2 this collapses to r = √(V/π), for n = 1 to r = V/2.
func NBallRadius(n int, volume float64) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("dimensionality must be at least 1, got %d", n)
	}
	if volume < 0 || math.IsNaN(volume) || math.IsInf(volume, 0) {
		return 0, fmt.Errorf("volume must be finite and non-negative, got %v", volume)
	}

	k := n / nBallEvenDivisor
	if n%2 != 0 {
		num := DoubleFactorial(n) * volume
		den := math.Pow(nBallOddBase, float64(k+1)) * math.Pow(math.Pi, float64(k))
		return math.Pow(num/den, 1/float64(2*k+1)), nil
	}

	return math.Pow(Factorial(k)*volume, 1/float64(2*k)) / math.Sqrt(math.Pi), nil
}

// NBallVolume returns the volume of an n-ball of radius r. It is the inverse
// of NBallRadius and is mostly useful for checking it.
func NBallVolume(n int, r float64) float64 {
	half := float64(n) / nBallEvenDivisor
	return math.Pow(math.Pi, half) / math.Gamma(half+1) * math.Pow(r, float64(n))
}
