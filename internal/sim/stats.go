package sim

import (
	"math"
	"sort"
)

// Summary aggregates roll counts over a batch of games.
type Summary struct {
	Games  int
	Min    int
	Max    int
	Mean   float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
}

// Summarize computes min/max/mean/stddev and percentiles for the given
// roll counts. Percentiles interpolate linearly between sorted samples.
func Summarize(samples []int) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	sorted := append([]int(nil), samples...)
	sort.Ints(sorted)

	var sum float64
	for _, v := range sorted {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range sorted {
		d := float64(v) - mean
		acc += d * d
	}
	stddev := math.Sqrt(acc / float64(n))

	return Summary{
		Games:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		StdDev: stddev,
		P50:    percentile(sorted, 0.50),
		P90:    percentile(sorted, 0.90),
		P99:    percentile(sorted, 0.99),
	}
}

func percentile(sorted []int, p float64) float64 {
	n := len(sorted)
	if n == 1 || p <= 0 {
		return float64(sorted[0])
	}
	if p >= 1 {
		return float64(sorted[n-1])
	}
	pos := p * float64(n-1)
	i := int(math.Floor(pos))
	f := pos - float64(i)
	if i+1 >= n {
		return float64(sorted[i])
	}
	return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
}

// Bucket is one bar of a roll-count histogram.
type Bucket struct {
	Lo    int // inclusive
	Hi    int // inclusive
	Count int
}

// Histogram groups roll counts into fixed-width buckets starting at the
// minimum observed value.
func Histogram(samples []int, width int) []Bucket {
	if len(samples) == 0 || width <= 0 {
		return nil
	}

	min, max := samples[0], samples[0]
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	nb := (max-min)/width + 1
	buckets := make([]Bucket, nb)
	for i := range buckets {
		buckets[i].Lo = min + i*width
		buckets[i].Hi = min + (i+1)*width - 1
	}
	for _, v := range samples {
		buckets[(v-min)/width].Count++
	}
	return buckets
}
