package dynamo

// FFTFreq returns the sample frequencies of an n-point transform with unit
// spacing: 0, 1/n, ..., followed by the negative half.
func FFTFreq(n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = FreqAt(k, n)
	}
	return out
}

// FreqAt is the frequency of bin k in an n-point transform.
func FreqAt(k, n int) float64 {
	if k <= (n-1)/2 {
		return float64(k) / float64(n)
	}
	return float64(k-n) / float64(n)
}
