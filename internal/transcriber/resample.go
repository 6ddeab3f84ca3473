package transcriber

import "math"

// resample converts a mono signal from srcRate to dstRate using linear
// interpolation. Output length is round(len * dstRate / srcRate) so signal
// duration is preserved proportionally.
func resample(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate || len(samples) == 0 {
		return samples
	}

	outLen := int(math.Round(float64(len(samples)) * float64(dstRate) / float64(srcRate)))
	if outLen <= 0 {
		return nil
	}

	out := make([]float64, outLen)
	step := float64(srcRate) / float64(dstRate)
	last := len(samples) - 1

	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= last {
			out[i] = samples[last]
			continue
		}
		frac := pos - float64(j)
		out[i] = samples[j]*(1-frac) + samples[j+1]*frac
	}

	return out
}
