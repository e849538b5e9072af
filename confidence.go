package gopidgin

// Aggregate returns the unweighted mean of chunk confidences and the raw
// alternative assemblies. Every ambiguous word chunk contributes one variant
// per alternate target (at most two), each differing from the primary
// assembly in that single chunk. Combinations are not enumerated.
func Aggregate(chunks []Chunk) (float64, []string) {
	if len(chunks) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, c := range chunks {
		sum += c.Confidence
	}
	confidence := clamp01(sum / float64(len(chunks)))

	var variants []string
	for i, c := range chunks {
		for _, alt := range c.alternates {
			swapped := make([]Chunk, len(chunks))
			copy(swapped, chunks)
			swapped[i].TargetText = alt
			variants = append(variants, Assemble(swapped))
		}
	}
	return confidence, variants
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
