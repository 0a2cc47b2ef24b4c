package textquality

import "math"

// fluencyScore combines three normalized signals with the configured
// weights: filler-word density, sentence-length variability, and the
// repetition findings already collected by the grammar pass. Filler tokens
// feed only the density signal: variance and repetition are computed over
// the remaining content tokens, so one more filler can lower the score but
// never raise it. Rounding happens once, on the weighted sum.
func (a *Analyzer) fluencyScore(sentences []Sentence, repetitions int) int {
	total := totalTokens(sentences)
	if total == 0 {
		return 0
	}

	flat := flatten(sentences)
	isFiller, fillerCount := a.fillerMask(flat)

	fillerDensity := float64(fillerCount) / float64(total)
	fillerSub := clampSub(100 - fillerDensity*400)

	contentCounts := contentTokenCounts(len(sentences), flat, isFiller)
	varianceSub := a.varianceSub(contentCounts)

	contentTotal := 0
	for _, n := range contentCounts {
		contentTotal += n
	}
	repetitionSub := 100.0
	if contentTotal > 0 {
		repetitionDensity := float64(repetitions) / float64(contentTotal)
		repetitionSub = clampSub(100 - repetitionDensity*500)
	}

	weighted := a.cfg.FillerWeight*fillerSub +
		a.cfg.VarianceWeight*varianceSub +
		a.cfg.RepetitionWeight*repetitionSub
	return int(math.Round(clampSub(weighted)))
}

// countFillers counts filler occurrences over the flat token stream. A
// multi-token phrase counts as one occurrence and its tokens are consumed,
// so "you know" is one filler, not two.
func (a *Analyzer) countFillers(sentences []Sentence) int {
	_, count := a.fillerMask(flatten(sentences))
	return count
}

// fillerMask marks every token belonging to a filler word or phrase and
// returns the occurrence count. Phrase tokens are consumed left to right,
// so a token claimed by a phrase cannot also match as a single filler.
func (a *Analyzer) fillerMask(flat []flatToken) ([]bool, int) {
	mask := make([]bool, len(flat))
	count := 0
	for i := 0; i < len(flat); {
		if n := a.phraseAt(flat, i); n > 0 {
			for j := 0; j < n; j++ {
				mask[i+j] = true
			}
			count++
			i += n
			continue
		}
		if a.fillers[flat[i].Lower] {
			mask[i] = true
			count++
		}
		i++
	}
	return mask, count
}

// contentTokenCounts returns per-sentence counts of non-filler tokens.
func contentTokenCounts(sentenceCount int, flat []flatToken, isFiller []bool) []int {
	counts := make([]int, sentenceCount)
	for i, tok := range flat {
		if !isFiller[i] {
			counts[tok.sentence]++
		}
	}
	return counts
}

func (a *Analyzer) phraseAt(flat []flatToken, i int) int {
	for _, phrase := range a.phrases {
		if i+len(phrase) > len(flat) {
			continue
		}
		match := true
		for j, word := range phrase {
			if flat[i+j].Lower != word {
				match = false
				break
			}
		}
		if match {
			return len(phrase)
		}
	}
	return 0
}

// varianceSub scores the coefficient of variation of per-sentence content
// token counts. Values inside the acceptable band score 100; monotonous
// (low CV) and disjointed (high CV) texts are penalized linearly. Sentences
// with no content tokens carry no length signal and are skipped, so a
// trailing all-filler sentence cannot shift the distribution. With fewer
// than two contributing sentences there is no variability signal and the
// sub-score is neutral.
func (a *Analyzer) varianceSub(counts []int) float64 {
	lengths := make([]float64, 0, len(counts))
	total := 0.0
	for _, n := range counts {
		if n > 0 {
			lengths = append(lengths, float64(n))
			total += float64(n)
		}
	}
	if len(lengths) < 2 {
		return 100
	}
	mean := total / float64(len(lengths))

	var sumSq float64
	for _, n := range lengths {
		d := n - mean
		sumSq += d * d
	}
	cv := math.Sqrt(sumSq/float64(len(lengths))) / mean

	switch {
	case cv < a.cfg.VarianceBandLow:
		return clampSub(100 - (a.cfg.VarianceBandLow-cv)*300)
	case cv > a.cfg.VarianceBandHigh:
		return clampSub(100 - (cv-a.cfg.VarianceBandHigh)*100)
	default:
		return 100
	}
}
