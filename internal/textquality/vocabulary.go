package textquality

import "math"

// vocabularyScore scales the type-token ratio over non-stopword tokens and
// adds a bounded bonus for distinct advanced-vocabulary words. Inputs below
// MinVocabTokens are capped at ShortInputVocabCap because the ratio is
// unreliable on short samples.
func (a *Analyzer) vocabularyScore(sentences []Sentence) int {
	unique := make(map[string]bool)
	advanced := make(map[string]bool)
	total := 0
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if a.stopwords[tok.Lower] {
				continue
			}
			total++
			unique[tok.Lower] = true
			if a.advanced[tok.Lower] {
				advanced[tok.Lower] = true
			}
		}
	}
	if total == 0 {
		return 0
	}

	ttr := float64(len(unique)) / float64(total)
	bonus := len(advanced) * a.cfg.AdvancedBonus
	if bonus > a.cfg.AdvancedBonusCap {
		bonus = a.cfg.AdvancedBonusCap
	}
	score := int(math.Round(clampSub(ttr*a.cfg.DiversityScale + float64(bonus))))
	if total < a.cfg.MinVocabTokens && score > a.cfg.ShortInputVocabCap {
		score = a.cfg.ShortInputVocabCap
	}
	return score
}
