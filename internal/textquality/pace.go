package textquality

import "math"

// calculatePace computes words per minute and classifies it against the
// configured band boundaries. Callers must ensure elapsedSeconds > 0.
func (a *Analyzer) calculatePace(wordCount, elapsedSeconds int) (float64, Pace) {
	wpm := float64(wordCount) / (float64(elapsedSeconds) / 60.0)
	wpm = math.Round(wpm*10) / 10

	switch {
	case wpm < a.cfg.WPMTooSlow:
		return wpm, PaceTooSlow
	case wpm < a.cfg.WPMSlowMax:
		return wpm, PaceSlow
	case wpm <= a.cfg.WPMModerateMax:
		return wpm, PaceModerate
	case wpm <= a.cfg.WPMFastMax:
		return wpm, PaceFast
	default:
		return wpm, PaceTooFast
	}
}
