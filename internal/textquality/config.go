package textquality

// Config carries every lexicon and threshold the analyzer consults. It is
// injected at construction and must not be mutated afterwards; the documented
// defaults in DefaultConfig are the contract the regression tests pin down.
type Config struct {
	// Lexicons.
	FillerWords      []string          // single-token fillers
	FillerPhrases    []string          // multi-token fillers, lowercase space-joined
	Stopwords        []string          // excluded from vocabulary and repetition signals
	AdvancedWords    []string          // professional vocabulary earning a bounded bonus
	InformalWords    map[string]string // informal token -> suggested replacement
	PrepositionPairs map[string]string // "verb preposition" -> corrected phrase
	ThirdPersonForms map[string]string // base verb -> third-person singular form
	PastVerbs        []string          // irregular past forms (regular -ed detected by suffix)
	PresentMarkers   []string          // unambiguous present-tense verb forms
	ArticlePreps     []string          // prepositions expecting an article before a countable noun
	ArticleNouns     []string          // singular countable nouns that normally take an article

	// Grammar thresholds.
	RunOnTokenLimit  int // tokens before an unbroken sentence counts as run-on
	FragmentTokenMin int // sentences shorter than this without a verb are fragments
	RepetitionWindow int // token lookback for the repetition check
	RepetitionMinLen int // minimum word length considered by the repetition check

	// Per-severity grammar penalties, subtracted linearly from 100.
	PenaltyMajor    int
	PenaltyModerate int
	PenaltyMinor    int

	// Fluency signal weights; must sum to 1.
	FillerWeight     float64
	VarianceWeight   float64
	RepetitionWeight float64
	// Acceptable coefficient-of-variation band for sentence lengths.
	VarianceBandLow  float64
	VarianceBandHigh float64

	// Vocabulary scoring.
	DiversityScale     float64 // type-token ratio multiplier
	AdvancedBonus      int     // bonus per distinct advanced word
	AdvancedBonusCap   int
	MinVocabTokens     int // below this many non-stopword tokens the cap applies
	ShortInputVocabCap int

	// Words-per-minute band boundaries.
	WPMTooSlow     float64 // below this: too-slow
	WPMSlowMax     float64 // below this: slow
	WPMModerateMax float64 // at or below this: moderate
	WPMFastMax     float64 // at or below this: fast; above: too-fast

	// Scores below this read as "needs improvement" in feedback.
	NeedsImprovement int

	// Leading words of an expected point used for coverage matching.
	CoveragePrefixWords int
}

// DefaultConfig returns the pinned production configuration.
func DefaultConfig() Config {
	return Config{
		FillerWords: []string{
			"um", "uh", "er", "ah", "hmm", "like", "basically", "actually", "literally", "well",
		},
		FillerPhrases: []string{
			"you know", "i mean", "sort of", "kind of",
		},
		Stopwords: []string{
			"a", "an", "the", "and", "or", "but", "if", "then", "than",
			"that", "this", "these", "those", "i", "you", "he", "she", "it",
			"we", "they", "am", "is", "are", "was", "were", "be", "been",
			"being", "to", "of", "in", "on", "at", "for", "with", "from",
			"by", "as", "do", "does", "did", "have", "has", "had", "not",
			"no", "so", "very", "just", "can", "will", "would", "should",
			"could", "my", "your", "his", "her", "its", "our", "their",
			"me", "him", "them", "us", "what", "which", "who", "when",
			"where", "why", "how", "there", "here", "also", "into", "about",
			"over", "again", "more", "most", "some", "any", "all", "every",
		},
		AdvancedWords: []string{
			"optimize", "optimized", "optimization", "scalable", "scalability",
			"efficient", "efficiency", "collaborate", "collaboration",
			"implement", "implemented", "implementation", "architecture",
			"algorithm", "latency", "throughput", "stakeholder", "stakeholders",
			"leverage", "strategic", "initiative", "methodology",
			"infrastructure", "prioritize", "prioritized", "orchestrate",
			"mitigate", "streamline", "streamlined", "robust", "innovative",
			"comprehensive", "analytics", "automation", "concurrency",
			"caching", "resilient", "modular", "benchmark", "iterative",
		},
		InformalWords: map[string]string{
			"gonna": "going to",
			"wanna": "want to",
			"gotta": "have to",
			"kinda": "kind of",
			"sorta": "sort of",
			"dunno": "do not know",
			"ain't": "is not",
			"cuz":   "because",
		},
		PrepositionPairs: map[string]string{
			"depend of":       "depend on",
			"depends of":      "depends on",
			"depended of":     "depended on",
			"married with":    "married to",
			"arrive to":       "arrive at",
			"arrived to":      "arrived at",
			"arrives to":      "arrives at",
			"discuss about":   "discuss",
			"discussed about": "discussed",
			"listen at":       "listen to",
			"listened at":     "listened to",
			"interested on":   "interested in",
			"good in":         "good at",
			"participate on":  "participate in",
			"consist in":      "consist of",
			"consists in":     "consists of",
		},
		ThirdPersonForms: map[string]string{
			"go": "goes", "do": "does", "have": "has", "want": "wants",
			"like": "likes", "need": "needs", "think": "thinks",
			"say": "says", "make": "makes", "get": "gets", "know": "knows",
			"work": "works", "live": "lives", "study": "studies",
			"play": "plays", "talk": "talks", "walk": "walks", "run": "runs",
			"eat": "eats", "come": "comes", "take": "takes", "give": "gives",
			"feel": "feels", "look": "looks", "use": "uses", "try": "tries",
			"ask": "asks", "seem": "seems", "help": "helps", "start": "starts",
		},
		PastVerbs: []string{
			"went", "got", "said", "made", "took", "came", "saw", "knew",
			"thought", "found", "gave", "told", "did", "was", "were",
			"left", "felt", "kept", "began", "brought", "bought", "met",
			"ran", "wrote", "spoke", "paid", "built", "sent", "spent",
		},
		PresentMarkers: []string{
			"am", "is", "are", "go", "goes", "does", "has", "wants",
			"thinks", "makes", "says", "gets", "comes", "takes", "knows",
			"works", "starts", "buys", "submits", "runs", "eats", "talks",
			"walks", "plays", "sees", "feels", "uses", "gives", "helps",
		},
		ArticlePreps: []string{
			"to", "in", "at", "on", "from", "into", "near",
		},
		ArticleNouns: []string{
			"market", "store", "office", "company", "interview", "meeting",
			"project", "team", "car", "house", "computer", "report",
			"question", "problem", "solution", "answer", "manager",
			"client", "customer", "building", "station", "airport",
		},

		RunOnTokenLimit:  35,
		FragmentTokenMin: 4,
		RepetitionWindow: 15,
		RepetitionMinLen: 4,

		PenaltyMajor:    15,
		PenaltyModerate: 10,
		PenaltyMinor:    5,

		FillerWeight:     0.4,
		VarianceWeight:   0.3,
		RepetitionWeight: 0.3,
		VarianceBandLow:  0.20,
		VarianceBandHigh: 0.90,

		DiversityScale:     80,
		AdvancedBonus:      5,
		AdvancedBonusCap:   20,
		MinVocabTokens:     5,
		ShortInputVocabCap: 50,

		WPMTooSlow:     80,
		WPMSlowMax:     110,
		WPMModerateMax: 160,
		WPMFastMax:     190,

		NeedsImprovement: 70,

		CoveragePrefixWords: 3,
	}
}
