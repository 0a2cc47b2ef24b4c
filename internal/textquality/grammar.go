package textquality

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// positionedIssue carries a GrammarIssue together with its text position so
// findings can be emitted in occurrence order regardless of which rule
// produced them.
type positionedIssue struct {
	GrammarIssue
	sentence int
	token    int
}

// categoryOrder breaks position ties deterministically. Every IssueCategory
// must appear here.
var categoryOrder = map[IssueCategory]int{
	CategorySubjectVerbAgreement: 0,
	CategoryTenseConsistency:     1,
	CategoryArticleUsage:         2,
	CategoryPrepositionUsage:     3,
	CategoryRunOnSentence:        4,
	CategorySentenceFragment:     5,
	CategoryPunctuation:          6,
	CategoryWordChoice:           7,
	CategoryRepetition:           8,
}

// severityFor is the fixed severity table per rule class.
func severityFor(category IssueCategory) Severity {
	switch category {
	case CategorySubjectVerbAgreement, CategoryRunOnSentence, CategorySentenceFragment:
		return SeverityMajor
	case CategoryTenseConsistency, CategoryArticleUsage, CategoryPrepositionUsage:
		return SeverityModerate
	case CategoryPunctuation, CategoryWordChoice, CategoryRepetition:
		return SeverityMinor
	default:
		return SeverityMinor
	}
}

// checkGrammar runs every rule over the segmented text and returns the
// findings sorted by sentence index, token index, then category rank.
func (a *Analyzer) checkGrammar(sentences []Sentence) []positionedIssue {
	var issues []positionedIssue
	for si, s := range sentences {
		issues = append(issues, a.checkSubjectVerb(si, s)...)
		issues = append(issues, a.checkTense(si, s)...)
		issues = append(issues, a.checkArticles(si, s)...)
		issues = append(issues, a.checkPrepositions(si, s)...)
		issues = append(issues, a.checkRunOn(si, s)...)
		issues = append(issues, a.checkFragment(si, s)...)
		issues = append(issues, a.checkPunctuation(si, s, si == len(sentences)-1)...)
		issues = append(issues, a.checkWordChoice(si, s)...)
	}
	issues = append(issues, a.checkRepetition(sentences)...)

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].sentence != issues[j].sentence {
			return issues[i].sentence < issues[j].sentence
		}
		if issues[i].token != issues[j].token {
			return issues[i].token < issues[j].token
		}
		return categoryOrder[issues[i].Category] < categoryOrder[issues[j].Category]
	})
	return issues
}

func toIssues(issues []positionedIssue) []GrammarIssue {
	out := make([]GrammarIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.GrammarIssue)
	}
	return out
}

func newIssue(category IssueCategory, sentence, token int, message, suggestion string) positionedIssue {
	return positionedIssue{
		GrammarIssue: GrammarIssue{
			Category:   category,
			Message:    message,
			Suggestion: suggestion,
			Severity:   severityFor(category),
		},
		sentence: sentence,
		token:    token,
	}
}

var singularPronouns = map[string]bool{"he": true, "she": true, "it": true}
var pluralPronouns = map[string]bool{"i": true, "you": true, "we": true, "they": true}

// checkSubjectVerb flags a pronoun directly followed by a verb form that
// disagrees in number, using the configured base/third-person lookup.
func (a *Analyzer) checkSubjectVerb(si int, s Sentence) []positionedIssue {
	var issues []positionedIssue
	for i := 0; i+1 < len(s.Tokens); i++ {
		subject := s.Tokens[i]
		verb := s.Tokens[i+1]
		if singularPronouns[subject.Lower] {
			if third, ok := a.cfg.ThirdPersonForms[verb.Lower]; ok {
				issues = append(issues, newIssue(CategorySubjectVerbAgreement, si, i+1,
					fmt.Sprintf("%q does not agree with the subject %q", verb.Text, subject.Text),
					fmt.Sprintf("Use %q instead of %q.", third, verb.Text)))
				continue
			}
			if verb.Lower == "don't" {
				issues = append(issues, newIssue(CategorySubjectVerbAgreement, si, i+1,
					fmt.Sprintf("%q does not agree with the subject %q", verb.Text, subject.Text),
					"Use \"doesn't\" instead of \"don't\"."))
			}
			continue
		}
		if pluralPronouns[subject.Lower] {
			if base := a.baseFormOf(verb.Lower); base != "" {
				issues = append(issues, newIssue(CategorySubjectVerbAgreement, si, i+1,
					fmt.Sprintf("%q does not agree with the subject %q", verb.Text, subject.Text),
					fmt.Sprintf("Use %q instead of %q.", base, verb.Text)))
			}
		}
	}
	return issues
}

func (a *Analyzer) baseFormOf(third string) string {
	for base, form := range a.cfg.ThirdPersonForms {
		if form == third {
			return base
		}
	}
	return ""
}

// checkTense flags a sentence mixing past- and present-tense main verbs
// without an internal comma or semicolon as a clause boundary.
func (a *Analyzer) checkTense(si int, s Sentence) []positionedIssue {
	if strings.ContainsAny(s.Raw, ",;") {
		return nil
	}
	pastAt, presentAt := -1, -1
	var pastWord, presentWord string
	for i, tok := range s.Tokens {
		if a.isPastVerb(tok.Lower) && pastAt < 0 && !precededByBeOrHave(s.Tokens, i) {
			pastAt, pastWord = i, tok.Text
		}
		if a.presentVerbs[tok.Lower] && presentAt < 0 && !precededByAuxiliary(s.Tokens, i) {
			presentAt, presentWord = i, tok.Text
		}
	}
	if pastAt < 0 || presentAt < 0 {
		return nil
	}
	at := pastAt
	if presentAt > at {
		at = presentAt
	}
	return []positionedIssue{newIssue(CategoryTenseConsistency, si, at,
		fmt.Sprintf("mixed tenses: %q is past tense while %q is present tense", pastWord, presentWord),
		"Keep the sentence in one tense, or split the clauses with a comma.")}
}

// precededByAuxiliary reports whether the token at i follows "to", a modal,
// or a negated auxiliary, in which case it is not a present-tense main verb.
func precededByAuxiliary(tokens []Token, i int) bool {
	if i == 0 {
		return false
	}
	switch tokens[i-1].Lower {
	case "to", "will", "would", "can", "could", "should", "may", "might", "must", "don't", "didn't", "not":
		return true
	}
	return false
}

// precededByBeOrHave reports whether the token at i follows a form of "be"
// or "have"; a participle there is passive or perfect, not a simple past.
func precededByBeOrHave(tokens []Token, i int) bool {
	if i == 0 {
		return false
	}
	switch tokens[i-1].Lower {
	case "am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had":
		return true
	}
	return false
}

var notPastEd = map[string]bool{
	"need": true, "indeed": true, "hundred": true, "red": true, "bed": true,
	"wicked": true, "sacred": true, "naked": true, "succeed": true,
	"proceed": true, "exceed": true, "seed": true, "feed": true, "speed": true,
	"shed": true,
}

func (a *Analyzer) isPastVerb(lower string) bool {
	if a.pastVerbs[lower] {
		return true
	}
	return len(lower) >= 4 && strings.HasSuffix(lower, "ed") && !notPastEd[lower]
}

// checkArticles flags a configured preposition directly followed by a
// singular countable noun with no article or determiner between them. This
// is a lookup heuristic, not a parser.
func (a *Analyzer) checkArticles(si int, s Sentence) []positionedIssue {
	var issues []positionedIssue
	for i := 0; i+1 < len(s.Tokens); i++ {
		prep := s.Tokens[i]
		noun := s.Tokens[i+1]
		if !a.articlePreps[prep.Lower] || !a.articleNouns[noun.Lower] {
			continue
		}
		issues = append(issues, newIssue(CategoryArticleUsage, si, i+1,
			fmt.Sprintf("%q usually needs an article after %q", noun.Text, prep.Text),
			fmt.Sprintf("Say %q instead of %q.", prep.Lower+" the "+noun.Lower, prep.Lower+" "+noun.Lower)))
	}
	return issues
}

// checkPrepositions flags known incorrect verb+preposition pairings.
func (a *Analyzer) checkPrepositions(si int, s Sentence) []positionedIssue {
	var issues []positionedIssue
	for i := 0; i+1 < len(s.Tokens); i++ {
		pair := s.Tokens[i].Lower + " " + s.Tokens[i+1].Lower
		corrected, ok := a.cfg.PrepositionPairs[pair]
		if !ok {
			continue
		}
		issues = append(issues, newIssue(CategoryPrepositionUsage, si, i+1,
			fmt.Sprintf("%q uses the wrong preposition", pair),
			fmt.Sprintf("Say %q instead of %q.", corrected, pair)))
	}
	return issues
}

func (a *Analyzer) checkRunOn(si int, s Sentence) []positionedIssue {
	if len(s.Tokens) <= a.cfg.RunOnTokenLimit || strings.ContainsAny(s.Raw, ",;:") {
		return nil
	}
	return []positionedIssue{newIssue(CategoryRunOnSentence, si, 0,
		fmt.Sprintf("sentence runs to %d words without a break", len(s.Tokens)),
		"Split this into two or more sentences, or add punctuation between clauses.")}
}

func (a *Analyzer) checkFragment(si int, s Sentence) []positionedIssue {
	if len(s.Tokens) >= a.cfg.FragmentTokenMin {
		return nil
	}
	for _, tok := range s.Tokens {
		if a.looksLikeVerb(tok.Lower) {
			return nil
		}
	}
	return []positionedIssue{newIssue(CategorySentenceFragment, si, 0,
		fmt.Sprintf("%q is an incomplete sentence", s.Raw),
		"Expand this into a complete sentence with a subject and a verb.")}
}

var beAndModals = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "can": true, "will": true,
	"would": true, "should": true, "could": true, "may": true,
	"might": true, "must": true,
}

func (a *Analyzer) looksLikeVerb(lower string) bool {
	if beAndModals[lower] || a.presentVerbs[lower] || a.thirdForms[lower] {
		return true
	}
	if _, ok := a.cfg.ThirdPersonForms[lower]; ok {
		return true
	}
	if a.isPastVerb(lower) {
		return true
	}
	return len(lower) >= 5 && strings.HasSuffix(lower, "ing")
}

// checkPunctuation covers missing capitalization, doubled terminal
// punctuation, and a missing terminal on the final sentence. These stay
// active for speech transcripts too; they are uniformly minor so
// transcript artifacts degrade the score only mildly.
func (a *Analyzer) checkPunctuation(si int, s Sentence, last bool) []positionedIssue {
	var issues []positionedIssue
	if first := firstRune(s.Raw); unicode.IsLower(first) {
		issues = append(issues, newIssue(CategoryPunctuation, si, 0,
			fmt.Sprintf("sentence starts with a lowercase letter: %q", s.Tokens[0].Text),
			fmt.Sprintf("Capitalize %q.", s.Tokens[0].Text)))
	}
	end := len(s.Tokens) - 1
	if len(s.Terminal) > 1 && s.Terminal != "..." {
		issues = append(issues, newIssue(CategoryPunctuation, si, end,
			fmt.Sprintf("doubled punctuation %q", s.Terminal),
			fmt.Sprintf("Use a single %q.", string(s.Terminal[0]))))
	}
	if last && s.Terminal == "" {
		issues = append(issues, newIssue(CategoryPunctuation, si, end,
			"sentence is missing terminal punctuation",
			"End the sentence with a period."))
	}
	return issues
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// checkWordChoice flags informal or slang tokens from the configured lookup.
func (a *Analyzer) checkWordChoice(si int, s Sentence) []positionedIssue {
	var issues []positionedIssue
	for i, tok := range s.Tokens {
		replacement, ok := a.cfg.InformalWords[tok.Lower]
		if !ok {
			continue
		}
		issues = append(issues, newIssue(CategoryWordChoice, si, i,
			fmt.Sprintf("%q is informal", tok.Text),
			fmt.Sprintf("Use %q instead of %q.", replacement, tok.Text)))
	}
	return issues
}

// checkRepetition flags a non-stopword token repeated within the configured
// window over the flat token stream. Each distinct word is flagged at most
// once, at its first repeated occurrence, which keeps the cost linear and
// the finding count bounded.
func (a *Analyzer) checkRepetition(sentences []Sentence) []positionedIssue {
	flat := flatten(sentences)
	var issues []positionedIssue
	flagged := make(map[string]bool)
	lastSeen := make(map[string]int, len(flat))
	for i, tok := range flat {
		if len(tok.Lower) < a.cfg.RepetitionMinLen || a.stopwords[tok.Lower] || a.fillers[tok.Lower] {
			continue
		}
		if prev, ok := lastSeen[tok.Lower]; ok && i-prev <= a.cfg.RepetitionWindow && !flagged[tok.Lower] {
			flagged[tok.Lower] = true
			issues = append(issues, newIssue(CategoryRepetition, tok.sentence, tok.index,
				fmt.Sprintf("%q is repeated within a few words", tok.Text),
				fmt.Sprintf("Replace one use of %q with a synonym or restructure the sentence.", tok.Text)))
		}
		lastSeen[tok.Lower] = i
	}
	return issues
}
