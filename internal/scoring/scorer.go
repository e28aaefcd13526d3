package scoring

import "strings"

// Config assembles a Scorer. Nil tables fall back to the built-in indicator
// lists; a nil Lemmatizer selects the best one available.
type Config struct {
	PeerIndicators    PhraseTable
	TeacherIndicators PhraseTable
	Lemmatizer        Lemmatizer
}

// Scorer evaluates peer/teacher exchanges against mistake categories. It is
// immutable after construction and safe for concurrent use; to change phrase
// tables, build a new Scorer and swap it in.
type Scorer struct {
	peer       PhraseTable
	teacher    PhraseTable
	lemmatizer Lemmatizer
}

// New builds a Scorer from cfg.
func New(cfg Config) *Scorer {
	peer := cfg.PeerIndicators
	if peer == nil {
		peer = defaultPeerIndicators
	}
	teacher := cfg.TeacherIndicators
	if teacher == nil {
		teacher = defaultTeacherIndicators
	}
	lem := cfg.Lemmatizer
	if lem == nil {
		lem = NewLemmatizer()
	}
	return &Scorer{
		peer:       peer.Clone(),
		teacher:    teacher.Clone(),
		lemmatizer: lem,
	}
}

// Default returns a Scorer over the built-in phrase tables.
func Default() *Scorer {
	return New(Config{})
}

// MatchCategory runs the detection pipeline for one phrase list: complexity
// regexes over the raw text, then substring, lemma, and fuzzy matching. The
// first stage to hit wins.
//
// The regex stage runs before the phrase list is consulted at all, so text
// containing recognizable complexity notation matches no matter which
// category's list was passed in. That short-circuit is kept as observed
// behavior; see ScorePair.
func (s *Scorer) MatchCategory(text string, patterns []string) MatchResult {
	if text == "" {
		return MatchResult{}
	}
	if family, ok := DetectComplexity(text); ok {
		return MatchResult{Matched: true, Pattern: family, Method: MethodRegexComplexity}
	}
	norm := Normalize(text)
	if p, ok := substringMatch(norm, patterns); ok {
		return MatchResult{Matched: true, Pattern: p, Method: MethodSubstring}
	}
	if p, ok := s.lemmaMatch(text, patterns); ok {
		return MatchResult{Matched: true, Pattern: p, Method: MethodLemma}
	}
	if p, score, ok := fuzzyMatch(norm, patterns); ok {
		return MatchResult{Matched: true, Pattern: p, Method: MethodFuzzy(score)}
	}
	return MatchResult{}
}

// substringMatch returns the first phrase whose normalized form occurs
// literally in the normalized text.
func substringMatch(normText string, patterns []string) (string, bool) {
	for _, p := range patterns {
		if strings.Contains(normText, Normalize(p)) {
			return p, true
		}
	}
	return "", false
}

// lemmaMatch matches a phrase when all of its normalized tokens appear among
// the text's lemmas (any order), or when its normalized form equals a
// contiguous lemma n-gram, longest grams first. Phrase tokens themselves are
// not lemmatized.
func (s *Scorer) lemmaMatch(text string, patterns []string) (string, bool) {
	tokens := s.lemmatizer.Lemmatize(text)
	if len(tokens) == 0 {
		return "", false
	}
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	for _, p := range patterns {
		present := true
		for _, pt := range strings.Fields(Normalize(p)) {
			if !set[pt] {
				present = false
				break
			}
		}
		if present {
			return p, true
		}
	}
	for n := min(5, len(tokens)); n >= 1; n-- {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			for _, p := range patterns {
				if Normalize(p) == gram {
					return p, true
				}
			}
		}
	}
	return "", false
}

// ScorePair checks that the peer exhibited and the teacher corrected every
// expected mistake. Unknown categories resolve to empty phrase lists, so
// they cannot match through the phrase stages but can still be satisfied by
// the complexity-regex short-circuit. An empty expected list passes
// vacuously.
func (s *Scorer) ScorePair(peerText, teacherText string, expected []Category) ScoreResult {
	result := ScoreResult{
		PeerDetected: make(map[Category]MatchResult, len(expected)),
		TeacherFixed: make(map[Category]MatchResult, len(expected)),
		Pass:         true,
	}
	for _, cat := range expected {
		pm := s.MatchCategory(peerText, s.peer.Phrases(cat))
		tm := s.MatchCategory(teacherText, s.teacher.Phrases(cat))
		result.PeerDetected[cat] = pm
		result.TeacherFixed[cat] = tm
		if !pm.Matched || !tm.Matched {
			result.Pass = false
		}
	}
	return result
}
