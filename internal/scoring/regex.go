package scoring

import "regexp"

// complexityDetector pairs a notation-family key with its compiled pattern.
type complexityDetector struct {
	family  string
	pattern *regexp.Regexp
}

// complexityDetectors is a slice, not a map: scan order is part of the
// contract. Quadratic and exponential run before the permissive linear and
// n·k checks so a general pattern cannot mask a more specific one.
var complexityDetectors = []complexityDetector{
	{"quadratic", regexp.MustCompile(`(?i)\b(?:o\(?\s*n\s*[\^*]\s*2\)?|n\s*[\^*]\s*2|n\s*\*\s*n)\b`)},
	{"exponential", regexp.MustCompile(`(?i)\b(?:o\(?\s*2\s*[\^]\s*n\)?|2\s*[\^]\s*n|exponential|2\^n)\b`)},
	{"linear", regexp.MustCompile(`(?i)\b(?:o\(?\s*n\)?|linear(?:\s*time)?)\b`)},
	{"nlogn", regexp.MustCompile(`(?i)\b(?:n\s*(?:\*|\s)?\s*log\s*n|n\s*log\s*n|o\(?\s*n\s*log\s*n\)?)\b`)},
	{"vplusE", regexp.MustCompile(`(?i)\b(?:v\s*[\+&]\s*e|v\s*\+\s*e|v\+e|o\(?\s*v\s*\+\s*e\)?)\b`)},
	{"n_k_logk", regexp.MustCompile(`(?i)\b(?:n\s*(?:\*|\s)?\s*k\s*(?:\*|\s)?\s*log\s*k|o\(?\s*n\s*\*\s*k\s*log\s*k\)?)\b`)},
	{"n_k", regexp.MustCompile(`(?i)\b(?:n\s*(?:\*|\s)\s*k|n\s+k)\b`)},
}

// DetectComplexity scans raw (un-normalized) text for big-O notation and
// returns the first matching family key. Note the linear pattern accepts a
// bare "o(n" prefix, so "o(n log n)" and "o(n*k)" resolve to linear rather
// than their tighter families checked later.
func DetectComplexity(text string) (string, bool) {
	for _, d := range complexityDetectors {
		if d.pattern.MatchString(text) {
			return d.family, true
		}
	}
	return "", false
}
