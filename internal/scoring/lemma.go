package scoring

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer reduces free text to a sequence of word base forms. The token
// order must follow the source text so n-gram comparison stays meaningful.
type Lemmatizer interface {
	Lemmatize(text string) []string
}

// NewLemmatizer returns the dictionary-backed English lemmatizer, or the
// normalize-and-split fallback if the dictionary cannot be loaded. The
// fallback only costs match accuracy; it never fails.
func NewLemmatizer() Lemmatizer {
	lem, err := golem.New(en.New())
	if err != nil {
		return splitLemmatizer{}
	}
	return &dictLemmatizer{lem: lem}
}

// dictLemmatizer looks each normalized token up in an English morphology
// dictionary. Unknown tokens pass through unchanged.
type dictLemmatizer struct {
	lem *golem.Lemmatizer
}

func (d *dictLemmatizer) Lemmatize(text string) []string {
	tokens := strings.Fields(Normalize(text))
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = d.lem.Lemma(tok)
	}
	return out
}

// splitLemmatizer is the degraded path: normalized tokens stand in for
// lemmas, so inflected forms only match phrases listing them verbatim.
type splitLemmatizer struct{}

func (splitLemmatizer) Lemmatize(text string) []string {
	return strings.Fields(Normalize(text))
}
