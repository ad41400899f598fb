package news

import (
	"math"
	"strings"
	"unicode"
)

// normalization constant: compound = sum / sqrt(sum^2 + alpha). Keeps the
// score in (-1, 1) while small sums stay near-linear.
const normAlpha = 15.0

// negationDamp is applied when a sentiment word sits within reach of a
// negator ("not great" reads as moderately negative, not mirrored positive).
const negationDamp = -0.74

// Analyzer scores text polarity with a fixed word-valence lexicon. It is a
// pure function of its input: no network calls, no per-call mutable state,
// safe to share across goroutines.
type Analyzer struct {
	lexicon  map[string]float64
	boosters map[string]float64
	negators map[string]bool
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicon:  loadLexicon(),
		boosters: loadBoosters(),
		negators: loadNegators(),
	}
}

// Compound returns a single polarity score for text in [-1, 1]. Text with no
// lexicon hits scores exactly 0.
func (a *Analyzer) Compound(text string) float64 {
	words := tokenize(text)

	total := 0.0
	for i, word := range words {
		valence, ok := a.lexicon[word]
		if !ok {
			continue
		}

		// Boosters within the two preceding words intensify or dampen,
		// decaying with distance.
		for back := 1; back <= 2 && i-back >= 0; back++ {
			if boost, ok := a.boosters[words[i-back]]; ok {
				scaled := boost
				if back == 2 {
					scaled *= 0.95
				}
				if valence > 0 {
					valence += scaled
				} else {
					valence -= scaled
				}
			}
		}

		// A negator within the three preceding words flips the valence.
		for back := 1; back <= 3 && i-back >= 0; back++ {
			if a.negators[words[i-back]] {
				valence *= negationDamp
				break
			}
		}

		total += valence
	}

	if total == 0 {
		return 0
	}
	compound := total / math.Sqrt(total*total+normAlpha)
	return math.Max(-1, math.Min(1, compound))
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}
