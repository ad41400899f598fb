package news

// Word valences on a -4..4 scale, weighted toward the vocabulary of
// financial headlines. Words absent from the lexicon contribute nothing.
func loadLexicon() map[string]float64 {
	return map[string]float64{
		// strongly positive
		"soars":        2.9,
		"soar":         2.9,
		"soaring":      2.9,
		"surges":       2.7,
		"surge":        2.7,
		"surging":      2.7,
		"skyrockets":   3.2,
		"skyrocket":    3.2,
		"booms":        2.6,
		"boom":         2.6,
		"record":       1.8,
		"breakthrough": 2.4,
		"stellar":      2.8,
		"excellent":    3.0,
		"outstanding":  3.1,
		"great":        3.1,
		"best":         3.2,
		"wins":         2.7,
		"win":          2.7,
		"winner":       2.8,

		// positive
		"gains":        1.9,
		"gain":         1.9,
		"rallies":      2.0,
		"rally":        2.0,
		"rises":        1.4,
		"rise":         1.4,
		"rising":       1.4,
		"jumps":        1.8,
		"jump":         1.8,
		"climbs":       1.5,
		"climb":        1.5,
		"advances":     1.3,
		"advance":      1.3,
		"rebounds":     1.6,
		"rebound":      1.6,
		"recovers":     1.5,
		"recovery":     1.5,
		"beats":        2.0,
		"beat":         2.0,
		"outperforms":  2.1,
		"outperform":   2.1,
		"upgrades":     1.8,
		"upgrade":      1.8,
		"upgraded":     1.8,
		"profit":       1.9,
		"profits":      1.9,
		"profitable":   2.0,
		"growth":       1.7,
		"grows":        1.6,
		"grow":         1.6,
		"expands":      1.4,
		"expansion":    1.4,
		"strong":       1.8,
		"stronger":     1.9,
		"robust":       1.8,
		"bullish":      2.2,
		"buy":          1.2,
		"buyback":      1.4,
		"dividend":     1.0,
		"bonus":        1.6,
		"positive":     1.7,
		"optimistic":   1.8,
		"upbeat":       1.8,
		"momentum":     1.1,
		"success":      2.1,
		"successful":   2.1,
		"approval":     1.5,
		"approved":     1.5,
		"good":         1.9,
		"improves":     1.6,
		"improvement":  1.6,
		"high":         1.0,
		"highs":        1.0,
		"opportunity":  1.3,
		"strength":     1.5,
		"deal":         0.9,
		"partnership":  1.1,
		"innovation":   1.4,
		"expansionary": 1.2,

		// negative
		"falls":         -1.5,
		"fall":          -1.5,
		"falling":       -1.5,
		"drops":         -1.6,
		"drop":          -1.6,
		"declines":      -1.5,
		"decline":       -1.5,
		"slips":         -1.2,
		"slip":          -1.2,
		"slides":        -1.4,
		"slide":         -1.4,
		"dips":          -1.1,
		"dip":           -1.1,
		"loses":         -1.8,
		"lose":          -1.8,
		"loss":          -2.1,
		"losses":        -2.1,
		"misses":        -1.9,
		"miss":          -1.9,
		"downgrades":    -1.8,
		"downgrade":     -1.8,
		"downgraded":    -1.8,
		"weak":          -1.7,
		"weaker":        -1.8,
		"weakness":      -1.7,
		"bearish":       -2.2,
		"sell":          -1.1,
		"selloff":       -2.0,
		"underperforms": -1.9,
		"underperform":  -1.9,
		"negative":      -1.7,
		"pessimistic":   -1.8,
		"concern":       -1.3,
		"concerns":      -1.3,
		"worries":       -1.5,
		"worry":         -1.5,
		"fears":         -1.7,
		"fear":          -1.7,
		"risk":          -1.1,
		"risks":         -1.1,
		"debt":          -1.2,
		"default":       -2.4,
		"lawsuit":       -1.9,
		"probe":         -1.6,
		"investigation": -1.6,
		"fraud":         -3.0,
		"scandal":       -2.7,
		"penalty":       -1.8,
		"fine":          -1.3,
		"fined":         -1.6,
		"layoffs":       -2.1,
		"layoff":        -2.1,
		"cuts":          -1.4,
		"cut":           -1.4,
		"halts":         -1.5,
		"halt":          -1.5,
		"low":           -1.0,
		"lows":          -1.0,
		"warning":       -1.7,
		"warns":         -1.7,
		"warn":          -1.7,
		"downturn":      -1.9,
		"slowdown":      -1.6,
		"recession":     -2.3,
		"inflation":     -1.2,
		"volatile":      -1.1,
		"volatility":    -1.1,
		"bad":           -1.9,
		"worst":         -2.8,
		"trouble":       -1.8,
		"bankruptcy":    -3.1,
		"bankrupt":      -3.1,

		// strongly negative
		"plunges":  -2.8,
		"plunge":   -2.8,
		"plunging": -2.8,
		"crashes":  -3.2,
		"crash":    -3.2,
		"tumbles":  -2.5,
		"tumble":   -2.5,
		"tanks":    -2.7,
		"tank":     -2.7,
		"collapse": -3.0,
		"sinks":    -2.4,
		"sink":     -2.4,
		"slumps":   -2.3,
		"slump":    -2.3,
		"crisis":   -2.6,
		"disaster": -3.1,
	}
}

// Boosters intensify the valence of the word that follows them.
func loadBoosters() map[string]float64 {
	return map[string]float64{
		"very":       0.293,
		"extremely":  0.293,
		"hugely":     0.293,
		"massively":  0.293,
		"sharply":    0.293,
		"strongly":   0.293,
		"highly":     0.293,
		"really":     0.267,
		"remarkably": 0.267,
		"notably":    0.267,
		"slightly":   -0.293,
		"marginally": -0.293,
		"barely":     -0.293,
		"somewhat":   -0.267,
		"mildly":     -0.267,
	}
}

// Negators flip the valence of a nearby sentiment word.
func loadNegators() map[string]bool {
	return map[string]bool{
		"not":     true,
		"no":      true,
		"never":   true,
		"neither": true,
		"nor":     true,
		"without": true,
		"isn't":   true,
		"isnt":    true,
		"wasn't":  true,
		"wasnt":   true,
		"won't":   true,
		"wont":    true,
		"doesn't": true,
		"doesnt":  true,
		"don't":   true,
		"dont":    true,
		"can't":   true,
		"cant":    true,
		"cannot":  true,
	}
}
