// Package narrative holds the hand-coded clause-level sentiment scores of
// four Cinderella variants together with the metadata used to chart them.
//
// Each [Variant] is immutable: accessors return copies. Scores are integers
// in [-5, 5], one per narrative clause, in reading order. Clause numbers are
// 1-based throughout the package.
//
//	for _, v := range narrative.All() {
//		smooth := v.Smoothed(savgol.DefaultWindow)
//		...
//	}
package narrative
