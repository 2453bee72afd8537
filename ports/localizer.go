package ports

import "surveylens/domain/stats"

// Localizer resolves UI strings and renders result narratives for a
// language tag. An unregistered tag fails with core.ErrUnsupportedLanguage;
// there is no silent fallback, so the text shown always matches the locale
// the user picked.
type Localizer interface {
	Label(lang, key string) (string, error)
	StrengthLabel(lang string, s stats.StrengthLabel) (string, error)
	SignificanceLabel(lang string, s stats.SignificanceLabel) (string, error)
	Narrative(lang, xName, yName string, strength stats.StrengthLabel, sig stats.SignificanceLabel, pValue float64) (string, error)
	Languages() []string
}
