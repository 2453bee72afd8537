package i18n

import (
	"fmt"
	"sort"

	"surveylens/domain/core"
	"surveylens/domain/stats"
)

// Supported language tags.
const (
	LangEnglish    = "en"
	LangIndonesian = "id"
)

// locale bundles everything one language needs: UI labels, localized
// strength/significance vocabulary, and the narrative sentence template.
type locale struct {
	displayName string
	labels      map[string]string
	strengths   map[stats.StrengthLabel]string
	significs   map[stats.SignificanceLabel]string
	// narrativeFormat takes, in order: strength, x name, y name,
	// significance, and the p-value already formatted to 4 decimals.
	narrativeFormat string
	homeMarkdown    string
}

// Bundle holds all registered locales. Lookups for an unregistered tag fail
// with core.ErrUnsupportedLanguage rather than falling back, so the UI never
// shows text from a language the user did not pick.
type Bundle struct {
	locales map[string]locale
}

// New builds the bundle with the two shipped locales.
func New() *Bundle {
	return &Bundle{
		locales: map[string]locale{
			LangEnglish: {
				displayName: "English",
				labels: map[string]string{
					"home":      "Home",
					"analyzer":  "Survey Analyzer",
					"desc":      "Analyze survey data using descriptive statistics and correlation analysis.",
					"upload":    "Upload CSV or Excel file",
					"preview":   "Data Preview",
					"desc_stat": "Descriptive Statistics",
					"freq":      "Frequency & Percentage Table",
					"hist":      "Histogram",
					"box":       "Boxplot",
					"corr":      "Correlation Analysis",
					"select_x":  "Select X Variable",
					"select_y":  "Select Y Variable",
					"method":    "Correlation Method",
					"run":       "Run Analysis",
					"result":    "Result",
					"interp":    "Interpretation",
					"variable":  "Variable",
					"scatter":   "Correlation Scatter Plot",
				},
				strengths: map[stats.StrengthLabel]string{
					stats.StrengthVeryWeak:   "very weak",
					stats.StrengthWeak:       "weak",
					stats.StrengthModerate:   "moderate",
					stats.StrengthStrong:     "strong",
					stats.StrengthVeryStrong: "very strong",
				},
				significs: map[stats.SignificanceLabel]string{
					stats.Significant:    "significant",
					stats.NotSignificant: "not significant",
				},
				narrativeFormat: "There is a **%s relationship** between **%s** and **%s**, and the result is **%s** (p = %s).",
				homeMarkdown: `# Survey Analyzer

Analyze survey data using descriptive statistics and correlation analysis.

- Upload a **CSV** or **Excel** survey export
- Review descriptive statistics, frequency tables, histograms and boxplots
- Run **Pearson** or **Spearman** correlation between X and Y variables
- Read an automatically generated interpretation of the result
`,
			},
			LangIndonesian: {
				displayName: "Indonesia",
				labels: map[string]string{
					"home":      "Beranda",
					"analyzer":  "Analisis Survei",
					"desc":      "Menganalisis data survei menggunakan statistik deskriptif dan analisis korelasi.",
					"upload":    "Unggah file CSV atau Excel",
					"preview":   "Pratinjau Data",
					"desc_stat": "Statistik Deskriptif",
					"freq":      "Tabel Frekuensi & Persentase",
					"hist":      "Histogram",
					"box":       "Boxplot",
					"corr":      "Analisis Korelasi",
					"select_x":  "Pilih Variabel X",
					"select_y":  "Pilih Variabel Y",
					"method":    "Metode Korelasi",
					"run":       "Jalankan Analisis",
					"result":    "Hasil",
					"interp":    "Interpretasi",
					"variable":  "Variabel",
					"scatter":   "Diagram Pencar Korelasi",
				},
				strengths: map[stats.StrengthLabel]string{
					stats.StrengthVeryWeak:   "sangat lemah",
					stats.StrengthWeak:       "lemah",
					stats.StrengthModerate:   "sedang",
					stats.StrengthStrong:     "kuat",
					stats.StrengthVeryStrong: "sangat kuat",
				},
				significs: map[stats.SignificanceLabel]string{
					stats.Significant:    "signifikan",
					stats.NotSignificant: "tidak signifikan",
				},
				narrativeFormat: "Terdapat **hubungan %s** antara **%s** dan **%s** dengan nilai p **%s** (p = %s).",
				homeMarkdown: `# Analisis Survei

Menganalisis data survei menggunakan statistik deskriptif dan analisis korelasi.

- Unggah ekspor survei berformat **CSV** atau **Excel**
- Tinjau statistik deskriptif, tabel frekuensi, histogram dan boxplot
- Jalankan korelasi **Pearson** atau **Spearman** antara variabel X dan Y
- Baca interpretasi hasil yang dibuat secara otomatis
`,
			},
		},
	}
}

func (b *Bundle) locale(lang string) (locale, error) {
	loc, ok := b.locales[lang]
	if !ok {
		return locale{}, core.NewLanguageError(lang)
	}
	return loc, nil
}

// Languages returns the registered language tags, sorted.
func (b *Bundle) Languages() []string {
	tags := make([]string, 0, len(b.locales))
	for tag := range b.locales {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DisplayName returns the native name of a language for the selector.
func (b *Bundle) DisplayName(lang string) (string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return "", err
	}
	return loc.displayName, nil
}

// Label resolves a UI label key for a language.
func (b *Bundle) Label(lang, key string) (string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return "", err
	}
	label, ok := loc.labels[key]
	if !ok {
		return "", fmt.Errorf("unknown label key %q for language %q", key, lang)
	}
	return label, nil
}

// Labels resolves every UI label for a language, for template rendering.
func (b *Bundle) Labels(lang string) (map[string]string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(loc.labels))
	for k, v := range loc.labels {
		out[k] = v
	}
	return out, nil
}

// StrengthLabel localizes a qualitative strength bucket.
func (b *Bundle) StrengthLabel(lang string, s stats.StrengthLabel) (string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return "", err
	}
	label, ok := loc.strengths[s]
	if !ok {
		return "", fmt.Errorf("unknown strength label %q", s)
	}
	return label, nil
}

// SignificanceLabel localizes a significance verdict.
func (b *Bundle) SignificanceLabel(lang string, s stats.SignificanceLabel) (string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return "", err
	}
	label, ok := loc.significs[s]
	if !ok {
		return "", fmt.Errorf("unknown significance label %q", s)
	}
	return label, nil
}

// Narrative renders the interpretation sentence for a correlation result.
// The p-value is formatted to 4 decimal places.
func (b *Bundle) Narrative(lang, xName, yName string, strength stats.StrengthLabel, sig stats.SignificanceLabel, pValue float64) (string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return "", err
	}
	strengthText, err := b.StrengthLabel(lang, strength)
	if err != nil {
		return "", err
	}
	sigText, err := b.SignificanceLabel(lang, sig)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(loc.narrativeFormat,
		strengthText, xName, yName, sigText, fmt.Sprintf("%.4f", pValue)), nil
}

// HomeMarkdown returns the localized Home page blurb as markdown source.
func (b *Bundle) HomeMarkdown(lang string) (string, error) {
	loc, err := b.locale(lang)
	if err != nil {
		return "", err
	}
	return loc.homeMarkdown, nil
}
