package domain

// DefaultLanguage is used whenever the caller's language selection is
// missing or unrecognized.
const DefaultLanguage = "English"

var languageCodes = map[string]string{
	"English":   "en",
	"Hindi":     "hi",
	"Tamil":     "ta",
	"Malayalam": "ml",
}

// LanguageCode maps a spoken-language selector to its whisper code.
// Unknown selectors fall back to English rather than failing.
func LanguageCode(language string) string {
	if code, ok := languageCodes[language]; ok {
		return code
	}
	return languageCodes[DefaultLanguage]
}

// SupportedLanguages lists the selectors the UI may offer.
func SupportedLanguages() []string {
	return []string{"English", "Hindi", "Tamil", "Malayalam"}
}
