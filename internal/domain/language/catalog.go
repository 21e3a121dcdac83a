package language

import (
	"strings"

	xlang "golang.org/x/text/language"
)

// catalog holds the built-in languages with their plural configuration.
// The equations are the standard gettext Plural-Forms expressions; the
// category sets follow the CLDR cardinal rules.
//
// Ref: https://www.unicode.org/cldr/charts/46/supplemental/language_plural_rules.html
var catalog = map[string]Language{
	// One form.
	"ja": MustNew("ja", "Japanese", 1, "0", CategoryOther),
	"zh": MustNew("zh", "Chinese", 1, "0", CategoryOther),
	"ko": MustNew("ko", "Korean", 1, "0", CategoryOther),
	"vi": MustNew("vi", "Vietnamese", 1, "0", CategoryOther),
	"th": MustNew("th", "Thai", 1, "0", CategoryOther),
	"id": MustNew("id", "Indonesian", 1, "0", CategoryOther),
	"ms": MustNew("ms", "Malay", 1, "0", CategoryOther),

	// Two forms, singular for n == 1.
	"en": MustNew("en", "English", 2, "n != 1", CategoryOne, CategoryOther),
	"de": MustNew("de", "German", 2, "n != 1", CategoryOne, CategoryOther),
	"nl": MustNew("nl", "Dutch", 2, "n != 1", CategoryOne, CategoryOther),
	"sv": MustNew("sv", "Swedish", 2, "n != 1", CategoryOne, CategoryOther),
	"da": MustNew("da", "Danish", 2, "n != 1", CategoryOne, CategoryOther),
	"nb": MustNew("nb", "Norwegian Bokmål", 2, "n != 1", CategoryOne, CategoryOther),
	"fi": MustNew("fi", "Finnish", 2, "n != 1", CategoryOne, CategoryOther),
	"et": MustNew("et", "Estonian", 2, "n != 1", CategoryOne, CategoryOther),
	"el": MustNew("el", "Greek", 2, "n != 1", CategoryOne, CategoryOther),
	"es": MustNew("es", "Spanish", 2, "n != 1", CategoryOne, CategoryOther),
	"it": MustNew("it", "Italian", 2, "n != 1", CategoryOne, CategoryOther),
	"ca": MustNew("ca", "Catalan", 2, "n != 1", CategoryOne, CategoryOther),
	"bg": MustNew("bg", "Bulgarian", 2, "n != 1", CategoryOne, CategoryOther),
	"hu": MustNew("hu", "Hungarian", 2, "n != 1", CategoryOne, CategoryOther),
	"tr": MustNew("tr", "Turkish", 2, "n != 1", CategoryOne, CategoryOther),
	"sq": MustNew("sq", "Albanian", 2, "n != 1", CategoryOne, CategoryOther),
	"eu": MustNew("eu", "Basque", 2, "n != 1", CategoryOne, CategoryOther),
	"gl": MustNew("gl", "Galician", 2, "n != 1", CategoryOne, CategoryOther),
	"pt-PT": MustNew("pt_PT", "Portuguese (Portugal)", 2, "n != 1", CategoryOne, CategoryOther),

	// Two forms, singular for n == 0 or n == 1.
	"fr":    MustNew("fr", "French", 2, "n > 1", CategoryOne, CategoryOther),
	"pt":    MustNew("pt", "Portuguese", 2, "n > 1", CategoryOne, CategoryOther),
	"pt-BR": MustNew("pt_BR", "Portuguese (Brazil)", 2, "n > 1", CategoryOne, CategoryOther),
	"hi":    MustNew("hi", "Hindi", 2, "n > 1", CategoryOne, CategoryOther),
	"fa":    MustNew("fa", "Persian", 2, "n > 1", CategoryOne, CategoryOther),

	// Slavic three-way split plus the CLDR fraction class.
	"ru": MustNew("ru", "Russian", 4, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryMany, CategoryOther),
	"uk": MustNew("uk", "Ukrainian", 4, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryMany, CategoryOther),
	"be": MustNew("be", "Belarusian", 4, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryMany, CategoryOther),
	"pl": MustNew("pl", "Polish", 4, "n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryMany, CategoryOther),
	"sr": MustNew("sr", "Serbian", 3, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryOther),
	"hr": MustNew("hr", "Croatian", 3, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryOther),
	"bs": MustNew("bs", "Bosnian", 3, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryOther),
	"cs": MustNew("cs", "Czech", 3, "(n==1) ? 0 : (n>=2 && n<=4) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryOther),
	"sk": MustNew("sk", "Slovak", 3, "(n==1) ? 0 : (n>=2 && n<=4) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryOther),
	"ro": MustNew("ro", "Romanian", 3, "n==1 ? 0 : (n==0 || (n%100 > 0 && n%100 < 20)) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryOther),
	"lt": MustNew("lt", "Lithuanian", 4, "n%10==1 && n%100!=11 ? 0 : n%10>=2 && (n%100<10 || n%100>=20) ? 1 : 2",
		CategoryOne, CategoryFew, CategoryMany, CategoryOther),
	"lv": MustNew("lv", "Latvian", 3, "n%10==1 && n%100!=11 ? 0 : n != 0 ? 1 : 2",
		CategoryZero, CategoryOne, CategoryOther),

	// Four and more forms.
	"sl": MustNew("sl", "Slovenian", 4, "n%100==1 ? 0 : n%100==2 ? 1 : n%100==3 || n%100==4 ? 2 : 3",
		CategoryOne, CategoryTwo, CategoryFew, CategoryOther),
	"he": MustNew("he", "Hebrew", 4, "n==1 ? 0 : n==2 ? 1 : (n>10 && n%10==0) ? 2 : 3",
		CategoryOne, CategoryTwo, CategoryMany, CategoryOther),
	"mt": MustNew("mt", "Maltese", 4, "n==1 ? 0 : n==0 || (n%100>1 && n%100<11) ? 1 : (n%100>10 && n%100<20) ? 2 : 3",
		CategoryOne, CategoryFew, CategoryMany, CategoryOther),
	"ga": MustNew("ga", "Irish", 5, "n==1 ? 0 : n==2 ? 1 : (n>2 && n<7) ? 2 : (n>6 && n<11) ? 3 : 4",
		CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther),
	"cy": MustNew("cy", "Welsh", 6, "(n==0) ? 0 : (n==1) ? 1 : (n==2) ? 2 : (n==3) ? 3 : (n==6) ? 4 : 5",
		CategoryZero, CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther),
	"ar": MustNew("ar", "Arabic", 6, "n==0 ? 0 : n==1 ? 1 : n==2 ? 2 : n%100>=3 && n%100<=10 ? 3 : n%100>=11 ? 4 : 5",
		CategoryZero, CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther),
}

// Lookup resolves a language code to a catalog entry. Codes are matched
// case-insensitively and both "pt_BR" and "pt-BR" spellings are accepted;
// an unmatched region falls back to the base language ("de_AT" resolves to
// "de"). The second return value reports whether a catalog entry was found.
func Lookup(code string) (Language, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if normalized == "" {
		return Language{}, false
	}

	tag, err := xlang.Parse(normalized)
	if err != nil {
		// Not BCP 47; try the raw spelling before giving up.
		if lang, ok := catalog[normalized]; ok {
			return lang, true
		}
		return Language{}, false
	}

	if lang, ok := catalog[tag.String()]; ok {
		return lang, true
	}

	base, _ := tag.Base()
	if lang, ok := catalog[base.String()]; ok {
		return lang, true
	}

	return Language{}, false
}

// LookupOrFallback resolves a language code, degrading to a minimal
// "other"-only language for codes missing from the catalog. Counting for an
// unknown language stays well defined (plain entities only need "other").
func LookupOrFallback(code string) Language {
	if lang, ok := Lookup(code); ok {
		return lang
	}
	fallback, err := New(code, "", 1, "", CategoryOther)
	if err != nil {
		return MustNew("und", "Undetermined", 1, "", CategoryOther)
	}
	return fallback
}
