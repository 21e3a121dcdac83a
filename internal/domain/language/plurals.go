package language

import (
	"github.com/leonelquinteros/gotext/plurals"
)

// pluralSampleLimit bounds the n values probed when deriving the form count
// from a plural equation. Every common gettext equation stabilizes well
// below this.
const pluralSampleLimit = 1000

// Categories resolves the ordered set of plural categories a translation in
// the given language must supply. Resolution never fails: an unknown or
// malformed plural configuration degrades to the single "other" category,
// since this only affects counting, not stored data.
//
// Resolution order:
//  1. explicit category enumeration on the language;
//  2. the gettext plural equation, mapped through the declared (or observed)
//     number of plural forms;
//  3. fallback to {other}.
func Categories(lang Language) []Category {
	if explicit := lang.ExplicitCategories(); len(explicit) > 0 {
		return explicit
	}

	if eq := lang.PluralEquation(); eq != "" {
		expr, err := plurals.Compile(eq)
		if err == nil {
			n := lang.Nplurals()
			if n <= 0 {
				n = observedForms(expr)
			}
			return DefaultCategories(n)
		}
	}

	if n := lang.Nplurals(); n > 0 {
		return DefaultCategories(n)
	}

	return []Category{CategoryOther}
}

// DefaultCategories maps a plural form count to the conventional CLDR
// category progression. Counts outside [1,6] clamp to the nearest bound.
func DefaultCategories(nplurals int) []Category {
	switch {
	case nplurals <= 1:
		return []Category{CategoryOther}
	case nplurals == 2:
		return []Category{CategoryOne, CategoryOther}
	case nplurals == 3:
		return []Category{CategoryOne, CategoryFew, CategoryOther}
	case nplurals == 4:
		return []Category{CategoryOne, CategoryTwo, CategoryFew, CategoryOther}
	case nplurals == 5:
		return []Category{CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther}
	default:
		return []Category{CategoryZero, CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther}
	}
}

// observedForms evaluates the compiled equation over a range of counts and
// returns the number of distinct plural forms it produces.
func observedForms(expr plurals.Expression) int {
	maxForm := 0
	for n := uint32(0); n <= pluralSampleLimit; n++ {
		form := expr.Eval(n)
		if form < 0 {
			return 1
		}
		if form+1 > maxForm {
			maxForm = form + 1
		}
	}
	if maxForm == 0 {
		return 1
	}
	return maxForm
}

// RequiredCategories returns the categories a given entity must cover in the
// language: the full resolved set for pluralized entities, and only "other"
// for plain ones.
func RequiredCategories(lang Language, pluralized bool) []Category {
	if !pluralized {
		return []Category{CategoryOther}
	}
	return Categories(lang)
}
