package bignumberx

// Locale supplies locale-specific decimal-formatting details. The core
// reads it only at parse/format time and stores no locale state itself.
type Locale interface {
	// DecimalSeparator returns the string inserted between the integer and
	// fractional parts of a formatted BigDecimal.
	DecimalSeparator() string
}

// dotLocale is the default Locale, using "." as the decimal separator.
type dotLocale struct{}

func (dotLocale) DecimalSeparator() string { return "." }

// DotLocale is the default Locale collaborator, used whenever a nil Locale
// is passed to a parse/format call.
var DotLocale Locale = dotLocale{}

func separatorOf(loc Locale) string {
	if loc == nil {
		return DotLocale.DecimalSeparator()
	}
	return loc.DecimalSeparator()
}
