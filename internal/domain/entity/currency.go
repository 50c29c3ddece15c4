package entity

// DefaultCurrency is the currency newly signed-up users hold balances in
// until they exchange into something else.
const DefaultCurrency = "USD"

// currencySymbols maps ISO 4217 codes to their display glyphs.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// CurrencySymbol returns the display glyph for a currency code.
// Unknown codes map to the empty string; this never fails.
func CurrencySymbol(code string) string {
	return currencySymbols[code]
}
