package service

import (
	"sort"
	"strings"
)

var currencySymbols = map[string]string{
	"CNY": "¥",
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
}

// Currency is a currency code with its display symbol.
type Currency struct {
	Code   string
	Symbol string
}

// CurrencySymbols returns a copy of the code -> symbol table.
func CurrencySymbols() map[string]string {
	out := make(map[string]string, len(currencySymbols))
	for k, v := range currencySymbols {
		out[k] = v
	}
	return out
}

// Symbol returns the display symbol for code (case-insensitive), falling
// back to the code itself when unknown.
func Symbol(code string) string {
	if s, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return s
	}
	return code
}

// Currencies returns the symbol table sorted by code.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencySymbols))
	for code, sym := range currencySymbols {
		out = append(out, Currency{Code: code, Symbol: sym})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
