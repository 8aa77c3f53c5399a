package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrUnsupportedCurrency is returned when a currency code has no registered formatter.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// currencyPrinters maps a currency code to the locale used to format amounts
// in that currency. The code itself is printed before the amount, the way the
// printed documents show it ("THB 400,800.00").
var currencyPrinters = map[string]*message.Printer{
	"THB": message.NewPrinter(language.Thai),
	"USD": message.NewPrinter(language.AmericanEnglish),
}

// FormatAmount renders an amount in the given currency, grouped and with two
// decimal places. Unknown codes fail; callers that take codes from user data
// should validate with CurrencySupported first.
func FormatAmount(code string, amount decimal.Decimal) (string, error) {
	p, ok := currencyPrinters[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	f, _ := amount.Float64()
	return p.Sprintf("%s %v", code, number.Decimal(f, number.Scale(2))), nil
}

// CurrencySupported reports whether a formatter is registered for the code.
func CurrencySupported(code string) bool {
	_, ok := currencyPrinters[code]
	return ok
}

// SupportedCurrencies returns the registered currency codes in sorted order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencyPrinters))
	for code := range currencyPrinters {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
