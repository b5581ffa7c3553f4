package money

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ledgerkit/moneykit/pkg/apperrors"
)

// maxSymbolLength bounds display symbols; "Mex$" is the longest common one.
const maxSymbolLength = 5

// Currency describes a form of money issued by a central authority: its ISO 4217
// code, display symbol, unit names, and the ratio between major and minor units.
// Currencies are immutable value objects compared by ISO code; they can be safely
// shared across goroutines.
type Currency struct {
	Code            string // three-letter ISO 4217 code, always uppercase (e.g., "USD")
	Symbol          string // display symbol (e.g., "$")
	Name            string // major unit name (e.g., "dollar")
	SubUnitName     string // minor unit name (e.g., "cent")
	SubUnitsPerUnit int64  // minor units per major unit (100 for USD, 1 for JPY)
	Precision       int32  // decimal places for display
}

// NewCurrency builds a Currency with the common ratio of 100 minor units per major
// unit and two decimal places of display precision.
func NewCurrency(code, symbol, name, subUnitName string) (Currency, error) {
	return NewCurrencyWithSubUnits(code, symbol, name, subUnitName, 100, 2)
}

// NewCurrencyWithSubUnits builds a Currency with an explicit minor-unit ratio and
// display precision, for currencies that do not use the 1:100 convention (JPY, BTC).
// The code is normalized to uppercase. Returns a validation error when the code is
// not exactly three non-blank characters, any name is blank, the symbol exceeds
// five characters, the ratio is not strictly positive, or the precision is negative.
func NewCurrencyWithSubUnits(code, symbol, name, subUnitName string, subUnitsPerUnit int64, precision int32) (Currency, error) {
	if strings.TrimSpace(code) == "" {
		return Currency{}, fmt.Errorf("%w: currency code must not be blank", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(code) != 3 {
		return Currency{}, fmt.Errorf("%w: currency code %q must be exactly 3 characters", apperrors.ErrValidation, code)
	}
	if strings.TrimSpace(symbol) == "" {
		return Currency{}, fmt.Errorf("%w: symbol must not be blank", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(symbol) > maxSymbolLength {
		return Currency{}, fmt.Errorf("%w: symbol %q exceeds %d characters", apperrors.ErrValidation, symbol, maxSymbolLength)
	}
	if strings.TrimSpace(name) == "" {
		return Currency{}, fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
	}
	if strings.TrimSpace(subUnitName) == "" {
		return Currency{}, fmt.Errorf("%w: sub-unit name must not be blank", apperrors.ErrValidation)
	}
	if subUnitsPerUnit <= 0 {
		return Currency{}, fmt.Errorf("%w: sub-units per unit must be positive, got %d", apperrors.ErrValidation, subUnitsPerUnit)
	}
	if precision < 0 {
		return Currency{}, fmt.Errorf("%w: sub-unit precision must not be negative, got %d", apperrors.ErrValidation, precision)
	}

	return Currency{
		Code:            strings.ToUpper(code),
		Symbol:          symbol,
		Name:            name,
		SubUnitName:     subUnitName,
		SubUnitsPerUnit: subUnitsPerUnit,
		Precision:       precision,
	}, nil
}

// MustCurrency is like NewCurrencyWithSubUnits but panics on validation failure.
// Intended for package-level currency declarations.
func MustCurrency(code, symbol, name, subUnitName string, subUnitsPerUnit int64, precision int32) Currency {
	c, err := NewCurrencyWithSubUnits(code, symbol, name, subUnitName, subUnitsPerUnit, precision)
	if err != nil {
		panic(err)
	}
	return c
}

// Equal reports whether two currencies denote the same ISO code.
func (c Currency) Equal(other Currency) bool {
	return c.Code == other.Code
}

// String returns "USD ($)".
func (c Currency) String() string {
	return fmt.Sprintf("%s (%s)", c.Code, c.Symbol)
}

// DisplayName returns the title-cased major unit name with the code, "Dollar (USD)".
func (c Currency) DisplayName() string {
	return fmt.Sprintf("%s (%s)", cases.Title(language.English).String(c.Name), c.Code)
}

// SubUnitDisplayName returns the minor unit described in terms of the major unit,
// "cent (1/100 dollar)".
func (c Currency) SubUnitDisplayName() string {
	return fmt.Sprintf("%s (1/%d %s)", c.SubUnitName, c.SubUnitsPerUnit, c.Name)
}

// Common currencies, registered in the default registry.
var (
	USD = MustCurrency("USD", "$", "dollar", "cent", 100, 2)
	EUR = MustCurrency("EUR", "€", "euro", "cent", 100, 2)
	GBP = MustCurrency("GBP", "£", "pound", "penny", 100, 2)
	JPY = MustCurrency("JPY", "¥", "yen", "sen", 1, 0)
	CHF = MustCurrency("CHF", "Fr", "franc", "rappen", 100, 2)
	CNY = MustCurrency("CNY", "¥", "yuan", "fen", 100, 2)
	CAD = MustCurrency("CAD", "C$", "dollar", "cent", 100, 2)
	AUD = MustCurrency("AUD", "A$", "dollar", "cent", 100, 2)
	INR = MustCurrency("INR", "₹", "rupee", "paisa", 100, 2)
	BRL = MustCurrency("BRL", "R$", "real", "centavo", 100, 2)
	MXN = MustCurrency("MXN", "Mex$", "peso", "centavo", 100, 2)
	RUB = MustCurrency("RUB", "₽", "ruble", "kopek", 100, 2)
	BTC = MustCurrency("BTC", "₿", "bitcoin", "satoshi", 100_000_000, 8)
	ETH = MustCurrency("ETH", "Ξ", "ether", "wei", 1_000_000_000_000_000_000, 18)
)
