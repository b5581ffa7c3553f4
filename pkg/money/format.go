package money

import "fmt"

// FormatOption adjusts how Format renders an amount.
type FormatOption func(*formatOptions)

type formatOptions struct {
	showCode bool
	symbol   string
}

// WithoutCurrencyCode drops the trailing ISO code, "$29.99" instead of
// "$29.99 USD".
func WithoutCurrencyCode() FormatOption {
	return func(o *formatOptions) { o.showCode = false }
}

// WithSymbol overrides the currency's own symbol, e.g. "US$" for USD.
func WithSymbol(symbol string) FormatOption {
	return func(o *formatOptions) { o.symbol = symbol }
}

// String renders the amount with the currency symbol at the currency's display
// precision: "$29.99", or "¥1000" for zero-precision currencies.
func (m Money) String() string {
	if m.currency.Precision == 0 {
		return fmt.Sprintf("%s%d", m.currency.Symbol, floorDiv(m.amount, m.currency.SubUnitsPerUnit))
	}
	return m.currency.Symbol + m.Amount().StringFixed(m.currency.Precision)
}

// Format renders the amount for display. By default the currency code is
// appended, "$29.99 USD"; options suppress the code or override the symbol.
func (m Money) Format(opts ...FormatOption) string {
	o := formatOptions{showCode: true, symbol: m.currency.Symbol}
	for _, opt := range opts {
		opt(&o)
	}

	s := o.symbol + m.Amount().StringFixed(m.currency.Precision)
	if o.showCode {
		return s + " " + m.currency.Code
	}
	return s
}
