// Package fx converts Money between currencies using a fixed quote table.
package fx

import (
	"fmt"
	"time"

	"go-typed-fx/currency"
	"go-typed-fx/money"
)

// QuotesAsOf the day the hardcoded quotes were taken. They are not refreshed.
var QuotesAsOf = time.Date(2024, time.January, 23, 0, 0, 0, 0, time.UTC)

// Rate an exchange rate from From to To
type Rate[From, To currency.Currency] struct {
	from  From
	to    To
	quote float64
}

func (r Rate[From, To]) From() From {
	return r.from
}

func (r Rate[From, To]) To() To {
	return r.to
}

// Quote the multiplier taking an amount in From to an amount in To
func (r Rate[From, To]) Quote() float64 {
	return r.quote
}

// GetRate looks up the rate between two currencies.
func GetRate[From, To currency.Currency](from From, to To) Rate[From, To] {
	return Rate[From, To]{
		from:  from,
		to:    to,
		quote: Quote(from.Code(), to.Code()),
	}
}

// Fx converts m into the currency to. Converting to the same currency returns the same amount.
func Fx[From, To currency.Currency](m money.Money[From], to To) money.Money[To] {
	return money.New(to, m.Amount()*Quote(m.Code(), to.Code()))
}

// Convert applies an already looked up rate to m.
func Convert[From, To currency.Currency](m money.Money[From], rate Rate[From, To]) money.Money[To] {
	return money.New(rate.To(), m.Amount()*rate.Quote())
}

// Quote returns the multiplier such that amount_in_to = amount_in_from * Quote(from, to).
//
// One direction per pair is hardcoded; the other is its reciprocal, so there is no bid/ask spread.
// Same-currency pairs are exactly 1. Codes outside currency.All are a programming error and panic.
func Quote(from, to currency.Code) float64 {
	invert := func() float64 {
		return 1 / Quote(to, from)
	}

	switch from {
	case currency.CodeEUR:
		switch to {
		case currency.CodeEUR:
			return 1
		case currency.CodeUSD:
			return 1.08
		case currency.CodeSEK:
			return 11.37
		}
	case currency.CodeUSD:
		switch to {
		case currency.CodeEUR:
			return invert()
		case currency.CodeUSD:
			return 1
		case currency.CodeSEK:
			return 10.4
		}
	case currency.CodeSEK:
		switch to {
		case currency.CodeEUR:
			return invert()
		case currency.CodeUSD:
			return invert()
		case currency.CodeSEK:
			return 1
		}
	}
	panic(fmt.Sprintf("fx: unreachable quote [%v -> %v]", from, to))
}
