// Package money holds amounts whose currency is part of their type.
//
// A Money[currency.EUR] and a Money[currency.USD] are different types, so
// mixing them, or building one from the other's currency tag, is a compile
// error rather than a runtime check.
package money

import (
	"strconv"

	"go-typed-fx/currency"
)

// Money an amount in the currency C. The zero value is zero of C.
type Money[C currency.Currency] struct {
	ccy    C
	amount float64
}

// New constructs Money in the currency of ccy. C is inferred from ccy, so
// the declared and actual currency cannot disagree.
func New[C currency.Currency](ccy C, amount float64) Money[C] {
	return Money[C]{ccy: ccy, amount: amount}
}

// Of constructs Money with an explicit currency type argument, e.g. Of[currency.SEK](10).
func Of[C currency.Currency](amount float64) Money[C] {
	var ccy C
	return New(ccy, amount)
}

func (m Money[C]) Currency() C {
	return m.ccy
}

func (m Money[C]) Code() currency.Code {
	return m.ccy.Code()
}

func (m Money[C]) Amount() float64 {
	return m.amount
}

// Add sums two amounts of the same currency.
func (m Money[C]) Add(o Money[C]) Money[C] {
	return New(m.ccy, m.amount+o.amount)
}

// Sub subtracts o from m.
func (m Money[C]) Sub(o Money[C]) Money[C] {
	return New(m.ccy, m.amount-o.amount)
}

func (m Money[C]) Neg() Money[C] {
	return New(m.ccy, -m.amount)
}

// String renders the currency code and the amount rounded to the currency's minor units, e.g. "EUR 100.00".
func (m Money[C]) String() string {
	return string(m.Code()) + " " + strconv.FormatFloat(m.amount, 'f', m.ccy.Info().MinorUnits, 64)
}
