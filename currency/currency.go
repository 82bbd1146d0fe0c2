// Package currency defines the closed set of supported currencies, both as
// types usable as type arguments and as runtime codes.
package currency

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrUnknownCurrency a currency code outside the supported set
var ErrUnknownCurrency = errors.New("unknown currency")

// Code a three-letter currency code
type Code string

const (
	CodeEUR Code = "EUR"
	CodeUSD Code = "USD"
	CodeSEK Code = "SEK"
)

func (c Code) String() string {
	return string(c)
}

// Info returns the descriptor for a runtime currency code.
func (c Code) Info() (*Info, error) {
	switch c {
	case CodeEUR:
		return EUR{}.Info(), nil
	case CodeUSD:
		return USD{}.Info(), nil
	case CodeSEK:
		return SEK{}.Info(), nil
	}
	return nil, fmt.Errorf("info [%v]: %w", c, ErrUnknownCurrency)
}

// Currency is the closed set of currency tags. It can only be used as a type
// constraint, so Money[EUR] and Money[USD] are distinct types.
type Currency interface {
	EUR | USD | SEK
	Code() Code
	Info() *Info
}

// Info describes a currency. There is exactly one Info per currency per process.
type Info struct {
	Code       Code
	Name       string
	Numeric    int
	MinorUnits int
}

// EUR the euro
type EUR struct{}

// USD the US dollar
type USD struct{}

// SEK the Swedish krona
type SEK struct{}

var (
	eurInfo = sync.OnceValue(func() *Info { return &Info{Code: CodeEUR, Name: "Euro", Numeric: 978, MinorUnits: 2} })
	usdInfo = sync.OnceValue(func() *Info { return &Info{Code: CodeUSD, Name: "US Dollar", Numeric: 840, MinorUnits: 2} })
	sekInfo = sync.OnceValue(func() *Info { return &Info{Code: CodeSEK, Name: "Swedish Krona", Numeric: 752, MinorUnits: 2} })
)

func (EUR) Code() Code { return CodeEUR }
func (EUR) Info() *Info { return eurInfo() }
func (EUR) String() string { return string(CodeEUR) }

func (USD) Code() Code { return CodeUSD }
func (USD) Info() *Info { return usdInfo() }
func (USD) String() string { return string(CodeUSD) }

func (SEK) Code() Code { return CodeSEK }
func (SEK) Info() *Info { return sekInfo() }
func (SEK) String() string { return string(CodeSEK) }

// All returns every supported currency code, in a fixed order.
func All() []Code {
	return []Code{CodeEUR, CodeUSD, CodeSEK}
}

// Parse looks up a currency code, ignoring case and surrounding spaces.
func Parse(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range All() {
		if c == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("parse [%q]: %w", s, ErrUnknownCurrency)
}
