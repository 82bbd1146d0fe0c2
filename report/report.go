// Package report writes the human readable demonstration output of fxdemo.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"go-typed-fx/currency"
	"go-typed-fx/exchange"
	"go-typed-fx/fx"
	"go-typed-fx/money"
)

// Pairwise writes amount in each currency converted into every currency, e.g. "EUR 100.00 -> SEK 1137.00".
func Pairwise(w io.Writer, amount float64) error {
	eur := money.New(currency.EUR{}, amount)
	usd := money.New(currency.USD{}, amount)
	sek := money.New(currency.SEK{}, amount)

	lines := [][2]string{
		{eur.String(), fx.Fx(eur, currency.EUR{}).String()},
		{eur.String(), fx.Fx(eur, currency.USD{}).String()},
		{eur.String(), fx.Fx(eur, currency.SEK{}).String()},
		{usd.String(), fx.Fx(usd, currency.EUR{}).String()},
		{usd.String(), fx.Fx(usd, currency.USD{}).String()},
		{usd.String(), fx.Fx(usd, currency.SEK{}).String()},
		{sek.String(), fx.Fx(sek, currency.EUR{}).String()},
		{sek.String(), fx.Fx(sek, currency.USD{}).String()},
		{sek.String(), fx.Fx(sek, currency.SEK{}).String()},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", line[0], line[1]); err != nil {
			return fmt.Errorf("writing conversion: %w", err)
		}
	}
	return nil
}

// RateTable writes the quote from every currency (rows) to every currency (columns),
// followed by the name and ISO numeric code of each currency.
// rates maps each source currency to its Rates.
func RateTable(w io.Writer, rates map[currency.Code]exchange.Rates) error {
	codes := currency.All()

	var b strings.Builder
	fmt.Fprintf(&b, "quotes as of %s\n", fx.QuotesAsOf.Format("2006-01-02"))
	fmt.Fprintf(&b, "%-4s", "")
	for _, to := range codes {
		fmt.Fprintf(&b, " %10s", to)
	}
	b.WriteString("\n")

	for _, from := range codes {
		row, ok := rates[from]
		if !ok {
			return fmt.Errorf("rate table: no rates for [%v]", from)
		}
		fmt.Fprintf(&b, "%-4s", from)
		for _, to := range codes {
			rate, ok := row[to]
			if !ok {
				return fmt.Errorf("rate table: no rate [%v -> %v]", from, to)
			}
			fmt.Fprintf(&b, " %10s", FormatRate(rate))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, code := range codes {
		info, err := code.Info()
		if err != nil {
			return fmt.Errorf("rate table: %w", err)
		}
		fmt.Fprintf(&b, "%-4s %03d %s\n", info.Code, info.Numeric, info.Name)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Conversion writes the outcome of a runtime conversion.
func Conversion(w io.Writer, amount exchange.Amount, from, to currency.Code, ex exchange.Exchanged) error {
	_, err := fmt.Fprintf(w, "%s %s -> %s %s (rate %s)\n",
		from, FormatAmount(amount), to, FormatAmount(ex.Amount), FormatRate(ex.Rate))
	return err
}

// FormatAmount renders an amount with two decimals.
func FormatAmount(amount exchange.Amount) string {
	return decimal.NewFromFloat(float64(amount)).StringFixed(2)
}

// FormatRate renders a rate with six decimals.
func FormatRate(rate exchange.Rate) string {
	return decimal.NewFromFloat(float64(rate)).StringFixed(6)
}
