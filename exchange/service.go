package exchange

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go-typed-fx/currency"
	"go-typed-fx/fx"
)

// ErrInvalidAmount an amount, or converted amount, that is NaN or infinite
var ErrInvalidAmount = errors.New("invalid amount")

// Service converts amounts between currencies given as runtime codes.
// Callers holding typed money.Money values should use fx.Fx instead.
type Service interface {
	Convert(ctx context.Context, amount Amount, from currency.Code, to currency.Code) (Exchanged, error)
	Rates(ctx context.Context, from currency.Code) (Rates, error)
}

// service backed by the fixed fx quote table
type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return &service{}
}

// Convert computes a conversion from one currency to another with the fixed exchange rate.
func (s *service) Convert(ctx context.Context, amount Amount, from currency.Code, to currency.Code) (Exchanged, error) {
	if err := ctx.Err(); err != nil {
		return Exchanged{}, err
	}
	if math.IsNaN(float64(amount)) || math.IsInf(float64(amount), 0) {
		return Exchanged{}, fmt.Errorf("convert [%v]: %w", amount, ErrInvalidAmount)
	}
	if _, err := from.Info(); err != nil {
		return Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}
	if _, err := to.Info(); err != nil {
		return Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, err)
	}

	rate := Rate(fx.Quote(from, to))
	result := Exchanged{
		Rate:   rate,
		Amount: Amount(float64(rate) * float64(amount)),
	}
	if math.IsInf(float64(result.Amount), 0) {
		return Exchanged{}, fmt.Errorf("convert [%v]: result overflows: %w", amount, ErrInvalidAmount)
	}

	return result, nil
}

// Rates returns the rate from one currency to every supported currency, itself included.
func (s *service) Rates(ctx context.Context, from currency.Code) (Rates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := from.Info(); err != nil {
		return nil, fmt.Errorf("rates [%v]: %w", from, err)
	}

	rates := Rates{}
	for _, to := range currency.All() {
		rates[to] = Rate(fx.Quote(from, to))
	}
	return rates, nil
}
