package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-typed-fx/currency"
)

// loggingService decorates an exchange.Service with debug level logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount Amount, from currency.Code, to currency.Code) (ex Exchanged, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *loggingService) Rates(ctx context.Context, from currency.Code) (rates Rates, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "rates",
			"from", from,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx, from)
}
