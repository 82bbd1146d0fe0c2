package exchange

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"

	"go-typed-fx/currency"
)

type mock struct {
	t      *testing.T
	amount Amount
	from   currency.Code
	to     currency.Code
}

func (m *mock) Convert(_ context.Context, amount Amount, from currency.Code, to currency.Code) (Exchanged, error) {
	assert.Equal(m.t, m.amount, amount, "amount")
	assert.Equal(m.t, m.from, from, "from")
	assert.Equal(m.t, m.to, to, "to")
	return Exchanged{Rate: 2.0, Amount: 6.0}, nil
}

func (m *mock) Rates(_ context.Context, from currency.Code) (Rates, error) {
	assert.Equal(m.t, m.from, from, "from")
	return Rates{"EUR": 1.0}, nil
}

func TestLoggingService(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	s := NewLoggingService(logger, &mock{t: t, amount: 3, from: "EUR", to: "SEK"})

	ex, err := s.Convert(context.Background(), 3, "EUR", "SEK")
	assert.NoError(t, err)
	assert.Equal(t, Exchanged{Rate: 2.0, Amount: 6.0}, ex)
	assert.Contains(t, buf.String(), "level=debug method=convert amount=3 from=EUR to=SEK rate=2 converted_amount=6")

	buf.Reset()
	rates, err := s.Rates(context.Background(), "EUR")
	assert.NoError(t, err)
	assert.Len(t, rates, 1)
	assert.Contains(t, buf.String(), "level=debug method=rates from=EUR count=1")
}

func TestLoggingService_FilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowInfo())

	s := NewLoggingService(logger, &mock{t: t, amount: 3, from: "EUR", to: "SEK"})
	_, err := s.Convert(context.Background(), 3, "EUR", "SEK")

	assert.NoError(t, err)
	assert.Empty(t, buf.String())
}
