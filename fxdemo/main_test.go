package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-typed-fx/config"
	"go-typed-fx/currency"
	"go-typed-fx/exchange"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPairwise(t *testing.T) {
	out, _, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "EUR 100.00 -> SEK 1137.00\n")
	assert.Contains(t, out, "USD 100.00 -> SEK 1040.00\n")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 9)
}

func TestPairwise_Amount(t *testing.T) {
	out, _, err := execute(t, "--amount", "10")

	require.NoError(t, err)
	assert.Contains(t, out, "EUR 10.00 -> USD 10.80\n")
}

func TestPairwise_LargeAmount(t *testing.T) {
	out, _, err := execute(t, "--amount", "1e307")

	require.NoError(t, err)
	assert.NotContains(t, out, "Inf")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 9)
}

func TestRates(t *testing.T) {
	out, stderr, err := execute(t, "rates")

	require.NoError(t, err)
	assert.Contains(t, out, "quotes as of 2024-01-23")
	assert.Contains(t, out, "10.400000")
	assert.NotContains(t, stderr, "method=rates")

	_, stderr, err = execute(t, "--log-level", "debug", "rates")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "method=rates"))
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{"eur -> sek", []string{"100", "EUR", "SEK"}, "EUR 100.00 -> SEK 1137.00 (rate 11.370000)\n", nil},
		{"lower case", []string{"100", "usd", "eur"}, "USD 100.00 -> EUR 92.59 (rate 0.925926)\n", nil},
		{"unknown currency", []string{"100", "EUR", "GBP"}, "", currency.ErrUnknownCurrency},
		{"bad amount", []string{"ten", "EUR", "SEK"}, "", exchange.ErrInvalidAmount},
		{"result overflows", []string{"1e308", "EUR", "SEK"}, "", exchange.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"convert"}, tt.args...)...)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvert_Args(t *testing.T) {
	_, _, err := execute(t, "convert", "100", "EUR")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(&buf, &config.Config{LogLevel: "warn", LogFormat: "json"})
	level.Info(logger).Log("msg", "dropped")
	level.Warn(logger).Log("msg", "kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}
