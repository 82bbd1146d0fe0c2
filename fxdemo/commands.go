package main

import (
	"fmt"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-typed-fx/config"
	"go-typed-fx/currency"
	"go-typed-fx/exchange"
	"go-typed-fx/report"
)

// app dependencies shared by every command, set up before a command runs
type app struct {
	v       *viper.Viper
	envFile string

	config  *config.Config
	logger  log.Logger
	service exchange.Service
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "fxdemo",
		Short: "Convert money between EUR, USD and SEK",
		Long: `fxdemo converts an amount in each of EUR, USD and SEK into every other one,
using quotes fixed at a single point in time.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runPairwise,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "optional file of FX_* environment variables")
	flags.Float64(config.KeyAmount, 100, "amount converted by the demo")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-format", "logfmt", "logfmt or json")
	_ = a.v.BindPFlag(config.KeyAmount, flags.Lookup(config.KeyAmount))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(newRatesCmd(a), newConvertCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.envFile)
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg)

	a.service = exchange.NewService()
	a.service = exchange.NewLoggingService(log.With(a.logger, "component", "exchange"), a.service)
	return nil
}

func (a *app) runPairwise(cmd *cobra.Command, _ []string) error {
	level.Debug(a.logger).Log("msg", "pairwise conversion", "amount", a.config.Amount)
	return report.Pairwise(cmd.OutOrStdout(), a.config.Amount)
}

func newRatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the quote table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rates := map[currency.Code]exchange.Rates{}
			for _, from := range currency.All() {
				r, err := a.service.Rates(cmd.Context(), from)
				if err != nil {
					return err
				}
				rates[from] = r
			}
			return report.RateTable(cmd.OutOrStdout(), rates)
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert AMOUNT FROM TO",
		Short:   "Convert an amount between two currencies",
		Example: "  fxdemo convert 100 EUR SEK",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount [%v]: %w", args[0], exchange.ErrInvalidAmount)
			}
			from, err := currency.Parse(args[1])
			if err != nil {
				return err
			}
			to, err := currency.Parse(args[2])
			if err != nil {
				return err
			}

			ex, err := a.service.Convert(cmd.Context(), exchange.Amount(amount), from, to)
			if err != nil {
				return err
			}
			return report.Conversion(cmd.OutOrStdout(), exchange.Amount(amount), from, to, ex)
		},
	}
}
