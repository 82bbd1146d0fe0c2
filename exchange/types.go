package exchange

import "go-typed-fx/currency"

// Amount a monetary amount whose currency is only known at runtime
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps a target currency to the rate from some source currency
type Rates map[currency.Code]Rate

// Exchanged the result of a conversion
type Exchanged struct {
	Rate   Rate
	Amount Amount
}
