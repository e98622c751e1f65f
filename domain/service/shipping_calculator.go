package service

import (
	"github.com/shopspring/decimal"
	"github.com/sokoide/bookstore/domain/entity"
)

// DefaultDomesticCountry is the country treated as domestic by the default
// calculator.
const DefaultDomesticCountry = "JP"

var (
	defaultDomesticRate      = decimal.NewFromInt(500)
	defaultInternationalRate = decimal.NewFromInt(2500)
)

// ShippingCalculator derives a flat shipping cost from the order's
// destination country. No distance or weight factors.
type ShippingCalculator struct {
	domesticCountry   string
	domesticRate      decimal.Decimal
	internationalRate decimal.Decimal
}

func NewShippingCalculator() *ShippingCalculator {
	return &ShippingCalculator{
		domesticCountry:   DefaultDomesticCountry,
		domesticRate:      defaultDomesticRate,
		internationalRate: defaultInternationalRate,
	}
}

// NewShippingCalculatorWithRates builds a calculator with explicit rates.
func NewShippingCalculatorWithRates(domesticCountry string, domestic, international decimal.Decimal) *ShippingCalculator {
	return &ShippingCalculator{
		domesticCountry:   domesticCountry,
		domesticRate:      domestic,
		internationalRate: international,
	}
}

// Calculate is side-effect free: the domestic rate exactly when the
// customer's country equals the domestic literal, otherwise the
// international rate.
func (c *ShippingCalculator) Calculate(order *entity.Order) decimal.Decimal {
	if order.Customer.ShippingAddress.Country == c.domesticCountry {
		return c.domesticRate
	}
	return c.internationalRate
}
