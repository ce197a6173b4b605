// Package testutil provides shared fixtures for integration tests.
package testutil

import (
	"github.com/sailing-search/sailing-route-service/internal/domain"
)

// NewSailing builds a sailing record from its parts.
func NewSailing(code, origin, destination, departure, arrival string) domain.Sailing {
	return domain.Sailing{
		OriginPort:      origin,
		DestinationPort: destination,
		DepartureDate:   departure,
		ArrivalDate:     arrival,
		SailingCode:     code,
	}
}

// NewRate builds a rate record for a sailing.
func NewRate(code, amount, currency string) domain.Rate {
	return domain.Rate{
		SailingCode: code,
		Amount:      amount,
		Currency:    currency,
	}
}

// SampleNetwork returns a small multi-currency sailing network used across
// integration tests.
//
//	CNSHA --ABCD--> NLRTM            direct, $589.30 on 2022-02-01
//	CNSHA --EFGH--> SGSIN --IJKL--> NLRTM   two legs, cheaper in total
//	CNSHA --QRST--> NLRTM            direct, faster but dearer
func SampleNetwork() ([]domain.Sailing, []domain.Rate, domain.ExchangeRates) {
	sailings := []domain.Sailing{
		NewSailing("ABCD", "CNSHA", "NLRTM", "2022-02-01", "2022-03-01"),
		NewSailing("EFGH", "CNSHA", "SGSIN", "2022-02-02", "2022-02-10"),
		NewSailing("IJKL", "SGSIN", "NLRTM", "2022-02-15", "2022-03-12"),
		NewSailing("QRST", "CNSHA", "NLRTM", "2022-01-30", "2022-02-17"),
	}
	rates := []domain.Rate{
		NewRate("ABCD", "589.30", "USD"),
		NewRate("EFGH", "100.50", "USD"),
		NewRate("IJKL", "40000", "JPY"),
		NewRate("QRST", "761.96", "EUR"),
	}
	exchangeRates := domain.ExchangeRates{
		"2022-01-30": {"usd": 1.1238, "jpy": 130.85},
		"2022-02-01": {"usd": 1.1262, "jpy": 130.15},
		"2022-02-02": {"usd": 1.1256, "jpy": 130.26},
		"2022-02-15": {"usd": 1.1332, "jpy": 131.3},
	}
	return sailings, rates, exchangeRates
}
