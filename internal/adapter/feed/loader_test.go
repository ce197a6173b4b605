package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailing-search/sailing-route-service/internal/domain"
)

const validSnapshotJSON = `{
	"sailings": [
		{
			"origin_port": "CNSHA",
			"destination_port": "NLRTM",
			"departure_date": "2022-02-01",
			"arrival_date": "2022-03-01",
			"sailing_code": "ABCD"
		}
	],
	"rates": [
		{
			"sailing_code": "ABCD",
			"rate": "589.30",
			"rate_currency": "USD"
		}
	],
	"exchange_rates": {
		"2022-02-01": {
			"usd": 1.1262,
			"jpy": 130.15
		}
	}
}`

func TestParse(t *testing.T) {
	snapshot, err := Parse(strings.NewReader(validSnapshotJSON))
	require.NoError(t, err)

	require.Len(t, snapshot.Sailings, 1)
	assert.Equal(t, "CNSHA", snapshot.Sailings[0].OriginPort)
	assert.Equal(t, "NLRTM", snapshot.Sailings[0].DestinationPort)
	assert.Equal(t, "ABCD", snapshot.Sailings[0].SailingCode)

	require.Len(t, snapshot.Rates, 1)
	assert.Equal(t, "589.30", snapshot.Rates[0].Amount)
	assert.Equal(t, "USD", snapshot.Rates[0].Currency)

	require.Contains(t, snapshot.ExchangeRates, "2022-02-01")
	assert.Equal(t, 1.1262, snapshot.ExchangeRates["2022-02-01"]["usd"])
}

func TestParse_EmptyCollections(t *testing.T) {
	snapshot, err := Parse(strings.NewReader(`{"sailings": [], "rates": [], "exchange_rates": {}}`))
	require.NoError(t, err)
	assert.Empty(t, snapshot.Sailings)
	assert.Empty(t, snapshot.Rates)
	assert.Empty(t, snapshot.ExchangeRates)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `sailings,rates`},
		{name: "wrong shape", body: `{"sailings": {"a": 1}, "rates": [], "exchange_rates": {}}`},
		{name: "missing sailings", body: `{"rates": [], "exchange_rates": {}}`},
		{name: "missing rates", body: `{"sailings": [], "exchange_rates": {}}`},
		{name: "missing exchange rates", body: `{"sailings": [], "rates": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := Parse(strings.NewReader(tt.body))
			assert.Nil(t, snapshot)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sailings.json")
	require.NoError(t, os.WriteFile(path, []byte(validSnapshotJSON), 0o600))

	snapshot, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, snapshot.Sailings, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
