// Package main implements routectl, a command-line front end for the route
// search engine. It loads a sailing network snapshot, reads one JSON query
// per line from standard input, and prints the resulting itinerary legs as
// JSON to standard output.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sailing-search/sailing-route-service/internal/adapter/feed"
	"github.com/sailing-search/sailing-route-service/internal/domain"
	"github.com/sailing-search/sailing-route-service/internal/usecase"
)

var (
	snapshotPath  string
	baseCurrency  string
	currencyScale int64
	maxPathLegs   int
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routectl",
		Short: "Answer sailing route queries from standard input",
		Long: `routectl loads a static snapshot of sailings, rates and exchange rates,
then reads one JSON query per line from standard input:

  {"origin":"CNSHA","destination":"NLRTM","criteria":"cheapest"}

Criteria is one of cheapest-direct, cheapest, or fastest. Each answer is
printed as a JSON object with the itinerary legs. An unreachable
destination yields an empty legs array.`,
		SilenceUsage: true,
		RunE:         run,
	}

	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "data/sailings.json", "path to the sailing network snapshot JSON")
	cmd.Flags().StringVar(&baseCurrency, "base-currency", usecase.DefaultBaseCurrency, "base currency for cost normalization")
	cmd.Flags().Int64Var(&currencyScale, "currency-scale", usecase.DefaultCurrencyScale, "fixed-point scale for exchange-rate multipliers")
	cmd.Flags().IntVar(&maxPathLegs, "max-path-legs", usecase.DefaultMaxPathLegs, "leg count at which search branches are deferred")

	return cmd
}

// queryResult is the per-query output line.
type queryResult struct {
	Legs  []domain.Leg `json:"legs"`
	Error string       `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	snapshot, err := feed.Load(snapshotPath)
	if err != nil {
		return err
	}

	planner, err := usecase.NewRoutePlanner(
		snapshot.Sailings,
		snapshot.Rates,
		snapshot.ExchangeRates,
		usecase.WithBaseCurrency(baseCurrency),
		usecase.WithCurrencyScale(currencyScale),
		usecase.WithMaxPathLegs(maxPathLegs),
	)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	out := json.NewEncoder(cmd.OutOrStdout())

	for in.Scan() {
		line := in.Bytes()
		if len(line) == 0 {
			continue
		}

		var query domain.RouteQuery
		if err := json.Unmarshal(line, &query); err != nil {
			_ = out.Encode(queryResult{Error: fmt.Sprintf("malformed query: %v", err)})
			continue
		}
		if err := query.Validate(); err != nil {
			_ = out.Encode(queryResult{Error: err.Error()})
			continue
		}

		legs, err := answer(planner, query)
		if err != nil {
			_ = out.Encode(queryResult{Error: err.Error()})
			continue
		}
		_ = out.Encode(queryResult{Legs: legs})
	}

	return in.Err()
}

// answer dispatches a query to the engine operation named by its criteria.
func answer(planner *usecase.RoutePlanner, query domain.RouteQuery) ([]domain.Leg, error) {
	switch query.Criteria {
	case domain.CriteriaCheapestDirect:
		return planner.FindCheapestDirect(query.Origin, query.Destination)
	case domain.CriteriaCheapest:
		return planner.FindCheapestRoute(query.Origin, query.Destination)
	case domain.CriteriaFastest:
		return planner.FindFastestRoute(query.Origin, query.Destination)
	default:
		return nil, fmt.Errorf("%w: unsupported criteria %q", domain.ErrInvalidInput, query.Criteria)
	}
}
