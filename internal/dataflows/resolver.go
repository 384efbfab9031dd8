package dataflows

import (
	"context"
	"fmt"
)

// MasterLister provides the KRX stock master list.
type MasterLister interface {
	MasterList(ctx context.Context) ([]Listing, error)
}

// TickerResolver maps company display names to tickers using the full
// master list. Lookups are exact; there is no fuzzy or partial matching.
type TickerResolver struct {
	source MasterLister

	byName   map[string]Listing
	byTicker map[string]Listing
}

// NewTickerResolver creates a resolver backed by the given master list
// source. The list is fetched on first use and kept for the run.
func NewTickerResolver(source MasterLister) *TickerResolver {
	return &TickerResolver{source: source}
}

func (r *TickerResolver) load(ctx context.Context) error {
	if r.byName != nil {
		return nil
	}
	listings, err := r.source.MasterList(ctx)
	if err != nil {
		return fmt.Errorf("load master list: %w", err)
	}
	r.byName = make(map[string]Listing, len(listings))
	r.byTicker = make(map[string]Listing, len(listings))
	for _, l := range listings {
		r.byName[l.Name] = l
		r.byTicker[l.ShortCode] = l
	}
	return nil
}

// Resolve returns the listing for a company display name. If the input
// does not match any name but is itself a listed ticker, that listing is
// returned. Anything else is a not-found condition.
func (r *TickerResolver) Resolve(ctx context.Context, nameOrTicker string) (Listing, error) {
	if err := r.load(ctx); err != nil {
		return Listing{}, err
	}
	if l, ok := r.byName[nameOrTicker]; ok {
		return l, nil
	}
	if l, ok := r.byTicker[nameOrTicker]; ok {
		return l, nil
	}
	return Listing{}, fmt.Errorf("%w: %q", ErrTickerNotFound, nameOrTicker)
}
